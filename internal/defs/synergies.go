// internal/defs/synergies.go
package defs

// SynergyDefinition grants a damage multiplier to a tower of Source element
// when at least one orthogonal neighbor has the Requires element.
// The relation is directional: (A, B) does not imply (B, A).
type SynergyDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Source     Element `json:"source"`
	Requires   Element `json:"requires"`
	Multiplier float64 `json:"multiplier"`
	Icon       string  `json:"icon"`
}

var defaultSynergies = []SynergyDefinition{
	{ID: "SYNERGY_STEAM", Name: "Steam Vent", Source: ElementFire, Requires: ElementIce, Multiplier: 1.3, Icon: "steam"},
	{ID: "SYNERGY_WILDFIRE", Name: "Wildfire", Source: ElementFire, Requires: ElementOil, Multiplier: 1.5, Icon: "wildfire"},
	{ID: "SYNERGY_SUPERCONDUCT", Name: "Superconduct", Source: ElementLightning, Requires: ElementIce, Multiplier: 1.4, Icon: "superconduct"},
	{ID: "SYNERGY_TEMPERED", Name: "Tempered Bolts", Source: ElementPhysical, Requires: ElementFire, Multiplier: 1.25, Icon: "tempered"},
	{ID: "SYNERGY_PERMAFROST", Name: "Permafrost", Source: ElementIce, Requires: ElementLightning, Multiplier: 1.2, Icon: "permafrost"},
}

// SynergiesFor returns all synergy entries whose source element matches.
func SynergiesFor(source Element) []*SynergyDefinition {
	return synergyIndex[source]
}

var synergyIndex map[Element][]*SynergyDefinition

func rebuildSynergyIndex(defs []SynergyDefinition) {
	synergyIndex = make(map[Element][]*SynergyDefinition)
	for i := range defs {
		d := &defs[i]
		synergyIndex[d.Source] = append(synergyIndex[d.Source], d)
	}
}
