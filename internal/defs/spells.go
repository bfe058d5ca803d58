// internal/defs/spells.go
package defs

// SpellDefinition describes a castable area attack. Spells bypass tower
// targeting but flow through the same reaction/damage path as projectiles.
type SpellDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Element Element `json:"element"`
	Damage  int     `json:"damage"`
	Radius  float64 `json:"radius"` // в клетках
	Cost    int     `json:"cost"`
	Slows   bool    `json:"slows"` // ледяные заклинания замедляют всех задетых
}

var defaultSpells = []SpellDefinition{
	{ID: "SPELL_FIREBALL", Name: "Fireball", Element: ElementFire, Damage: 60, Radius: 1.8, Cost: 40},
	{ID: "SPELL_FROST_NOVA", Name: "Frost Nova", Element: ElementIce, Damage: 25, Radius: 2.2, Cost: 35, Slows: true},
	{ID: "SPELL_OIL_SPILL", Name: "Oil Spill", Element: ElementOil, Damage: 5, Radius: 2.0, Cost: 25},
}
