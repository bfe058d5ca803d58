// internal/defs/reactions.go
package defs

// ReactionKind identifies a concrete elemental reaction.
type ReactionKind string

const (
	ReactionMelt      ReactionKind = "MELT"
	ReactionFreeze    ReactionKind = "FREEZE"
	ReactionExplosion ReactionKind = "EXPLOSION"
)

// ReactionDefinition describes one entry of the reaction table:
// what happens when an attack element lands on an enemy carrying a status tag.
type ReactionDefinition struct {
	ID             ReactionKind `json:"id"`
	Name           string       `json:"name"`
	Status         StatusTag    `json:"status"`  // текущая метка врага
	Trigger        Element      `json:"trigger"` // стихия входящей атаки
	Multiplier     float64      `json:"multiplier"`
	FreezeDuration float64      `json:"freeze_duration"` // только FREEZE, секунды
	Radius         float64      `json:"radius"`          // только EXPLOSION, в клетках
	MaxFalloff     float64      `json:"max_falloff"`     // доля потери урона на краю радиуса
}

var defaultReactions = []ReactionDefinition{
	{
		ID: ReactionMelt, Name: "Melt",
		Status: StatusIce, Trigger: ElementFire,
		Multiplier: 3.0,
	},
	{
		ID: ReactionFreeze, Name: "Flash Freeze",
		Status: StatusIce, Trigger: ElementLightning,
		Multiplier: 1.0, FreezeDuration: 2.0,
	},
	{
		ID: ReactionExplosion, Name: "Oil Explosion",
		Status: StatusOil, Trigger: ElementFire,
		Multiplier: 1.5, Radius: 2.0, MaxFalloff: 0.5,
	},
}

type reactionKey struct {
	status  StatusTag
	trigger Element
}

// ReactionTable is the lookup index built from the loaded definitions.
var ReactionTable map[reactionKey]*ReactionDefinition

// FindReaction returns the reaction entry for a (status, element) pair, if any.
func FindReaction(status StatusTag, trigger Element) (*ReactionDefinition, bool) {
	def, ok := ReactionTable[reactionKey{status: status, trigger: trigger}]
	return def, ok
}

func rebuildReactionTable(defs []ReactionDefinition) {
	ReactionTable = make(map[reactionKey]*ReactionDefinition, len(defs))
	for i := range defs {
		d := &defs[i]
		ReactionTable[reactionKey{status: d.Status, trigger: d.Trigger}] = d
	}
}
