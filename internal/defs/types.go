// internal/defs/types.go
package defs

// Element defines the damage/status element of an attack or a tower.
type Element string

const (
	ElementPhysical  Element = "PHYSICAL"
	ElementFire      Element = "FIRE"
	ElementIce       Element = "ICE"
	ElementLightning Element = "LIGHTNING"
	ElementOil       Element = "OIL"
)

// StatusTag is the single elemental marker an enemy can carry.
// An enemy has at most one tag at any instant.
type StatusTag string

const (
	StatusNone      StatusTag = "NONE"
	StatusFire      StatusTag = "FIRE"
	StatusIce       StatusTag = "ICE"
	StatusLightning StatusTag = "LIGHTNING"
	StatusOil       StatusTag = "OIL"
	StatusFrozen    StatusTag = "FROZEN"
)

// StatusForElement maps an attack element to the tag it leaves on the enemy.
func StatusForElement(e Element) StatusTag {
	switch e {
	case ElementFire:
		return StatusFire
	case ElementIce:
		return StatusIce
	case ElementLightning:
		return StatusLightning
	case ElementOil:
		return StatusOil
	default:
		return StatusNone
	}
}

// Archetype defines the enemy category.
type Archetype string

const (
	ArchetypeNormal  Archetype = "NORMAL"
	ArchetypeTank    Archetype = "TANK"
	ArchetypeBreaker Archetype = "BREAKER"
	ArchetypeGhost   Archetype = "GHOST"
	ArchetypeBoss    Archetype = "BOSS"
)

// Behavior is the closed set of movement/special-action variants.
// Exactly one applies to an enemy; flag combinations are not representable.
type Behavior string

const (
	BehaviorDefault    Behavior = "DEFAULT"     // следование по маршруту
	BehaviorIgnorePath Behavior = "IGNORE_PATH" // полёт напрямую к базе
	BehaviorSeekTower  Behavior = "SEEK_TOWER"  // поиск ближайшей башни
	BehaviorBossSkills Behavior = "BOSS_SKILLS" // маршрут + навыки босса
)

// BossSkill identifies one of the boss special actions.
type BossSkill string

const (
	SkillSummon  BossSkill = "SUMMON"
	SkillHeal    BossSkill = "HEAL"
	SkillSilence BossSkill = "SILENCE"
)
