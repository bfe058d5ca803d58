// internal/defs/enemies.go
package defs

// BossSkillSet holds the static parameters of the boss special actions.
type BossSkillSet struct {
	Cooldown        float64 `json:"cooldown"`         // секунды между применениями
	SummonCount     int     `json:"summon_count"`     // сколько миньонов призывается
	SummonID        string  `json:"summon_id"`        // ID определения миньона
	HealFraction    float64 `json:"heal_fraction"`    // доля от максимума здоровья
	SilenceDuration float64 `json:"silence_duration"` // секунды молчания башни
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Archetype      Archetype     `json:"archetype"`
	Behavior       Behavior      `json:"behavior"`
	Health         int           `json:"health"`
	Speed          float64       `json:"speed"` // пикселей в секунду
	AttackDamage   int           `json:"attack_damage"`
	AttackCooldown float64       `json:"attack_cooldown"` // секунды между ударами по башне
	Priority       int           `json:"priority"`        // приоритет при выборе цели башней
	EvasionChance  float64       `json:"evasion_chance"`  // только призраки
	CCImmunity     float64       `json:"cc_immunity"`     // доля сокращения контроля (боссы)
	Bounty         int           `json:"bounty"`          // золото за убийство
	RadiusFactor   float64       `json:"radius_factor"`   // радиус тела в долях клетки
	Skills         *BossSkillSet `json:"skills,omitempty"`
}

// defaultEnemies is the built-in balance table. LoadEnemyDefinitions may override it.
var defaultEnemies = []EnemyDefinition{
	{
		ID: "ENEMY_NORMAL", Name: "Runner", Archetype: ArchetypeNormal, Behavior: BehaviorDefault,
		Health: 100, Speed: 80, AttackDamage: 10, AttackCooldown: 1.2,
		Priority: 1, Bounty: 8, RadiusFactor: 0.22,
	},
	{
		ID: "ENEMY_TANK", Name: "Juggernaut", Archetype: ArchetypeTank, Behavior: BehaviorDefault,
		Health: 320, Speed: 48, AttackDamage: 20, AttackCooldown: 1.6,
		Priority: 2, Bounty: 20, RadiusFactor: 0.32,
	},
	{
		ID: "ENEMY_BREAKER", Name: "Breaker", Archetype: ArchetypeBreaker, Behavior: BehaviorSeekTower,
		Health: 80, Speed: 95, AttackDamage: 60, AttackCooldown: 0,
		Priority: 1, Bounty: 12, RadiusFactor: 0.24,
	},
	{
		ID: "ENEMY_GHOST", Name: "Ghost", Archetype: ArchetypeGhost, Behavior: BehaviorIgnorePath,
		Health: 70, Speed: 70, AttackDamage: 8, AttackCooldown: 1.2,
		Priority: 1, EvasionChance: 0.5, Bounty: 14, RadiusFactor: 0.2,
	},
	{
		ID: "ENEMY_BOSS", Name: "Overlord", Archetype: ArchetypeBoss, Behavior: BehaviorBossSkills,
		Health: 1500, Speed: 40, AttackDamage: 35, AttackCooldown: 2.0,
		Priority: 3, CCImmunity: 0.8, Bounty: 120, RadiusFactor: 0.38,
		Skills: &BossSkillSet{
			Cooldown:        8.0,
			SummonCount:     3,
			SummonID:        "ENEMY_NORMAL",
			HealFraction:    0.15,
			SilenceDuration: 3.0,
		},
	},
}
