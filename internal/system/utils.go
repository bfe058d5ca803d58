// internal/system/utils.go
package system

import (
	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/types"
)

// ApplyDamage наносит урон сущности с учетом стихии атаки и резиста врага.
// Возвращает фактически нанесенный урон.
// Резист сводит совпавшую нефизическую атаку к минимальному фиксированному
// урону; к физическим атакам резисты не применяются никогда.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int, attack defs.Element) int {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 {
		return 0
	}

	finalDamage := damage
	if enemy, isEnemy := ecs.Enemies[entityID]; isEnemy && enemy.Resists(attack) {
		finalDamage = config.ResistMinDamage
	}

	health.Value -= finalDamage
	if health.Value < 0 {
		health.Value = 0
	}
	return finalDamage
}

// ApplySlow вешает замедление с учетом сопротивления контролю.
// Длительность короче порога отбрасывается целиком.
func ApplySlow(ecs *entity.ECS, entityID types.EntityID, duration, factor float64) bool {
	enemy, ok := ecs.Enemies[entityID]
	if !ok {
		return false
	}
	actual := duration * (1.0 - enemy.CCImmunity)
	if actual < config.CCDurationFloor {
		return false
	}
	ecs.SlowEffects[entityID] = &component.SlowEffect{Timer: actual, SlowFactor: factor}
	return true
}

// ApplyFreeze полностью останавливает врага с учетом сопротивления контролю.
func ApplyFreeze(ecs *entity.ECS, entityID types.EntityID, duration float64) bool {
	enemy, ok := ecs.Enemies[entityID]
	if !ok {
		return false
	}
	actual := duration * (1.0 - enemy.CCImmunity)
	if actual < config.CCDurationFloor {
		return false
	}
	ecs.FreezeEffects[entityID] = &component.FreezeEffect{Timer: actual}
	return true
}

// EnemyBodyRadius возвращает радиус тела врага в пикселях.
func EnemyBodyRadius(ecs *entity.ECS, entityID types.EntityID) float64 {
	enemy, ok := ecs.Enemies[entityID]
	if !ok {
		return 0
	}
	def, ok := defs.EnemyLibrary[enemy.DefID]
	if !ok {
		return 0
	}
	return def.RadiusFactor * config.CellSize
}

// TowerBodyRadius возвращает радиус тела башни в пикселях.
func TowerBodyRadius(ecs *entity.ECS, entityID types.EntityID) float64 {
	tower, ok := ecs.Towers[entityID]
	if !ok {
		return 0
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return 0
	}
	return def.LevelStats(tower.Level).SizeFactor * config.CellSize
}
