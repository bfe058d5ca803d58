// internal/system/melee.go
package system

import (
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
)

// MeleeSystem — второй проход по врагам: любой живой враг, кроме
// разрушителей и призраков, стоящий вплотную к башне, периодически бьет
// ее по собственному кулдауну. Это не зависит от правила движения врага.
type MeleeSystem struct {
	ecs *entity.ECS
}

func NewMeleeSystem(ecs *entity.ECS) *MeleeSystem {
	return &MeleeSystem{ecs: ecs}
}

func (s *MeleeSystem) Update(deltaTime float64) {
	rangePixels := config.MeleeRange * config.CellSize

	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !s.ecs.IsEnemyAlive(id) || enemy.ReachedGoal {
			continue
		}
		if enemy.Archetype == defs.ArchetypeBreaker || enemy.Archetype == defs.ArchetypeGhost {
			continue
		}

		if enemy.AttackTimer > 0 {
			enemy.AttackTimer -= deltaTime
			continue
		}

		towerID := s.nearestTowerWithin(id, rangePixels)
		if towerID == 0 {
			continue
		}
		if health, ok := s.ecs.Healths[towerID]; ok {
			health.Value -= enemy.AttackDamage
			if health.Value < 0 {
				health.Value = 0
			}
		}
		enemy.AttackTimer = enemy.AttackCooldown
	}
}

func (s *MeleeSystem) nearestTowerWithin(enemyID types.EntityID, rangePixels float64) types.EntityID {
	pos := s.ecs.Positions[enemyID]
	if pos == nil {
		return 0
	}
	var nearest types.EntityID
	minDistSq := rangePixels * rangePixels
	for _, towerID := range s.ecs.SortedTowerIDs() {
		if !s.ecs.IsTowerAlive(towerID) {
			continue
		}
		towerPos := s.ecs.Positions[towerID]
		if towerPos == nil {
			continue
		}
		distSq := utils.DistSq(pos.X, pos.Y, towerPos.X, towerPos.Y)
		if distSq <= minDistSq {
			minDistSq = distSq
			nearest = towerID
		}
	}
	return nearest
}
