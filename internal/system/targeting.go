// internal/system/targeting.go
package system

import (
	"math"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
)

// TargetSelector выбирает цель для башни.
// Правила: пока текущая цель жива и в радиусе — держим ее (липкость цели,
// чтобы башня не дергалась между врагами). Иначе сканируем всех живых
// врагов: первичный ключ — приоритет архетипа (боссы > танки > остальные),
// при равенстве побеждает меньшая евклидова дистанция.
type TargetSelector struct {
	ecs *entity.ECS
}

func NewTargetSelector(ecs *entity.ECS) *TargetSelector {
	return &TargetSelector{ecs: ecs}
}

// SelectTarget обновляет кэш цели башни и возвращает ее ID (0 — цели нет).
func (s *TargetSelector) SelectTarget(towerID types.EntityID, tower *component.Tower, combat *component.Combat) types.EntityID {
	towerPos := s.ecs.Positions[towerID]
	if towerPos == nil {
		tower.TargetID = 0
		return 0
	}
	rangePixels := combat.Range * config.CellSize

	// Липкость: живая цель в радиусе сохраняется, даже если в радиус
	// вошел враг с большим приоритетом.
	if tower.TargetID != 0 && s.inRange(tower.TargetID, towerPos, rangePixels) {
		return tower.TargetID
	}
	tower.TargetID = 0

	bestPriority := math.MinInt
	bestDistSq := math.MaxFloat64
	var best types.EntityID

	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !s.ecs.IsEnemyAlive(id) {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		distSq := utils.DistSq(pos.X, pos.Y, towerPos.X, towerPos.Y)
		if distSq > rangePixels*rangePixels {
			continue
		}
		if enemy.Priority > bestPriority || (enemy.Priority == bestPriority && distSq < bestDistSq) {
			bestPriority = enemy.Priority
			bestDistSq = distSq
			best = id
		}
	}

	tower.TargetID = best
	return best
}

func (s *TargetSelector) inRange(enemyID types.EntityID, towerPos *component.Position, rangePixels float64) bool {
	if !s.ecs.IsEnemyAlive(enemyID) {
		return false
	}
	pos := s.ecs.Positions[enemyID]
	if pos == nil {
		return false
	}
	return utils.DistSq(pos.X, pos.Y, towerPos.X, towerPos.Y) <= rangePixels*rangePixels
}
