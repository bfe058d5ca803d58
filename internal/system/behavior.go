// internal/system/behavior.go
package system

import (
	"math"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/interfaces"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
)

// Summoner — контракт призыва миньонов (реализуется системой волн).
type Summoner interface {
	SummonMinions(defID string, count int, nearID types.EntityID) []types.EntityID
}

// BehaviorSystem — движение и особые действия врагов по архетипам.
// Вариант поведения ровно один на врага: призрак не может одновременно
// охотиться на башни, комбинации флагов непредставимы.
type BehaviorSystem struct {
	ecs             *entity.ECS
	paths           interfaces.PathProvider
	rng             interfaces.RandSource
	summoner        Summoner
	eventDispatcher *event.Dispatcher
}

func NewBehaviorSystem(ecs *entity.ECS, paths interfaces.PathProvider, rng interfaces.RandSource, summoner Summoner, eventDispatcher *event.Dispatcher) *BehaviorSystem {
	return &BehaviorSystem{
		ecs:             ecs,
		paths:           paths,
		rng:             rng,
		summoner:        summoner,
		eventDispatcher: eventDispatcher,
	}
}

func (s *BehaviorSystem) Update(deltaTime float64, report *TickReport) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !s.ecs.IsEnemyAlive(id) || enemy.ReachedGoal {
			continue
		}

		// Навык босса заряжается независимо от движения и заморозки.
		if enemy.Behavior == defs.BehaviorBossSkills {
			s.updateBossSkill(id, enemy, deltaTime, report)
		}

		// Заморозка полностью останавливает врага.
		if _, frozen := s.ecs.FreezeEffects[id]; frozen {
			continue
		}

		speed := s.currentSpeed(id)
		switch enemy.Behavior {
		case defs.BehaviorIgnorePath:
			s.moveToBase(id, enemy, speed, deltaTime)
		case defs.BehaviorSeekTower:
			s.seekTower(id, enemy, speed, deltaTime, report)
		default:
			s.followRoute(id, enemy, speed, deltaTime)
		}
	}
}

// currentSpeed — базовая скорость с учетом замедления.
func (s *BehaviorSystem) currentSpeed(id types.EntityID) float64 {
	vel := s.ecs.Velocities[id]
	if vel == nil {
		return 0
	}
	speed := vel.BaseSpeed
	if slow, ok := s.ecs.SlowEffects[id]; ok {
		speed *= slow.SlowFactor
	}
	vel.Speed = speed
	return speed
}

// followRoute — движение по маршруту из клеток (танки и обычные враги).
// Достижение последней точки маршрута считается прорывом к базе.
func (s *BehaviorSystem) followRoute(id types.EntityID, enemy *component.Enemy, speed, deltaTime float64) {
	pos := s.ecs.Positions[id]
	path := s.ecs.PathFollows[id]
	if pos == nil || path == nil {
		return
	}
	if path.CurrentIndex >= len(path.Cells) {
		enemy.ReachedGoal = true
		return
	}

	targetCell := path.Cells[path.CurrentIndex]
	tx, ty := targetCell.ToPixel(config.CellSize)
	dist := utils.Dist(pos.X, pos.Y, tx, ty)
	moveDistance := speed * deltaTime

	if dist <= moveDistance {
		pos.X = tx
		pos.Y = ty
		path.CurrentIndex++
		if path.CurrentIndex >= len(path.Cells) {
			enemy.ReachedGoal = true
		}
	} else if nx, ny, ok := utils.Normalize(pos.X, pos.Y, tx, ty); ok {
		pos.X += nx * moveDistance
		pos.Y += ny * moveDistance
	}
}

// moveToBase — призрак игнорирует маршрут и летит к базе напрямую.
func (s *BehaviorSystem) moveToBase(id types.EntityID, enemy *component.Enemy, speed, deltaTime float64) {
	pos := s.ecs.Positions[id]
	if pos == nil {
		return
	}
	bx, by := s.paths.GetBasePosition()
	dist := utils.Dist(pos.X, pos.Y, bx, by)
	moveDistance := speed * deltaTime

	if dist <= moveDistance {
		pos.X = bx
		pos.Y = by
		enemy.ReachedGoal = true
	} else if nx, ny, ok := utils.Normalize(pos.X, pos.Y, bx, by); ok {
		pos.X += nx * moveDistance
		pos.Y += ny * moveDistance
	}
}

// seekTower — разрушитель держит курс на ближайшую живую башню и
// самоуничтожается при контакте, нанося ей фиксированный высокий урон.
// Когда башен нет, он идет по обычному маршруту.
func (s *BehaviorSystem) seekTower(id types.EntityID, enemy *component.Enemy, speed, deltaTime float64, report *TickReport) {
	// Кэш цели перепроверяется каждый тик: башня могла погибнуть.
	if !s.ecs.IsTowerAlive(enemy.TowerTargetID) {
		enemy.TowerTargetID = s.nearestTower(id)
	}
	if enemy.TowerTargetID == 0 {
		s.followRoute(id, enemy, speed, deltaTime)
		return
	}

	pos := s.ecs.Positions[id]
	towerPos := s.ecs.Positions[enemy.TowerTargetID]
	if pos == nil || towerPos == nil {
		return
	}

	dist := utils.Dist(pos.X, pos.Y, towerPos.X, towerPos.Y)
	contactDist := EnemyBodyRadius(s.ecs, id) + TowerBodyRadius(s.ecs, enemy.TowerTargetID)

	if dist <= contactDist {
		s.detonate(id, enemy)
		return
	}
	if nx, ny, ok := utils.Normalize(pos.X, pos.Y, towerPos.X, towerPos.Y); ok {
		moveDistance := speed * deltaTime
		pos.X += nx * moveDistance
		pos.Y += ny * moveDistance
	}
}

func (s *BehaviorSystem) nearestTower(enemyID types.EntityID) types.EntityID {
	pos := s.ecs.Positions[enemyID]
	if pos == nil {
		return 0
	}
	var nearest types.EntityID
	minDistSq := math.MaxFloat64
	for _, towerID := range s.ecs.SortedTowerIDs() {
		if !s.ecs.IsTowerAlive(towerID) {
			continue
		}
		towerPos := s.ecs.Positions[towerID]
		if towerPos == nil {
			continue
		}
		distSq := utils.DistSq(pos.X, pos.Y, towerPos.X, towerPos.Y)
		if distSq < minDistSq {
			minDistSq = distSq
			nearest = towerID
		}
	}
	return nearest
}

// detonate — контактный подрыв разрушителя.
func (s *BehaviorSystem) detonate(id types.EntityID, enemy *component.Enemy) {
	if health, ok := s.ecs.Healths[enemy.TowerTargetID]; ok {
		health.Value -= enemy.AttackDamage
		if health.Value < 0 {
			health.Value = 0
		}
	}
	if health, ok := s.ecs.Healths[id]; ok {
		health.Value = 0
	}
	enemy.SelfDestructed = true
}

// updateBossSkill — ворота навыка босса: по готовности равновероятно
// выбирается призыв, лечение или молчание, и перезарядка сбрасывается.
func (s *BehaviorSystem) updateBossSkill(id types.EntityID, enemy *component.Enemy, deltaTime float64, report *TickReport) {
	boss := s.ecs.Bosses[id]
	if boss == nil {
		return
	}
	boss.SkillTimer -= deltaTime
	if boss.SkillTimer > 0 {
		return
	}

	def, ok := defs.EnemyLibrary[enemy.DefID]
	if !ok || def.Skills == nil {
		return
	}
	skills := def.Skills
	boss.SkillTimer = boss.SkillCooldown

	ev := BossSkillEvent{BossID: id}
	switch s.rng.Intn(3) {
	case 0:
		ev.Skill = defs.SkillSummon
		s.summoner.SummonMinions(skills.SummonID, skills.SummonCount, id)
	case 1:
		ev.Skill = defs.SkillHeal
		if health, ok := s.ecs.Healths[id]; ok {
			health.Value += int(math.Round(float64(health.Max) * skills.HealFraction))
			if health.Value > health.Max {
				health.Value = health.Max
			}
		}
	case 2:
		ev.Skill = defs.SkillSilence
		if towerID := s.randomLivingTower(); towerID != 0 {
			s.ecs.Towers[towerID].SilenceTimer = skills.SilenceDuration
			ev.TargetID = towerID
		}
	}

	report.BossSkills = append(report.BossSkills, ev)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSkillUsed, Data: ev})
}

func (s *BehaviorSystem) randomLivingTower() types.EntityID {
	var living []types.EntityID
	for _, id := range s.ecs.SortedTowerIDs() {
		if s.ecs.IsTowerAlive(id) {
			living = append(living, id)
		}
	}
	if len(living) == 0 {
		return 0
	}
	return living[s.rng.Intn(len(living))]
}
