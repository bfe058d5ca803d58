// internal/system/projectile.go
package system

import (
	"math"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/interfaces"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
)

// ProjectileSystem управляет полетом снарядов и столкновениями.
// Снаряд сам никогда не наносит урон: финальное значение зависит от того,
// перехватит ли попадание реакция, поэтому урон применяет ReactionSystem.
type ProjectileSystem struct {
	ecs            *entity.ECS
	reactionSystem *ReactionSystem
	rng            interfaces.RandSource
}

func NewProjectileSystem(ecs *entity.ECS, reactionSystem *ReactionSystem, rng interfaces.RandSource) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:            ecs,
		reactionSystem: reactionSystem,
		rng:            rng,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64, report *TickReport) {
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		targetAlive := s.ecs.IsEnemyAlive(proj.TargetID)
		if targetAlive {
			// Самонаведение: курс пересчитывается на живую цель каждый тик.
			targetPos := s.ecs.Positions[proj.TargetID]
			if nx, ny, ok := utils.Normalize(pos.X, pos.Y, targetPos.X, targetPos.Y); ok {
				proj.VelX = nx * proj.Speed
				proj.VelY = ny * proj.Speed
			}
		}
		// Цель мертва — летим по последнему курсу до выхода за поле.
		// Снаряд не удаляется мгновенно: это осознанный промах.

		pos.X += proj.VelX * deltaTime
		pos.Y += proj.VelY * deltaTime

		if pos.X < -config.BoundsMargin || pos.X > config.ScreenWidth+config.BoundsMargin ||
			pos.Y < -config.BoundsMargin || pos.Y > config.ScreenHeight+config.BoundsMargin {
			s.removeProjectile(id)
			continue
		}

		// Столкновение проверяется только по живой цели.
		if !targetAlive {
			continue
		}
		targetPos := s.ecs.Positions[proj.TargetID]
		hitRadius := config.ProjectileRadius + EnemyBodyRadius(s.ecs, proj.TargetID)
		if utils.DistSq(pos.X, pos.Y, targetPos.X, targetPos.Y) <= hitRadius*hitRadius {
			s.hitTarget(id, proj, report)
		}
	}
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}

// hitTarget обрабатывает попадание: уклонение, крит, затем реакция/урон.
// Уклонение бросается после проверки столкновения, но до любой логики
// реакций: уклонившийся призрак не получает ни урона, ни метки.
func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, report *TickReport) {
	defer s.removeProjectile(projectileID) // снаряд одноразовый

	enemy := s.ecs.Enemies[proj.TargetID]
	if enemy == nil {
		return
	}
	if enemy.EvasionChance > 0 && s.rng.Chance(enemy.EvasionChance) {
		pos := s.ecs.Positions[proj.TargetID]
		report.Hits = append(report.Hits, HitRecord{
			TargetID: proj.TargetID, Evaded: true, Element: proj.Element,
			X: pos.X, Y: pos.Y,
		})
		return
	}

	damage := proj.Damage
	crit := s.rng.Chance(config.CritChance)
	if crit {
		damage = int(math.Round(float64(damage) * config.CritMultiplier))
	}

	s.reactionSystem.ProcessAttack(proj.TargetID, damage, proj.Element, crit, report)

	if proj.SlowsTarget && s.ecs.IsEnemyAlive(proj.TargetID) {
		ApplySlow(s.ecs, proj.TargetID, proj.SlowDuration, proj.SlowFactor)
	}
}
