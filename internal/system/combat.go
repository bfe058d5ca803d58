// internal/system/combat.go
package system

import (
	"math"

	"github.com/charmbracelet/log"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
)

// CombatSystem управляет стрельбой башен: перезарядка, молчание,
// выбор цели и создание снаряда. Урон снаряда — всегда
// baseDamage(уровень) × множитель синергий, эффективное значение
// нигде не хранится.
type CombatSystem struct {
	ecs            *entity.ECS
	targetSelector *TargetSelector
}

func NewCombatSystem(ecs *entity.ECS, targetSelector *TargetSelector) *CombatSystem {
	return &CombatSystem{
		ecs:            ecs,
		targetSelector: targetSelector,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedTowerIDs() {
		combat, hasCombat := s.ecs.Combats[id]
		tower := s.ecs.Towers[id]
		if !hasCombat || !s.ecs.IsTowerAlive(id) {
			continue
		}

		towerDef, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			log.Warn("combat: tower definition missing", "def_id", tower.DefID)
			continue
		}

		// Замолчанная башня не стреляет и не целится; таймер молчания
		// убывает в системе статусов.
		if tower.Silenced() {
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		targetID := s.targetSelector.SelectTarget(id, tower, combat)
		if targetID == 0 {
			continue // целей нет — башня простаивает
		}

		stats := towerDef.LevelStats(tower.Level)
		damage := int(math.Round(float64(stats.Damage) * tower.SynergyMultiplier))
		s.createProjectile(id, targetID, &towerDef, damage)
		combat.FireCooldown = 1.0 / combat.FireRate
	}
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, towerDef *defs.TowerDefinition, damage int) {
	towerPos := s.ecs.Positions[towerID]
	enemyPos := s.ecs.Positions[enemyID]
	if towerPos == nil || enemyPos == nil {
		return
	}

	projID := s.ecs.NewEntity()
	proj := &component.Projectile{
		TargetID: enemyID,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
		Element:  towerDef.Element, // стихия берется с башни, не с цели
		Color:    towerDef.Color,
	}
	if towerDef.SlowsTarget {
		proj.SlowsTarget = true
		proj.SlowDuration = config.SlowDuration
		proj.SlowFactor = config.SlowFactor
	}

	// Начальный вектор скорости считается сразу: если цель умрет до первого
	// тика полета, снаряд все равно полетит по последнему курсу.
	if nx, ny, ok := utils.Normalize(towerPos.X, towerPos.Y, enemyPos.X, enemyPos.Y); ok {
		proj.VelX = nx * proj.Speed
		proj.VelY = ny * proj.Speed
	}

	// Снаряды рисуются прямо из компонента Projectile, без Renderable.
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
}
