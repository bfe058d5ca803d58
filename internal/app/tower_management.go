// internal/app/tower_management.go
package app

import (
	"sort"

	"github.com/charmbracelet/log"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/system"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/pkg/grid"
)

// PlaceTower пытается поставить башню стихии element на клетку.
// Операция атомарна: либо проходят все проверки (определение, золото,
// занятость, неперекрытие маршрута) и клетка занимается вместе со
// списанием золота, либо состояние не меняется вовсе.
func (g *Game) PlaceTower(element defs.Element, cell grid.Cell) bool {
	def := defs.TowerByElement[element]
	if def == nil {
		return false
	}
	cost := def.LevelStats(1).Cost
	if g.Gold < cost {
		return false
	}
	if !g.Map.CanPlace(cell) {
		return false
	}
	if g.Map.RouteBlockedBy(cell) {
		return false
	}

	if !g.Map.Occupy(cell) {
		return false
	}
	g.Gold -= cost
	g.routeCache = nil

	id := g.createTowerEntity(def, cell)
	g.SynergySystem.Recompute()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return true
}

func (g *Game) createTowerEntity(def *defs.TowerDefinition, cell grid.Cell) types.EntityID {
	id := g.ECS.NewEntity()
	stats := def.LevelStats(1)
	x, y := cell.ToPixel(config.CellSize)

	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		DefID:             def.ID,
		Element:           def.Element,
		Level:             1,
		Cell:              cell,
		SynergyMultiplier: 1.0,
	}
	g.ECS.Combats[id] = &component.Combat{
		FireRate: stats.FireRate,
		Range:    stats.Range,
	}
	g.ECS.Healths[id] = &component.Health{Value: stats.MaxHealth, Max: stats.MaxHealth}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Color,
		Radius:    float32(stats.SizeFactor * config.CellSize),
		HasStroke: true,
	}
	return id
}

// MergeOrLevelUp поднимает уровень башни (до третьего). Все боевые
// характеристики выводятся заново из стихии и нового уровня.
func (g *Game) MergeOrLevelUp(towerID types.EntityID) bool {
	tower, ok := g.ECS.Towers[towerID]
	if !ok || !g.ECS.IsTowerAlive(towerID) {
		return false
	}
	if tower.Level >= config.MaxTowerLevel {
		return false
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return false
	}
	nextStats := def.LevelStats(tower.Level + 1)
	if g.Gold < nextStats.Cost {
		return false
	}

	g.Gold -= nextStats.Cost
	tower.Level++

	combat := g.ECS.Combats[towerID]
	combat.FireRate = nextStats.FireRate
	combat.Range = nextStats.Range

	// Запас прочности растет вместе с максимумом.
	prevStats := def.LevelStats(tower.Level - 1)
	health := g.ECS.Healths[towerID]
	health.Max = nextStats.MaxHealth
	health.Value += nextStats.MaxHealth - prevStats.MaxHealth
	if health.Value > health.Max {
		health.Value = health.Max
	}
	if renderable, ok := g.ECS.Renderables[towerID]; ok {
		renderable.Radius = float32(nextStats.SizeFactor * config.CellSize)
	}

	// Апгрейд — изменение расстановки: кэш синергий пересчитывается.
	g.SynergySystem.Recompute()
	return true
}

// RemoveTower сносит башню игрока и освобождает клетку.
func (g *Game) RemoveTower(cell grid.Cell) bool {
	id := g.FindTowerAt(cell)
	if id == 0 {
		return false
	}
	g.Map.Release(cell)
	g.routeCache = nil
	g.ECS.RemoveEntity(id)
	g.SynergySystem.Recompute()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: cell})
	return true
}

// PreviewPlacement — предпросмотр синергий для еще не построенной башни.
// Реальное состояние не меняется.
func (g *Game) PreviewPlacement(element defs.Element, cell grid.Cell) system.PreviewResult {
	return g.SynergySystem.Preview(element, cell)
}

// CastSpell применяет заклинание по точке. Заклинания минуют выбор цели
// башнями, но каждый задетый враг проходит тот же путь реакций и урона,
// что и при попадании снаряда.
func (g *Game) CastSpell(spellID string, x, y float64) bool {
	def, ok := defs.SpellLibrary[spellID]
	if !ok {
		log.Warn("spell: unknown definition", "spell_id", spellID)
		return false
	}
	if g.Gold < def.Cost {
		return false
	}
	g.Gold -= def.Cost

	radius := def.Radius * config.CellSize
	for _, id := range g.ECS.SortedEnemyIDs() {
		if !g.ECS.IsEnemyAlive(id) {
			continue
		}
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		dx := pos.X - x
		dy := pos.Y - y
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		g.ReactionSystem.ProcessAttack(id, def.Damage, def.Element, false, &g.report)
		if def.Slows && g.ECS.IsEnemyAlive(id) {
			system.ApplySlow(g.ECS, id, config.SlowDuration, config.SlowFactor)
		}
	}
	return true
}

// SpawnEnemy — внешняя операция спавна (отладка, скрипты волн драйвера).
func (g *Game) SpawnEnemy(archetype defs.Archetype, routeIndex, waveNumber int, resistance defs.Element) types.EntityID {
	defID := ""
	ids := make([]string, 0, len(defs.EnemyLibrary))
	for id := range defs.EnemyLibrary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if defs.EnemyLibrary[id].Archetype == archetype {
			defID = id
			break
		}
	}
	if defID == "" {
		log.Warn("spawn: no definition for archetype", "archetype", archetype)
		return 0
	}
	route := g.GetRoute(routeIndex)
	if route == nil {
		return 0
	}
	return g.WaveSystem.SpawnEnemy(defID, waveNumber, route, 0, resistance)
}
