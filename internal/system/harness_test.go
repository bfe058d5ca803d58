package system

import (
	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/pkg/grid"
)

// scriptedRand is a RandSource with predetermined answers, so tests do not
// depend on a particular seed producing a particular roll.
type scriptedRand struct {
	chances []bool
	ints    []int
}

func (r *scriptedRand) Float64() float64 { return 0.5 }

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Chance(p float64) bool {
	if len(r.chances) == 0 {
		return false
	}
	v := r.chances[0]
	r.chances = r.chances[1:]
	return v
}

func (r *scriptedRand) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].EnemyID
}

// fakePaths is a minimal PathProvider over a fixed route.
type fakePaths struct {
	route []grid.Cell
}

func newFakePaths(cells ...grid.Cell) *fakePaths {
	return &fakePaths{route: cells}
}

func (p *fakePaths) GetRoute(routeIndex int) []grid.Cell {
	return p.route
}

func (p *fakePaths) GetBasePosition() (float64, float64) {
	if len(p.route) == 0 {
		return 0, 0
	}
	return p.route[len(p.route)-1].ToPixel(config.CellSize)
}

// fakeSummoner records summon requests.
type fakeSummoner struct {
	calls int
	defID string
	count int
}

func (s *fakeSummoner) SummonMinions(defID string, count int, nearID types.EntityID) []types.EntityID {
	s.calls++
	s.defID = defID
	s.count = count
	return nil
}

func addEnemy(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Velocities[id] = &component.Velocity{Speed: 80, BaseSpeed: 80}
	ecs.Enemies[id] = &component.Enemy{
		DefID:     "ENEMY_NORMAL",
		Archetype: defs.ArchetypeNormal,
		Behavior:  defs.BehaviorDefault,
		Priority:  1,
	}
	return id
}

func addTower(ecs *entity.ECS, cell grid.Cell, element defs.Element) types.EntityID {
	id := ecs.NewEntity()
	x, y := cell.ToPixel(config.CellSize)
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: 100, Max: 100}
	ecs.Towers[id] = &component.Tower{
		DefID:             string("TOWER_" + element),
		Element:           element,
		Level:             1,
		Cell:              cell,
		SynergyMultiplier: 1.0,
	}
	ecs.Combats[id] = &component.Combat{FireRate: 1.0, Range: 3.0}
	return id
}

func setStatus(ecs *entity.ECS, id types.EntityID, tag defs.StatusTag) {
	ecs.Statuses[id] = &component.StatusEffect{Tag: tag, Timer: config.StatusDuration}
}

func newReactionEnv() (*entity.ECS, *ReactionSystem) {
	ecs := entity.NewECS()
	return ecs, NewReactionSystem(ecs, event.NewDispatcher())
}
