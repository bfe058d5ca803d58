package system

import (
	"testing"

	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/pkg/grid"
)

func TestPriorityBeatsDistance(t *testing.T) {
	ecs := entity.NewECS()
	selector := NewTargetSelector(ecs)

	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	tower := ecs.Towers[towerID]
	combat := ecs.Combats[towerID]
	tx, ty := tower.Cell.ToPixel(config.CellSize)

	near := addEnemy(ecs, tx+20, ty, 100) // priority 1, close
	boss := addEnemy(ecs, tx+120, ty, 100)
	ecs.Enemies[boss].Priority = 3

	if got := selector.SelectTarget(towerID, tower, combat); got != boss {
		t.Errorf("selected %d, want boss %d over nearer enemy %d", got, boss, near)
	}
}

func TestDistanceBreaksPriorityTies(t *testing.T) {
	ecs := entity.NewECS()
	selector := NewTargetSelector(ecs)

	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	tower := ecs.Towers[towerID]
	combat := ecs.Combats[towerID]
	tx, ty := tower.Cell.ToPixel(config.CellSize)

	far := addEnemy(ecs, tx+120, ty, 100)
	near := addEnemy(ecs, tx+20, ty, 100)

	if got := selector.SelectTarget(towerID, tower, combat); got != near {
		t.Errorf("selected %d, want nearest %d over %d", got, near, far)
	}
}

func TestTargetStickiness(t *testing.T) {
	ecs := entity.NewECS()
	selector := NewTargetSelector(ecs)

	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	tower := ecs.Towers[towerID]
	combat := ecs.Combats[towerID]
	tx, ty := tower.Cell.ToPixel(config.CellSize)

	first := addEnemy(ecs, tx+40, ty, 100)
	if got := selector.SelectTarget(towerID, tower, combat); got != first {
		t.Fatalf("initial selection = %d, want %d", got, first)
	}

	// A boss entering range must not steal the lock while the current
	// target is alive and in range.
	boss := addEnemy(ecs, tx+30, ty, 100)
	ecs.Enemies[boss].Priority = 3
	if got := selector.SelectTarget(towerID, tower, combat); got != first {
		t.Errorf("lock broken: selected %d, want sticky target %d", got, first)
	}

	// Once the target leaves range, the scan runs again.
	ecs.Positions[first].X = tx + combat.Range*config.CellSize + 50
	if got := selector.SelectTarget(towerID, tower, combat); got != boss {
		t.Errorf("after target left range selected %d, want %d", got, boss)
	}
}

func TestDeadTargetIsDropped(t *testing.T) {
	ecs := entity.NewECS()
	selector := NewTargetSelector(ecs)

	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	tower := ecs.Towers[towerID]
	combat := ecs.Combats[towerID]
	tx, ty := tower.Cell.ToPixel(config.CellSize)

	target := addEnemy(ecs, tx+40, ty, 100)
	selector.SelectTarget(towerID, tower, combat)

	ecs.Healths[target].Value = 0
	if got := selector.SelectTarget(towerID, tower, combat); got != 0 {
		t.Errorf("selected %d, want 0 with only a dead enemy around", got)
	}
	if tower.TargetID != 0 {
		t.Errorf("cached target = %d, want cleared", tower.TargetID)
	}
}

func TestOutOfRangeEnemiesIgnored(t *testing.T) {
	ecs := entity.NewECS()
	selector := NewTargetSelector(ecs)

	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	tower := ecs.Towers[towerID]
	combat := ecs.Combats[towerID]
	tx, ty := tower.Cell.ToPixel(config.CellSize)

	addEnemy(ecs, tx+combat.Range*config.CellSize+10, ty, 100)
	if got := selector.SelectTarget(towerID, tower, combat); got != 0 {
		t.Errorf("selected %d, want 0 for out-of-range enemy", got)
	}
}
