package system

import (
	"math"
	"testing"

	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/pkg/grid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSynergyIsDirectional(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	ice := addTower(ecs, grid.Cell{Col: 5, Row: 6}, defs.ElementIce)
	ss.Recompute()

	// Fire next to ice gets Steam Vent; ice next to fire gets nothing,
	// its only synergy requires lightning.
	if got := ecs.Towers[fire].SynergyMultiplier; !almostEqual(got, 1.3) {
		t.Errorf("fire multiplier = %v, want 1.3", got)
	}
	if got := ecs.Towers[ice].SynergyMultiplier; !almostEqual(got, 1.0) {
		t.Errorf("ice multiplier = %v, want 1.0", got)
	}
}

func TestSynergyMultipliersAreProduct(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	addTower(ecs, grid.Cell{Col: 5, Row: 6}, defs.ElementIce)
	addTower(ecs, grid.Cell{Col: 5, Row: 4}, defs.ElementOil)
	ss.Recompute()

	if got := ecs.Towers[fire].SynergyMultiplier; !almostEqual(got, 1.3*1.5) {
		t.Errorf("fire multiplier = %v, want %v", got, 1.3*1.5)
	}
	if got := len(ecs.Towers[fire].ActiveSynergies); got != 2 {
		t.Errorf("active synergies = %d, want 2", got)
	}
}

func TestSameSynergyActivatesOnce(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	addTower(ecs, grid.Cell{Col: 5, Row: 6}, defs.ElementIce)
	addTower(ecs, grid.Cell{Col: 5, Row: 4}, defs.ElementIce)
	ss.Recompute()

	if got := ecs.Towers[fire].SynergyMultiplier; !almostEqual(got, 1.3) {
		t.Errorf("two ice neighbors should still give 1.3, got %v", got)
	}
}

func TestDiagonalNeighborsDoNotCount(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	addTower(ecs, grid.Cell{Col: 6, Row: 6}, defs.ElementIce)
	ss.Recompute()

	if got := ecs.Towers[fire].SynergyMultiplier; !almostEqual(got, 1.0) {
		t.Errorf("diagonal neighbor gave multiplier %v, want 1.0", got)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	addTower(ecs, grid.Cell{Col: 5, Row: 6}, defs.ElementIce)

	ss.Recompute()
	first := ecs.Towers[fire].SynergyMultiplier
	ss.Recompute()
	ss.Recompute()
	if got := ecs.Towers[fire].SynergyMultiplier; got != first {
		t.Errorf("multiplier drifted across recomputes: %v -> %v", first, got)
	}
}

func TestDeadTowersExcludedFromSynergy(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	ice := addTower(ecs, grid.Cell{Col: 5, Row: 6}, defs.ElementIce)
	ss.Recompute()

	ecs.Healths[ice].Value = 0
	ss.Recompute()
	if got := ecs.Towers[fire].SynergyMultiplier; !almostEqual(got, 1.0) {
		t.Errorf("dead neighbor still feeds synergy: %v", got)
	}
}

func TestPreviewDoesNotMutateState(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	ss.Recompute()
	before := ecs.Towers[fire].SynergyMultiplier

	preview := ss.Preview(defs.ElementIce, grid.Cell{Col: 5, Row: 6})

	if got := ecs.Towers[fire].SynergyMultiplier; got != before {
		t.Errorf("preview mutated a real multiplier: %v -> %v", before, got)
	}
	if len(ecs.Towers) != 1 {
		t.Errorf("preview created a tower: %d towers", len(ecs.Towers))
	}
	gained := preview.Gains[fire]
	if len(gained) != 1 || gained[0] != "SYNERGY_STEAM" {
		t.Errorf("preview gains for fire tower = %v, want [SYNERGY_STEAM]", gained)
	}
}

func TestPreviewReportsLosses(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	// Placing a new tower can only add synergies for existing neighbors,
	// never remove them, so the losses map stays empty.
	fire := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	addTower(ecs, grid.Cell{Col: 5, Row: 6}, defs.ElementIce)
	ss.Recompute()

	preview := ss.Preview(defs.ElementOil, grid.Cell{Col: 5, Row: 4})
	if len(preview.Losses) != 0 {
		t.Errorf("adding a tower must not cost neighbors synergies: %v", preview.Losses)
	}
	gained := preview.Gains[fire]
	if len(gained) != 1 || gained[0] != "SYNERGY_WILDFIRE" {
		t.Errorf("preview gains = %v, want [SYNERGY_WILDFIRE]", gained)
	}
}

func TestPreviewMultiplierForNewTower(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewSynergySystem(ecs)

	addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementIce)
	ss.Recompute()

	preview := ss.Preview(defs.ElementLightning, grid.Cell{Col: 5, Row: 6})
	if !almostEqual(preview.Multiplier, 1.4) {
		t.Errorf("preview multiplier = %v, want 1.4 (Superconduct)", preview.Multiplier)
	}
}
