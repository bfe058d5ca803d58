package system

import (
	"testing"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/pkg/grid"
)

func TestStatusTagExpires(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewStatusEffectSystem(ecs)
	id := addEnemy(ecs, 100, 100, 100)
	ecs.Statuses[id] = &component.StatusEffect{Tag: defs.StatusFire, Timer: 0.5}

	ss.Update(0.3)
	if _, ok := ecs.Statuses[id]; !ok {
		t.Fatal("tag expired early")
	}
	ss.Update(0.3)
	if _, ok := ecs.Statuses[id]; ok {
		t.Error("tag should be gone after its timer runs out")
	}
}

func TestSlowAndFreezeExpire(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewStatusEffectSystem(ecs)
	id := addEnemy(ecs, 100, 100, 100)
	ecs.SlowEffects[id] = &component.SlowEffect{Timer: 0.4, SlowFactor: 0.5}
	ecs.FreezeEffects[id] = &component.FreezeEffect{Timer: 0.8}

	ss.Update(0.5)
	if _, ok := ecs.SlowEffects[id]; ok {
		t.Error("slow should expire first")
	}
	if _, ok := ecs.FreezeEffects[id]; !ok {
		t.Fatal("freeze expired early")
	}
	ss.Update(0.5)
	if _, ok := ecs.FreezeEffects[id]; ok {
		t.Error("freeze should be gone after its timer runs out")
	}
}

func TestSilenceTimerClampsAtZero(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewStatusEffectSystem(ecs)
	towerID := addTower(ecs, grid.Cell{Col: 3, Row: 3}, defs.ElementFire)
	ecs.Towers[towerID].SilenceTimer = 0.1

	ss.Update(0.5)
	if got := ecs.Towers[towerID].SilenceTimer; got != 0 {
		t.Errorf("silence timer = %v, want exactly 0 after expiry", got)
	}
	if ecs.Towers[towerID].Silenced() {
		t.Error("tower should no longer report itself silenced")
	}
}
