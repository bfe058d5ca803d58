package system

import (
	"testing"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
)

func TestMeltTriplesDamage(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 1000)
	setStatus(ecs, id, defs.StatusIce)

	var report TickReport
	result := rs.ProcessAttack(id, 100, defs.ElementFire, false, &report)

	if !result.Fired || result.Kind != defs.ReactionMelt {
		t.Fatalf("expected MELT reaction, got fired=%v kind=%q", result.Fired, result.Kind)
	}
	if result.Damage != 300 {
		t.Errorf("melt damage = %d, want 300", result.Damage)
	}
	if got := ecs.Healths[id].Value; got != 700 {
		t.Errorf("health after melt = %d, want 700", got)
	}
	if _, ok := ecs.Statuses[id]; ok {
		t.Error("ice status should be consumed by the reaction")
	}
	if len(report.Hits) != 1 || report.Hits[0].Reaction != defs.ReactionMelt {
		t.Errorf("report should contain one MELT hit, got %+v", report.Hits)
	}
}

func TestStatusOverwriteLastElementWins(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 1000)

	var report TickReport
	rs.ProcessAttack(id, 10, defs.ElementFire, false, &report)
	if got := ecs.Statuses[id].Tag; got != defs.StatusFire {
		t.Fatalf("tag after fire hit = %q, want FIRE", got)
	}

	// Fire tag + ice attack is not a reaction pair: the tag is replaced.
	result := rs.ProcessAttack(id, 10, defs.ElementIce, false, &report)
	if result.Fired {
		t.Fatal("fire status + ice attack must not fire a reaction")
	}
	if got := ecs.Statuses[id].Tag; got != defs.StatusIce {
		t.Errorf("tag after ice hit = %q, want ICE", got)
	}
}

func TestPhysicalAttackLeavesNoTag(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 1000)

	var report TickReport
	rs.ProcessAttack(id, 10, defs.ElementPhysical, false, &report)
	if _, ok := ecs.Statuses[id]; ok {
		t.Error("physical attack must not leave a status tag")
	}

	// And it must not clear an existing one either.
	setStatus(ecs, id, defs.StatusOil)
	rs.ProcessAttack(id, 10, defs.ElementPhysical, false, &report)
	if got := ecs.Statuses[id].Tag; got != defs.StatusOil {
		t.Errorf("tag after physical hit = %q, want OIL", got)
	}
}

func TestReactionConsumesStatusImmediately(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 10000)
	setStatus(ecs, id, defs.StatusIce)

	var report TickReport
	first := rs.ProcessAttack(id, 100, defs.ElementFire, false, &report)
	second := rs.ProcessAttack(id, 100, defs.ElementFire, false, &report)

	if !first.Fired {
		t.Fatal("first hit should melt")
	}
	if second.Fired {
		t.Error("second fire hit must be a plain hit, the tag is gone")
	}
	if second.Damage != 100 {
		t.Errorf("second hit damage = %d, want 100", second.Damage)
	}
	if got := ecs.Statuses[id].Tag; got != defs.StatusFire {
		t.Errorf("second hit should re-tag with FIRE, got %q", got)
	}
}

func TestFreezeScaledByCCImmunity(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 10000)
	ecs.Enemies[id].CCImmunity = 0.8
	setStatus(ecs, id, defs.StatusIce)

	var report TickReport
	result := rs.ProcessAttack(id, 100, defs.ElementLightning, false, &report)

	if !result.Fired || result.Kind != defs.ReactionFreeze {
		t.Fatalf("expected FREEZE, got %+v", result)
	}
	effect, ok := ecs.FreezeEffects[id]
	if !ok {
		t.Fatal("freeze effect missing")
	}
	want := config.FreezeDuration * 0.2
	if diff := effect.Timer - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("freeze timer = %v, want %v", effect.Timer, want)
	}
	if got := ecs.Statuses[id].Tag; got != defs.StatusFrozen {
		t.Errorf("tag = %q, want FROZEN", got)
	}
}

func TestFreezeBelowFloorDiscarded(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 10000)
	ecs.Enemies[id].CCImmunity = 0.95 // 2s * 0.05 = 0.1s, below the 0.2s floor
	setStatus(ecs, id, defs.StatusIce)

	var report TickReport
	result := rs.ProcessAttack(id, 100, defs.ElementLightning, false, &report)

	if !result.Fired {
		t.Fatal("reaction still fires, only the CC part is discarded")
	}
	if _, ok := ecs.FreezeEffects[id]; ok {
		t.Error("freeze below the duration floor must be discarded entirely")
	}
	if _, ok := ecs.Statuses[id]; ok {
		t.Error("ice tag is still consumed, and no FROZEN tag is applied")
	}
}

func TestExplosionFalloff(t *testing.T) {
	ecs, rs := newReactionEnv()
	primary := addEnemy(ecs, 100, 100, 1000)
	setStatus(ecs, primary, defs.StatusOil)

	edgeDist := 2.0 * config.CellSize // reaction radius in pixels
	atEdge := addEnemy(ecs, 100+edgeDist, 100, 1000)
	outside := addEnemy(ecs, 100, 100+edgeDist+1, 1000)

	var report TickReport
	result := rs.ProcessAttack(primary, 100, defs.ElementFire, false, &report)

	if !result.Fired || result.Kind != defs.ReactionExplosion {
		t.Fatalf("expected EXPLOSION, got %+v", result)
	}
	// Primary takes the full 100 * 1.5.
	if got := 1000 - ecs.Healths[primary].Value; got != 150 {
		t.Errorf("primary damage = %d, want 150", got)
	}
	// At the radius edge the falloff bottoms out at 50%.
	if got := 1000 - ecs.Healths[atEdge].Value; got != 75 {
		t.Errorf("edge damage = %d, want 75", got)
	}
	if got := ecs.Healths[outside].Value; got != 1000 {
		t.Errorf("enemy outside the radius lost %d health", 1000-got)
	}
	if len(result.Affected) != 2 {
		t.Errorf("affected = %v, want primary and edge enemy", result.Affected)
	}
}

func TestExplosionBurnsOilOffAffected(t *testing.T) {
	ecs, rs := newReactionEnv()
	primary := addEnemy(ecs, 100, 100, 1000)
	setStatus(ecs, primary, defs.StatusOil)

	oiled := addEnemy(ecs, 130, 100, 1000)
	setStatus(ecs, oiled, defs.StatusOil)
	iced := addEnemy(ecs, 100, 130, 1000)
	setStatus(ecs, iced, defs.StatusIce)

	var report TickReport
	rs.ProcessAttack(primary, 100, defs.ElementFire, false, &report)

	if _, ok := ecs.Statuses[oiled]; ok {
		t.Error("secondary oil tag should burn off in the blast")
	}
	if got := ecs.Statuses[iced].Tag; got != defs.StatusIce {
		t.Error("non-oil tags on secondaries must survive, blast damage is clean")
	}
}

func TestResistanceReducesMatchingElement(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 1000)
	ecs.Enemies[id].Resistance = defs.ElementFire

	var report TickReport
	result := rs.ProcessAttack(id, 100, defs.ElementFire, false, &report)
	if result.Damage != config.ResistMinDamage {
		t.Errorf("resisted damage = %d, want %d", result.Damage, config.ResistMinDamage)
	}

	// Physical damage ignores resistances entirely.
	ecs.Enemies[id].Resistance = defs.ElementPhysical
	delete(ecs.Statuses, id)
	result = rs.ProcessAttack(id, 100, defs.ElementPhysical, false, &report)
	if result.Damage != 100 {
		t.Errorf("physical damage = %d, want 100", result.Damage)
	}
}

func TestAttackOnDeadTargetIsNoop(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 100)
	ecs.Healths[id].Value = 0

	var report TickReport
	result := rs.ProcessAttack(id, 100, defs.ElementFire, false, &report)
	if result.Damage != 0 || len(report.Hits) != 0 {
		t.Errorf("dead target must be skipped silently, got %+v", result)
	}
}

func TestHitOnFrozenOverwritesTag(t *testing.T) {
	ecs, rs := newReactionEnv()
	id := addEnemy(ecs, 100, 100, 10000)
	ecs.Statuses[id] = &component.StatusEffect{Tag: defs.StatusFrozen, Timer: 1.0}

	// FROZEN + fire is not in the reaction table, so the hit overwrites the
	// tag like any other non-reacting hit. Mutual exclusivity holds: one tag.
	var report TickReport
	rs.ProcessAttack(id, 10, defs.ElementFire, false, &report)
	if got := ecs.Statuses[id].Tag; got != defs.StatusFire {
		t.Errorf("tag = %q, want FIRE (single-tag invariant)", got)
	}
}
