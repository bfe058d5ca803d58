package system

import (
	"math"
	"testing"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/pkg/grid"
)

func newBehaviorEnv(rng *scriptedRand, summoner Summoner) (*entity.ECS, *BehaviorSystem, *fakePaths) {
	ecs := entity.NewECS()
	paths := newFakePaths(
		grid.Cell{Col: 0, Row: 5},
		grid.Cell{Col: 1, Row: 5},
		grid.Cell{Col: 2, Row: 5},
		grid.Cell{Col: 10, Row: 5},
	)
	bs := NewBehaviorSystem(ecs, paths, rng, summoner, event.NewDispatcher())
	return ecs, bs, paths
}

func withPath(ecs *entity.ECS, id types.EntityID, route []grid.Cell, index int) {
	ecs.PathFollows[id] = &component.PathFollow{Cells: route, CurrentIndex: index}
}

func TestFollowRouteAdvancesWaypoints(t *testing.T) {
	ecs, bs, paths := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	x, y := paths.route[0].ToPixel(config.CellSize)
	id := addEnemy(ecs, x, y, 100)
	withPath(ecs, id, paths.route, 1)

	var report TickReport
	// 80 px/s over one cell (56 px) needs 0.7s.
	for i := 0; i < 20; i++ {
		bs.Update(0.05, &report)
	}
	if got := ecs.PathFollows[id].CurrentIndex; got < 2 {
		t.Errorf("waypoint index = %d, want at least 2 after crossing the cell", got)
	}
	if ecs.Enemies[id].ReachedGoal {
		t.Error("goal reached too early")
	}
}

func TestReachingLastWaypointMarksGoal(t *testing.T) {
	ecs, bs, paths := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	last := paths.route[len(paths.route)-1]
	x, y := last.ToPixel(config.CellSize)
	id := addEnemy(ecs, x-1, y, 100)
	withPath(ecs, id, paths.route, len(paths.route)-1)

	var report TickReport
	bs.Update(0.1, &report)
	if !ecs.Enemies[id].ReachedGoal {
		t.Error("enemy at the last waypoint should reach the goal")
	}
}

func TestGhostMovesStraightToBase(t *testing.T) {
	ecs, bs, paths := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	id := addEnemy(ecs, 0, 0, 100)
	ecs.Enemies[id].Behavior = defs.BehaviorIgnorePath
	// No PathFollow at all: ghosts do not need a route.

	var report TickReport
	bs.Update(0.1, &report)

	bx, by := paths.GetBasePosition()
	pos := ecs.Positions[id]
	wantDir := math.Atan2(by, bx)
	gotDir := math.Atan2(pos.Y, pos.X)
	if math.Abs(wantDir-gotDir) > 1e-6 {
		t.Errorf("ghost heading = %v, want straight line to base %v", gotDir, wantDir)
	}
}

func TestFrozenEnemyDoesNotMove(t *testing.T) {
	ecs, bs, paths := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	x, y := paths.route[0].ToPixel(config.CellSize)
	id := addEnemy(ecs, x, y, 100)
	withPath(ecs, id, paths.route, 1)
	ecs.FreezeEffects[id] = &component.FreezeEffect{Timer: 1.0}

	var report TickReport
	bs.Update(0.1, &report)

	pos := ecs.Positions[id]
	if pos.X != x || pos.Y != y {
		t.Errorf("frozen enemy moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestSlowReducesSpeed(t *testing.T) {
	ecs, bs, paths := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	x, y := paths.route[0].ToPixel(config.CellSize)

	normal := addEnemy(ecs, x, y, 100)
	withPath(ecs, normal, paths.route, 1)
	slowed := addEnemy(ecs, x, y, 100)
	withPath(ecs, slowed, paths.route, 1)
	ecs.SlowEffects[slowed] = &component.SlowEffect{Timer: 1.0, SlowFactor: 0.5}

	var report TickReport
	bs.Update(0.1, &report)

	normalDist := ecs.Positions[normal].X - x
	slowedDist := ecs.Positions[slowed].X - x
	if math.Abs(slowedDist*2-normalDist) > 1e-9 {
		t.Errorf("slowed enemy covered %v, want half of %v", slowedDist, normalDist)
	}
}

func TestBreakerDetonatesOnContact(t *testing.T) {
	ecs, bs, _ := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	tx, ty := grid.Cell{Col: 5, Row: 5}.ToPixel(config.CellSize)

	id := addEnemy(ecs, tx-5, ty, 100)
	enemy := ecs.Enemies[id]
	enemy.Archetype = defs.ArchetypeBreaker
	enemy.Behavior = defs.BehaviorSeekTower
	enemy.AttackDamage = 60

	var report TickReport
	bs.Update(0.05, &report)

	if got := ecs.Healths[towerID].Value; got != 40 {
		t.Errorf("tower health = %d, want 40 after a 60 damage detonation", got)
	}
	if got := ecs.Healths[id].Value; got != 0 {
		t.Errorf("breaker health = %d, want 0 after detonating", got)
	}
	if !enemy.SelfDestructed {
		t.Error("detonation must be marked as self-destruction (no bounty)")
	}
}

func TestBreakerRetargetsWhenTowerDies(t *testing.T) {
	ecs, bs, _ := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	near := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementPhysical)
	far := addTower(ecs, grid.Cell{Col: 9, Row: 5}, defs.ElementPhysical)

	id := addEnemy(ecs, 0, 5.5*config.CellSize, 100)
	enemy := ecs.Enemies[id]
	enemy.Archetype = defs.ArchetypeBreaker
	enemy.Behavior = defs.BehaviorSeekTower

	var report TickReport
	bs.Update(0.01, &report)
	if enemy.TowerTargetID != near {
		t.Fatalf("target = %d, want nearest tower %d", enemy.TowerTargetID, near)
	}

	ecs.Healths[near].Value = 0
	bs.Update(0.01, &report)
	if enemy.TowerTargetID != far {
		t.Errorf("target = %d, want retarget to %d after the near tower died", enemy.TowerTargetID, far)
	}
}

func TestBreakerFollowsRouteWithoutTowers(t *testing.T) {
	ecs, bs, paths := newBehaviorEnv(&scriptedRand{}, &fakeSummoner{})
	x, y := paths.route[0].ToPixel(config.CellSize)
	id := addEnemy(ecs, x, y, 100)
	enemy := ecs.Enemies[id]
	enemy.Archetype = defs.ArchetypeBreaker
	enemy.Behavior = defs.BehaviorSeekTower
	withPath(ecs, id, paths.route, 1)

	var report TickReport
	bs.Update(0.1, &report)
	if got := ecs.Positions[id].X; got <= x {
		t.Error("breaker without targets should fall back to the route")
	}
}

func addBoss(ecs *entity.ECS, x, y float64) types.EntityID {
	id := addEnemy(ecs, x, y, 1500)
	enemy := ecs.Enemies[id]
	enemy.DefID = "ENEMY_BOSS"
	enemy.Archetype = defs.ArchetypeBoss
	enemy.Behavior = defs.BehaviorBossSkills
	enemy.Priority = 3
	ecs.Bosses[id] = &component.Boss{SkillCooldown: 8, SkillTimer: 0.01}
	return id
}

func TestBossSkillFiresAndResetsCooldown(t *testing.T) {
	rng := &scriptedRand{ints: []int{0}} // skill roll: summon
	summoner := &fakeSummoner{}
	ecs, bs, _ := newBehaviorEnv(rng, summoner)
	id := addBoss(ecs, 100, 100)

	var report TickReport
	bs.Update(0.05, &report)

	if len(report.BossSkills) != 1 {
		t.Fatalf("boss skills = %d, want 1", len(report.BossSkills))
	}
	if report.BossSkills[0].Skill != defs.SkillSummon {
		t.Errorf("skill = %q, want SUMMON", report.BossSkills[0].Skill)
	}
	if summoner.calls != 1 || summoner.count != 3 {
		t.Errorf("summoner calls=%d count=%d, want 1 call of 3 minions", summoner.calls, summoner.count)
	}
	if got := ecs.Bosses[id].SkillTimer; got != 8 {
		t.Errorf("skill timer = %v, want reset to cooldown 8", got)
	}
}

func TestBossHealRestoresFractionOfMax(t *testing.T) {
	rng := &scriptedRand{ints: []int{1}} // skill roll: heal
	ecs, bs, _ := newBehaviorEnv(rng, &fakeSummoner{})
	id := addBoss(ecs, 100, 100)
	ecs.Healths[id].Value = 500

	var report TickReport
	bs.Update(0.05, &report)

	// 15% of max 1500 = 225.
	if got := ecs.Healths[id].Value; got != 725 {
		t.Errorf("health after heal = %d, want 725", got)
	}
}

func TestBossSilenceMutesATower(t *testing.T) {
	rng := &scriptedRand{ints: []int{2, 0}} // skill roll: silence, tower pick
	ecs, bs, _ := newBehaviorEnv(rng, &fakeSummoner{})
	towerID := addTower(ecs, grid.Cell{Col: 5, Row: 5}, defs.ElementFire)
	addBoss(ecs, 100, 100)

	var report TickReport
	bs.Update(0.05, &report)

	if got := ecs.Towers[towerID].SilenceTimer; got != 3.0 {
		t.Errorf("silence timer = %v, want 3.0", got)
	}
	if !ecs.Towers[towerID].Silenced() {
		t.Error("tower should report itself silenced")
	}
}

func TestBossSkillTicksWhileFrozen(t *testing.T) {
	rng := &scriptedRand{ints: []int{1}}
	ecs, bs, _ := newBehaviorEnv(rng, &fakeSummoner{})
	id := addBoss(ecs, 100, 100)
	ecs.FreezeEffects[id] = &component.FreezeEffect{Timer: 5}
	ecs.Healths[id].Value = 500

	var report TickReport
	bs.Update(0.05, &report)

	if len(report.BossSkills) != 1 {
		t.Error("freeze stops movement, not the skill clock")
	}
	if pos := ecs.Positions[id]; pos.X != 100 || pos.Y != 100 {
		t.Error("frozen boss must not move")
	}
}
