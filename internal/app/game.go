// internal/app/game.go
package app

import (
	"github.com/charmbracelet/log"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/system"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/internal/utils"
	"go-elemental-defense/pkg/grid"
)

// Game держит состояние боевого ядра и прогоняет один тик симуляции.
// Весь тик выполняется синхронно внутри одного вызова Update: движение
// врагов -> ближний бой -> стрельба башен -> полет снарядов -> реакции и
// урон -> чистка мертвых -> пересчет синергий, если расстановка менялась.
// Внешний драйвер сам решает, когда звать Update, и забирает TickReport.
type Game struct {
	Map        *grid.Map
	ECS        *entity.ECS
	Wave       int
	BaseHealth int
	Gold       int

	BehaviorSystem     *system.BehaviorSystem
	MeleeSystem        *system.MeleeSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	ReactionSystem     *system.ReactionSystem
	SynergySystem      *system.SynergySystem
	StatusEffectSystem *system.StatusEffectSystem
	WaveSystem         *system.WaveSystem
	TargetSelector     *system.TargetSelector
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	report       system.TickReport
	routeCache   []grid.Cell
	synergyDirty bool
	gameTime     float64
}

// NewGame собирает ядро. Нулевой сид означает случайный.
func NewGame(m *grid.Map, seed int64) *Game {
	if m == nil {
		panic("map cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Map:             m,
		ECS:             ecs,
		Wave:            1,
		BaseHealth:      config.BaseHealth,
		Gold:            config.StartingGold,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
	}

	g.TargetSelector = system.NewTargetSelector(ecs)
	g.ReactionSystem = system.NewReactionSystem(ecs, eventDispatcher)
	g.SynergySystem = system.NewSynergySystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, g.TargetSelector)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.ReactionSystem, g.Rng)
	g.WaveSystem = system.NewWaveSystem(ecs, g, g.Rng, eventDispatcher)
	g.BehaviorSystem = system.NewBehaviorSystem(ecs, g, g.Rng, g.WaveSystem, eventDispatcher)
	g.MeleeSystem = system.NewMeleeSystem(ecs)

	eventDispatcher.Subscribe(event.WaveEnded, g)
	return g
}

// GetRoute реализует interfaces.PathProvider. Маршрут кэшируется и
// сбрасывается при изменении занятости клеток.
func (g *Game) GetRoute(routeIndex int) []grid.Cell {
	_ = routeIndex // пока маршрут один
	if g.routeCache == nil {
		g.routeCache = g.Map.BuildRoute()
	}
	return g.routeCache
}

// GetBasePosition реализует interfaces.PathProvider.
func (g *Game) GetBasePosition() (float64, float64) {
	return g.Map.BasePosition()
}

// StartWave запускает следующую волну.
func (g *Game) StartWave() {
	wave := g.WaveSystem.StartWave(g.Wave)
	if wave == nil {
		return
	}
	g.ECS.Wave = wave
	g.ECS.GameState = component.WaveState
	log.Info("wave started", "wave", wave.Number, "enemies", wave.EnemiesToSpawn, "boss", wave.BossPending)
}

// Update прогоняет один тик и возвращает отчет для драйвера.
// Отчет переиспользуется между тиками: драйвер должен прочитать его
// до следующего вызова Update.
func (g *Game) Update(deltaTime float64) *system.TickReport {
	g.report.Reset()
	if g.ECS.GameState == component.GameOverState {
		return &g.report
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	if g.ECS.GameState == component.WaveState {
		g.WaveSystem.Update(deltaTime, g.ECS.Wave)
	}
	g.StatusEffectSystem.Update(deltaTime)
	g.BehaviorSystem.Update(deltaTime, &g.report)
	g.MeleeSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime, &g.report)
	g.cleanupDead()

	if g.synergyDirty {
		g.SynergySystem.Recompute()
		g.synergyDirty = false
	}

	if g.BaseHealth <= 0 {
		g.BaseHealth = 0
		g.ECS.GameState = component.GameOverState
		log.Info("game over", "wave", g.Wave)
	}
	return &g.report
}

// cleanupDead убирает из мира погибших врагов, прорвавшихся врагов и
// разрушенные башни. Только здесь сущности покидают симуляцию.
func (g *Game) cleanupDead() {
	for _, id := range g.ECS.SortedEnemyIDs() {
		enemy := g.ECS.Enemies[id]
		health := g.ECS.Healths[id]
		pos := g.ECS.Positions[id]

		if enemy.ReachedGoal {
			g.BaseHealth -= config.DamagePerLeak
			dead := system.DeadEnemy{ID: id, DefID: enemy.DefID, Leaked: true}
			if pos != nil {
				dead.X, dead.Y = pos.X, pos.Y
			}
			g.report.DeadEnemies = append(g.report.DeadEnemies, dead)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: id})
			g.ECS.RemoveEntity(id)
			continue
		}

		if health != nil && health.Value <= 0 {
			bounty := enemy.Bounty
			if enemy.SelfDestructed {
				bounty = 0 // подрыв — не заслуга игрока
			}
			g.Gold += bounty
			dead := system.DeadEnemy{ID: id, DefID: enemy.DefID, Bounty: bounty}
			if pos != nil {
				dead.X, dead.Y = pos.X, pos.Y
			}
			g.report.DeadEnemies = append(g.report.DeadEnemies, dead)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: id})
			g.ECS.RemoveEntity(id)
		}
	}

	for _, id := range g.ECS.SortedTowerIDs() {
		health := g.ECS.Healths[id]
		if health == nil || health.Value > 0 {
			continue
		}
		tower := g.ECS.Towers[id]
		g.Map.Release(tower.Cell)
		g.routeCache = nil
		g.synergyDirty = true
		g.report.DestroyedTowers = append(g.report.DestroyedTowers, system.DestroyedTower{ID: id, DefID: tower.DefID})
		g.EventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: tower.Cell})
		g.ECS.RemoveEntity(id)
	}
}

// OnEvent — конец волны возвращает игру в фазу постройки.
func (g *Game) OnEvent(e event.Event) {
	if e.Type != event.WaveEnded {
		return
	}
	if g.ECS.GameState != component.WaveState {
		return
	}
	g.ECS.GameState = component.BuildState
	g.ECS.Wave = nil
	g.Wave++
	log.Info("wave ended", "next_wave", g.Wave, "gold", g.Gold)
}

// GameTime возвращает суммарное время симуляции в секундах.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// FindTowerAt возвращает живую башню на клетке (0 — нет).
func (g *Game) FindTowerAt(cell grid.Cell) types.EntityID {
	for _, id := range g.ECS.SortedTowerIDs() {
		if g.ECS.Towers[id].Cell == cell && g.ECS.IsTowerAlive(id) {
			return id
		}
	}
	return 0
}
