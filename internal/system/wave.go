// internal/system/wave.go
package system

import (
	"math"

	"github.com/charmbracelet/log"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/event"
	"go-elemental-defense/internal/interfaces"
	"go-elemental-defense/internal/types"
	"go-elemental-defense/pkg/grid"
)

// WaveSystem спавнит врагов волны по таймеру и отслеживает ее окончание.
// Здоровье и атака врагов растут мультипликативно с номером волны.
type WaveSystem struct {
	ecs             *entity.ECS
	paths           interfaces.PathProvider
	rng             interfaces.RandSource
	eventDispatcher *event.Dispatcher
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, paths interfaces.PathProvider, rng interfaces.RandSource, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		paths:           paths,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	eventDispatcher.Subscribe(event.EnemyReachedBase, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 || wave.BossPending {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnNext(wave)
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

func (s *WaveSystem) spawnNext(wave *component.Wave) {
	pattern := defs.PatternForWave(wave.Number)

	if wave.EnemiesToSpawn > 0 {
		wave.EnemiesToSpawn--
		defID := s.rng.ChooseWeighted(pattern.Entries)
		resistance := s.rollResistance(pattern.ResistanceChance)
		s.SpawnEnemy(defID, wave.Number, wave.CurrentRoute, 0, resistance)
		return
	}
	// Босс выходит последним.
	wave.BossPending = false
	s.SpawnEnemy("ENEMY_BOSS", wave.Number, wave.CurrentRoute, 0, "")
}

// rollResistance разыгрывает один случайный резист к огню, льду или молнии.
func (s *WaveSystem) rollResistance(chance float64) defs.Element {
	if !s.rng.Chance(chance) {
		return ""
	}
	options := [3]defs.Element{defs.ElementFire, defs.ElementIce, defs.ElementLightning}
	return options[s.rng.Intn(3)]
}

// SpawnEnemy создает врага на маршруте с масштабом статов по номеру волны.
// startIndex позволяет призывать миньонов не от входа, а от позиции босса.
func (s *WaveSystem) SpawnEnemy(defID string, waveNumber int, route []grid.Cell, startIndex int, resistance defs.Element) types.EntityID {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Error("wave: enemy definition not found", "def_id", defID)
		return 0
	}
	if len(route) == 0 {
		log.Error("wave: empty route", "def_id", defID)
		return 0
	}
	if startIndex >= len(route) {
		startIndex = len(route) - 1
	}

	healthScale := math.Pow(config.WaveHealthScale, float64(waveNumber-1))
	attackScale := math.Pow(config.WaveAttackScale, float64(waveNumber-1))
	health := int(math.Round(float64(def.Health) * healthScale))
	attack := int(math.Round(float64(def.AttackDamage) * attackScale))

	id := s.ecs.NewEntity()
	x, y := route[startIndex].ToPixel(config.CellSize)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed, BaseSpeed: def.Speed}
	s.ecs.PathFollows[id] = &component.PathFollow{Cells: route, CurrentIndex: startIndex}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    float32(def.RadiusFactor * config.CellSize),
		HasStroke: def.Archetype == defs.ArchetypeBoss,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:          defID,
		Archetype:      def.Archetype,
		Behavior:       def.Behavior,
		Priority:       def.Priority,
		AttackDamage:   attack,
		AttackCooldown: def.AttackCooldown,
		EvasionChance:  def.EvasionChance,
		CCImmunity:     def.CCImmunity,
		Resistance:     resistance,
		Bounty:         def.Bounty,
	}
	if def.Skills != nil {
		s.ecs.Bosses[id] = &component.Boss{
			SkillCooldown: def.Skills.Cooldown,
			SkillTimer:    def.Skills.Cooldown,
		}
	}
	s.activeEnemies++
	return id
}

// SummonMinions — призыв миньонов босса: они появляются на его маршруте,
// с его текущего места, и масштабируются его волной.
func (s *WaveSystem) SummonMinions(defID string, count int, nearID types.EntityID) []types.EntityID {
	path := s.ecs.PathFollows[nearID]
	wave := s.ecs.Wave
	if path == nil || wave == nil {
		return nil
	}
	spawned := make([]types.EntityID, 0, count)
	for i := 0; i < count; i++ {
		startIndex := path.CurrentIndex
		if startIndex > 0 {
			startIndex--
		}
		id := s.SpawnEnemy(defID, wave.Number, path.Cells, startIndex, "")
		if id != 0 {
			spawned = append(spawned, id)
		}
	}
	return spawned
}

// StartWave подготавливает состояние новой волны.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	route := s.paths.GetRoute(0)
	if route == nil {
		log.Error("wave: no route to base", "wave", waveNumber)
		return nil
	}

	pattern := defs.PatternForWave(waveNumber)
	count := config.EnemiesPerWave + (waveNumber-1)*config.EnemiesIncrementPerWave
	interval := config.InitialSpawnInterval - float64(waveNumber-1)*config.SpawnIntervalDecrement
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}

	bossPending := pattern.BossEvery > 0 && waveNumber%pattern.BossEvery == 0

	return &component.Wave{
		Number:         waveNumber,
		EnemiesToSpawn: count,
		SpawnTimer:     0,
		SpawnInterval:  interval,
		CurrentRoute:   route,
		BossPending:    bossPending,
	}
}

// ResetActiveEnemies сбрасывает счетчик живых врагов волны.
func (s *WaveSystem) ResetActiveEnemies() {
	s.activeEnemies = 0
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed, event.EnemyReachedBase:
		s.activeEnemies--
	}
}
