// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/types"
)

// ECS хранит все компоненты симуляции в плотных таблицах по EntityID.
// Идентификаторы стабильны: после смерти сущности ее ID никогда не
// переиспользуется, поэтому устаревшая ссылка просто не находит компонентов.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathFollows   map[types.EntityID]*component.PathFollow
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Projectiles   map[types.EntityID]*component.Projectile
	Enemies       map[types.EntityID]*component.Enemy
	Bosses        map[types.EntityID]*component.Boss
	Statuses      map[types.EntityID]*component.StatusEffect
	SlowEffects   map[types.EntityID]*component.SlowEffect
	FreezeEffects map[types.EntityID]*component.FreezeEffect

	Wave      *component.Wave
	GameState component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathFollows:   make(map[types.EntityID]*component.PathFollow),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Bosses:        make(map[types.EntityID]*component.Boss),
		Statuses:      make(map[types.EntityID]*component.StatusEffect),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		FreezeEffects: make(map[types.EntityID]*component.FreezeEffect),
		Wave:          nil,
		GameState:     component.BuildState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// IsEnemyAlive — проверка живости перед разыменованием слабой ссылки.
// Единственный корректный способ узнать, можно ли действовать на цель.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}

// IsTowerAlive — аналогичная проверка для башен.
func (ecs *ECS) IsTowerAlive(id types.EntityID) bool {
	if _, ok := ecs.Towers[id]; !ok {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}

// SortedEnemyIDs возвращает ID врагов по возрастанию.
// Обход map в Go недетерминирован; системы, которые бросают рандом или
// меняют общее состояние, обязаны идти в стабильном порядке, иначе
// повторяемость тика при одном сиде ломается.
func (ecs *ECS) SortedEnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedTowerIDs возвращает ID башен по возрастанию.
func (ecs *ECS) SortedTowerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Towers))
	for id := range ecs.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedProjectileIDs возвращает ID снарядов по возрастанию.
func (ecs *ECS) SortedProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathFollows, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Statuses, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.FreezeEffects, id)
}
