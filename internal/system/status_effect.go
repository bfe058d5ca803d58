// internal/system/status_effect.go
package system

import "go-elemental-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом таймеров: элементальные
// метки, замедление, заморозка и молчание башен. Все таймеры убывают по
// реальному прошедшему времени, не по числу тиков.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	// Элементальные метки
	for id, status := range s.ecs.Statuses {
		status.Timer -= deltaTime
		if status.Timer <= 0 {
			delete(s.ecs.Statuses, id)
		}
	}

	// Замедление
	for id, effect := range s.ecs.SlowEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}

	// Заморозка
	for id, effect := range s.ecs.FreezeEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.FreezeEffects, id)
		}
	}

	// Молчание башен
	for _, tower := range s.ecs.Towers {
		if tower.SilenceTimer > 0 {
			tower.SilenceTimer -= deltaTime
			if tower.SilenceTimer < 0 {
				tower.SilenceTimer = 0
			}
		}
	}
}
