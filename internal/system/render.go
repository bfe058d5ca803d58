// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/entity"
	"go-elemental-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Цвета элементальных меток на врагах.
var statusColors = map[defs.StatusTag]color.RGBA{
	defs.StatusFire:      {255, 100, 30, 200},
	defs.StatusIce:       {120, 200, 255, 200},
	defs.StatusLightning: {255, 240, 80, 200},
	defs.StatusOil:       {90, 70, 40, 220},
	defs.StatusFrozen:    {200, 240, 255, 230},
}

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	// Сначала сущности с Renderable (башни и враги)
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		radius := render.Radius
		if _, isBoss := s.ecs.Bosses[id]; isBoss {
			// Пульсация, чтобы босс читался на поле
			radius *= float32(1 + 0.08*math.Sin(gameTime*2*math.Pi))
		}

		if render.HasStroke {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius+2, color.RGBA{255, 255, 255, 255}, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, render.Color, true)

		// Кольцо элементальной метки
		if status, ok := s.ecs.Statuses[id]; ok && status.Tag != defs.StatusNone {
			if c, known := statusColors[status.Tag]; known {
				vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius+4, 2.0, c, true)
			}
		}

		// Заглушенная башня помечается крестом
		if tower, ok := s.ecs.Towers[id]; ok && tower.Silenced() {
			cross := radius * 0.7
			vector.StrokeLine(screen, float32(pos.X)-cross, float32(pos.Y)-cross, float32(pos.X)+cross, float32(pos.Y)+cross, 2.0, color.RGBA{255, 60, 60, 255}, true)
			vector.StrokeLine(screen, float32(pos.X)-cross, float32(pos.Y)+cross, float32(pos.X)+cross, float32(pos.Y)-cross, 2.0, color.RGBA{255, 60, 60, 255}, true)
		}

		s.drawHealthBar(screen, id, pos.X, pos.Y, radius)
	}

	// Затем снаряды: у них нет Renderable, цвет лежит в самом компоненте
	for id, proj := range s.ecs.Projectiles {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(config.ProjectileRadius), proj.Color, true)
		}
	}
}

// drawHealthBar рисует полоску здоровья над сущностью. Полные полоски
// не рисуются, чтобы не засорять экран.
func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, id types.EntityID, x, y float64, radius float32) {
	health, ok := s.ecs.Healths[id]
	if !ok || health.Max <= 0 || health.Value >= health.Max {
		return
	}
	frac := float64(health.Value) / float64(health.Max)
	if frac < 0 {
		frac = 0
	}

	width := float32(radius*2 + 6)
	barX := float32(x) - width/2
	barY := float32(y) - radius - 8

	vector.DrawFilledRect(screen, barX, barY, width, 3, color.RGBA{40, 40, 40, 220}, false)
	vector.DrawFilledRect(screen, barX, barY, width*float32(frac), 3, color.RGBA{80, 220, 80, 255}, false)
}
