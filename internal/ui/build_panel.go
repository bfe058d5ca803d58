package ui

import (
	"fmt"
	"image/color"

	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BuildPanel — нижняя панель выбора стихии башни. Показывает стоимость,
// выбранную стихию и предпросмотр синергий для клетки под курсором.
type BuildPanel struct {
	X, Y     float32
	Selected defs.Element
	Elements []defs.Element

	// Предпросмотр для клетки под курсором; обнуляется, когда курсор
	// уходит с поля.
	Preview    *system.PreviewResult
	PreviewSet bool
}

func NewBuildPanel(x, y float32) *BuildPanel {
	return &BuildPanel{
		X:        x,
		Y:        y,
		Selected: defs.ElementPhysical,
		Elements: []defs.Element{
			defs.ElementPhysical,
			defs.ElementFire,
			defs.ElementIce,
			defs.ElementLightning,
			defs.ElementOil,
		},
	}
}

// SelectIndex выбирает стихию по номеру клавиши (0-based).
func (p *BuildPanel) SelectIndex(i int) {
	if i >= 0 && i < len(p.Elements) {
		p.Selected = p.Elements[i]
	}
}

// SetPreview запоминает результат предпросмотра для отрисовки.
func (p *BuildPanel) SetPreview(preview system.PreviewResult) {
	p.Preview = &preview
	p.PreviewSet = true
}

// ClearPreview сбрасывает предпросмотр.
func (p *BuildPanel) ClearPreview() {
	p.Preview = nil
	p.PreviewSet = false
}

func (p *BuildPanel) Draw(screen *ebiten.Image, gold int, face font.Face) {
	x := int(p.X)
	y := int(p.Y)

	for idx, element := range p.Elements {
		def := defs.TowerByElement[element]
		if def == nil {
			continue
		}
		cost := def.LevelStats(1).Cost
		label := fmt.Sprintf("[%d] %s (%d)", idx+1, def.Name, cost)

		labelColor := color.RGBA{180, 180, 180, 255}
		if element == p.Selected {
			labelColor = color.RGBA{255, 255, 255, 255}
			bounds := text.BoundString(face, label)
			vector.DrawFilledRect(screen,
				float32(x-4), float32(y+bounds.Min.Y-2),
				float32(bounds.Max.X-bounds.Min.X+8), float32(bounds.Max.Y-bounds.Min.Y+4),
				color.RGBA{70, 100, 120, 160}, false)
		}
		if cost > gold {
			labelColor = color.RGBA{220, 60, 60, 255}
		}

		text.Draw(screen, label, face, x, y, labelColor)
		y += 18
	}

	text.Draw(screen, fmt.Sprintf("Gold: %d", gold), face, x, y+8, color.RGBA{255, 215, 0, 255})

	if p.PreviewSet && p.Preview != nil {
		y += 30
		text.Draw(screen, fmt.Sprintf("Synergy x%.2f", p.Preview.Multiplier), face, x, y, color.White)
		for _, ids := range p.Preview.Gains {
			for _, id := range ids {
				y += 16
				text.Draw(screen, "+ "+id, face, x, y, color.RGBA{80, 220, 80, 255})
			}
		}
		for _, ids := range p.Preview.Losses {
			for _, id := range ids {
				y += 16
				text.Draw(screen, "- "+id, face, x, y, color.RGBA{220, 60, 60, 255})
			}
		}
	}
}
