package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BaseHealthIndicator — полоска здоровья базы с числовым значением.
type BaseHealthIndicator struct {
	X, Y   float32
	Width  float32
	Height float32
}

func NewBaseHealthIndicator(x, y, width, height float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y, Width: width, Height: height}
}

func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, current, max int, face font.Face) {
	frac := float64(current) / float64(max)
	if frac < 0 {
		frac = 0
	}

	barColor := color.RGBA{80, 220, 80, 255}
	if frac < 0.3 {
		barColor = color.RGBA{220, 60, 60, 255}
	} else if frac < 0.6 {
		barColor = color.RGBA{220, 180, 60, 255}
	}

	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, color.RGBA{40, 40, 40, 220}, false)
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*float32(frac), i.Height, barColor, false)
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, color.White, false)

	label := fmt.Sprintf("%d/%d", current, max)
	text.Draw(screen, label, face, int(i.X+i.Width)+8, int(i.Y+i.Height)-2, color.White)
}
