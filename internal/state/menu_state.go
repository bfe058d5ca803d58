// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран. Пробел запускает игру.
type MenuState struct {
	sm   *StateMachine
	seed int64
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	return &MenuState{sm: sm, seed: seed}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	ebitenutil.DebugPrintAt(screen, "ELEMENTAL DEFENSE\n\nPress SPACE to start", 40, 40)
}

func (m *MenuState) Exit() {}
