// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	game "go-elemental-defense/internal/app"
	"go-elemental-defense/internal/component"
	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/system"
	"go-elemental-defense/internal/ui"
	"go-elemental-defense/pkg/grid"
	"go-elemental-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Клавиши заклинаний. Каст по клетке под курсором.
var spellKeys = map[ebiten.Key]string{
	ebiten.KeyQ: "SPELL_FIREBALL",
	ebiten.KeyW: "SPELL_FROST_NOVA",
	ebiten.KeyE: "SPELL_OIL_SPILL",
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	gameMap  *grid.Map
	renderer *render.GridRenderer

	renderSystem *system.RenderSystem
	indicator    *ui.StateIndicator
	waveLabel    *ui.WaveIndicator
	baseHealth   *ui.BaseHealthIndicator
	buildPanel   *ui.BuildPanel
	speedButton  *ui.SpeedButton
	pauseButton  *ui.PauseButton

	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameMap := grid.NewMap(config.GridCols, config.GridRows, config.CellSize)
	gameLogic := game.NewGame(gameMap, seed)

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		BuildableColor:  config.BuildableColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		CheckpointColor: config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	renderer := render.NewGridRenderer(gameMap, config.ScreenWidth, config.ScreenHeight, mapColors)

	panelY := float32(config.GridRows*config.CellSize + 30)
	gs := &GameState{
		sm:           sm,
		game:         gameLogic,
		gameMap:      gameMap,
		renderer:     renderer,
		renderSystem: system.NewRenderSystem(gameLogic.ECS),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		waveLabel:  ui.NewWaveIndicator(config.ScreenWidth/2, 24),
		baseHealth: ui.NewBaseHealthIndicator(16, 10, 160, 12),
		buildPanel: ui.NewBuildPanel(16, panelY),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize),
			config.SpeedButtonColors,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX-50),
			float32(config.SpeedButtonY),
			12,
			config.TextLightColor,
			config.BaseColor,
		),
		lastClickTime: time.Now(),
	}
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(false)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	// Выбор стихии клавишами 1..5
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			g.buildPanel.SelectIndex(i)
		}
	}

	// Заклинания кастуются в любую фазу, пока есть золото
	for key, spellID := range spellKeys {
		if inpututil.IsKeyJustPressed(key) {
			x, y := ebiten.CursorPosition()
			g.game.CastSpell(spellID, float64(x), float64(y))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.game.ECS.GameState == component.BuildState {
		g.game.StartWave()
	}

	g.game.Update(deltaTime * g.speedButton.Multiplier())
	g.updatePreview()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y, ebiten.MouseButtonLeft)
		}
		g.lastClickTime = time.Now()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleGameClick(x, y, ebiten.MouseButtonRight)
		g.lastClickTime = time.Now()
	}
}

// updatePreview пересчитывает предпросмотр синергий для клетки под курсором.
// Только в фазе строительства: во время волны панель не нужна.
func (g *GameState) updatePreview() {
	if g.game.ECS.GameState != component.BuildState {
		g.buildPanel.ClearPreview()
		return
	}
	x, y := ebiten.CursorPosition()
	cell := grid.PixelToCell(float64(x), float64(y), config.CellSize)
	if !g.gameMap.InBounds(cell) || !g.gameMap.CanPlace(cell) {
		g.buildPanel.ClearPreview()
		return
	}
	g.buildPanel.SetPreview(g.game.PreviewPlacement(g.buildPanel.Selected, cell))
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedButton.IsClicked(x, y) ||
		g.pauseButton.IsClicked(x, y) ||
		g.indicator.IsClicked(x, y)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	debounce := time.Duration(config.ClickDebounceTime) * time.Millisecond
	switch {
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= debounce {
			g.speedButton.ToggleState()
		}
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= debounce {
			g.pauseButton.TogglePause()
			g.sm.SetState(NewPauseState(g.sm, g))
		}
	case g.indicator.IsClicked(x, y):
		if time.Since(g.indicator.LastClickTime) >= debounce {
			g.indicator.HandleClick()
			if g.game.ECS.GameState == component.BuildState {
				g.game.StartWave()
			}
		}
	}
}

func (g *GameState) handleGameClick(x, y int, button ebiten.MouseButton) {
	cell := grid.PixelToCell(float64(x), float64(y), config.CellSize)
	if !g.gameMap.InBounds(cell) {
		return
	}

	if g.game.ECS.GameState != component.BuildState {
		return
	}

	if button == ebiten.MouseButtonLeft {
		// Клик по своей башне — апгрейд, по пустой клетке — постройка
		if towerID := g.game.FindTowerAt(cell); towerID != 0 {
			g.game.MergeOrLevelUp(towerID)
			return
		}
		g.game.PlaceTower(g.buildPanel.Selected, cell)
	} else if button == ebiten.MouseButtonRight {
		g.game.RemoveTower(cell)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.GetRoute(0), g.renderSystem, g.game.GameTime())

	var stateColor = config.BuildStateColor
	switch g.game.ECS.GameState {
	case component.WaveState:
		stateColor = config.WaveStateColor
	case component.GameOverState:
		stateColor = config.GameOverStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	face := g.renderer.FontFace()
	bossWave := g.game.ECS.Wave != nil && g.game.ECS.Wave.BossPending
	g.waveLabel.Draw(screen, g.game.Wave, bossWave, face)
	g.baseHealth.Draw(screen, g.game.BaseHealth, config.BaseHealth, face)
	g.buildPanel.Draw(screen, g.game.Gold, face)

	if g.game.ECS.GameState == component.GameOverState {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER\nReached wave %d", g.game.Wave), config.ScreenWidth/2-50, config.ScreenHeight/2)
	}
}

func (g *GameState) Exit() {}
