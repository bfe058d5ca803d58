// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-elemental-defense/internal/config"
	"go-elemental-defense/internal/defs"
	"go-elemental-defense/internal/state"
	"go-elemental-defense/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const sessionPath = "assets/session.yaml"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := utils.Clamp(now.Sub(a.lastUpdateTime).Seconds(), 0, config.MaxDeltaTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	session := config.LoadSession(sessionPath)

	if session.PprofAddr != "" {
		go func() {
			log.Error("pprof server stopped", "err", http.ListenAndServe(session.PprofAddr, nil))
		}()
	}

	if session.DefsDir != "" {
		if err := defs.LoadDirectory(session.DefsDir); err != nil {
			log.Fatal("cannot load definitions", "dir", session.DefsDir, "err", err)
		}
	}

	seed := session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed)

	sm := state.NewStateMachine()
	if session.StartFromGame {
		sm.SetState(state.NewGameState(sm, seed))
	} else {
		sm.SetState(state.NewMenuState(sm, seed))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Elemental Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal("game loop failed", "err", err)
	}
}
