// Package game adapts the current Scene to ebiten.Game.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   uint64
	logger  *slog.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// framerate sets the fixed step; 0 means 60.
func New(initialScene scene.Scene, screenW, screenH, framerate int, logger *slog.Logger) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.logger.Info("quit requested", "ticks", g.ticks)
		} else {
			g.logger.Error("scene update failed", "err", err, "ticks", g.ticks)
		}
		g.current.OnExit()
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", "ticks", g.ticks)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT overrides the fixed step
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// DT returns the fixed step in seconds
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns the number of Update calls so far
func (g *Game) Ticks() uint64 {
	return g.ticks
}
