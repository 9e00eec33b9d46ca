package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/system"
)

// InputSource yields the input for the next frame
type InputSource interface {
	Next(snap session.Snapshot) system.InputState
}

// App runs a session in a terminal at a fixed tick rate
type App struct {
	screen   tcell.Screen
	session  *session.Session
	controls *Controls
	input    InputSource
	renderer *Renderer
	logger   *slog.Logger
	dt       float64

	snap session.Snapshot
}

// NewApp wires a session to a screen. input may be the controls themselves
// or an autopilot; the controls always handle quitting.
func NewApp(screen tcell.Screen, sess *session.Session, controls *Controls, input InputSource, renderer *Renderer, dt float64, logger *slog.Logger) *App {
	if input == nil {
		input = controls
	}
	return &App{
		screen:   screen,
		session:  sess,
		controls: controls,
		input:    input,
		renderer: renderer,
		logger:   logger,
		dt:       dt,
		snap:     sess.Snapshot(),
	}
}

// Run polls events and steps the session every dt until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(a.dt * float64(time.Second)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	a.renderer.Draw(a.snap)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.handle(ev) {
				a.logger.Info("quit requested", "score", a.snap.Score, "frame", a.snap.Frame)
				return nil
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.controls.Resize(a.renderer.Resize())
		a.screen.Sync()
		return true
	}
	return a.controls.Handle(ev)
}

// tick advances one frame and redraws
func (a *App) tick() {
	prev := a.snap.State
	a.snap = a.session.Step(a.dt, a.input.Next(a.snap))
	if a.snap.State != prev {
		a.logger.Info("state changed", "from", prev, "to", a.snap.State, "score", a.snap.Score)
	}
	a.renderer.Draw(a.snap)
}

// Snapshot returns the most recent frame
func (a *App) Snapshot() session.Snapshot {
	return a.snap
}
