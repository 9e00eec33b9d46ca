package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/application/autopilot"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/logging"
)

func newTestApp(t *testing.T, s tcell.Screen, input InputSource) *App {
	t.Helper()
	cfg := config.Default()
	sess := session.New(cfg, system.NewRandSampler(12345), session.WithLogger(logging.Discard()))
	renderer := NewRenderer(s, cfg.Field.Width, cfg.Field.Height, cfg.Player.Size)
	controls := NewControls(renderer.Grid(), 8)
	return NewApp(s, sess, controls, input, renderer, 1.0/60, logging.Discard())
}

func TestApp_TickWithKeys(t *testing.T) {
	s := newSimScreen(t, 80, 31)
	app := newTestApp(t, s, nil)

	app.handle(runeKey('d'))
	app.tick()

	snap := app.Snapshot()
	assert.Equal(t, uint64(1), snap.Frame)
	assert.Greater(t, snap.Player.Pos.X, 400.0)
}

func TestApp_TickWithAutopilot(t *testing.T) {
	s := newSimScreen(t, 80, 31)
	app := newTestApp(t, s, autopilot.New(90, 40))

	for i := 0; i < 120; i++ {
		app.tick()
	}

	assert.Equal(t, uint64(120), app.Snapshot().Frame)
}

func TestApp_HandleResize(t *testing.T) {
	s := newSimScreen(t, 80, 31)
	app := newTestApp(t, s, nil)

	s.SetSize(40, 21)
	assert.True(t, app.handle(tcell.NewEventResize(40, 21)))
	assert.Equal(t, 40, app.renderer.Grid().Cols)
	assert.Equal(t, 40, app.controls.grid.Cols)
}

func TestApp_RunQuitsOnKey(t *testing.T) {
	s := newSimScreen(t, 80, 31)
	app := newTestApp(t, s, nil)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Run(ctx))
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	s := newSimScreen(t, 80, 31)
	app := newTestApp(t, s, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, app.Snapshot().Frame, "frames ticked while running")
}
