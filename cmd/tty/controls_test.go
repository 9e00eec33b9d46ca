package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/arena/internal/domain/entity"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestControls_KeyHoldsForFrames(t *testing.T) {
	c := NewControls(NewGrid(80, 31, 800, 600), 3)
	snap := testSnap()

	c.Handle(runeKey('d'))

	for i := 0; i < 3; i++ {
		assert.True(t, c.Next(snap).Right, "frame %d", i)
	}
	assert.False(t, c.Next(snap).Right, "released after the hold window")
}

func TestControls_ArrowKeys(t *testing.T) {
	c := NewControls(NewGrid(80, 31, 800, 600), 2)

	c.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	c.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	in := c.Next(testSnap())

	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.False(t, in.Down)
}

func TestControls_FireAndRestart(t *testing.T) {
	c := NewControls(NewGrid(80, 31, 800, 600), 2)
	snap := testSnap()

	c.Handle(runeKey(' '))
	c.Handle(runeKey('r'))
	in := c.Next(snap)
	assert.True(t, in.Fire)
	assert.True(t, in.Restart)

	in = c.Next(snap)
	assert.True(t, in.Fire)
	assert.False(t, in.Restart, "restart is a one-frame pulse")
}

func TestControls_KeyboardAim(t *testing.T) {
	c := NewControls(NewGrid(80, 31, 800, 600), 2)
	snap := testSnap()

	in := c.Next(snap)
	assert.Equal(t, snap.Player.Pos.X+aimReach, in.AimX, "default aim is +x")

	c.Handle(runeKey('i'))
	in = c.Next(snap)
	assert.Equal(t, snap.Player.Pos.X, in.AimX)
	assert.Equal(t, snap.Player.Pos.Y-aimReach, in.AimY)
}

func TestControls_MouseAimAndFire(t *testing.T) {
	grid := NewGrid(80, 31, 800, 600)
	c := NewControls(grid, 2)
	snap := testSnap()

	c.Handle(tcell.NewEventMouse(10, 6, tcell.Button1, tcell.ModNone))
	in := c.Next(snap)

	want := grid.ToField(10, 6)
	assert.Equal(t, want.X, in.AimX)
	assert.Equal(t, want.Y, in.AimY)
	assert.True(t, in.Fire)

	c.Handle(tcell.NewEventMouse(10, 6, tcell.ButtonNone, tcell.ModNone))
	in = c.Next(snap)
	assert.False(t, in.Fire, "button released")

	c.Handle(runeKey('l'))
	in = c.Next(snap)
	assert.Equal(t, snap.Player.Pos.Add(entity.V(aimReach, 0)).X, in.AimX, "keyboard aim takes over")
}

func TestControls_Quit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", runeKey('q')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControls(NewGrid(80, 31, 800, 600), 2)
			assert.False(t, c.Handle(tt.ev))
			assert.True(t, c.Quit())
		})
	}
}
