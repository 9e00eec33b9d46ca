package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
)

// aimReach is how far ahead of the player keyboard aim points
const aimReach = 100.0

// Controls turns terminal events into per-frame input.
//
// Terminals report key presses (and auto-repeats) but never releases, so a
// press holds its action for holdFrames frames and repeats extend it.
type Controls struct {
	holdFrames int
	grid       Grid

	up, down, left, right int
	fire                  int
	restart               bool
	quit                  bool

	aimDir    entity.Vec2 // keyboard aim, relative to the player
	mouse     entity.Vec2 // last mouse position in field units
	useMouse  bool
	mouseFire bool
}

// NewControls creates a control mapper for the given screen grid
func NewControls(grid Grid, holdFrames int) *Controls {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Controls{
		holdFrames: holdFrames,
		grid:       grid,
		aimDir:     entity.DefaultAim,
	}
}

// Resize updates the grid used to map mouse cells to field units
func (c *Controls) Resize(grid Grid) {
	c.grid = grid
}

// Handle records one event. It returns false once quit was requested.
func (c *Controls) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		c.mouse = c.grid.ToField(x, y)
		c.useMouse = true
		c.mouseFire = ev.Buttons()&tcell.Button1 != 0
	}
	return !c.quit
}

func (c *Controls) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
		return
	case tcell.KeyUp:
		c.up = c.holdFrames
	case tcell.KeyDown:
		c.down = c.holdFrames
	case tcell.KeyLeft:
		c.left = c.holdFrames
	case tcell.KeyRight:
		c.right = c.holdFrames
	case tcell.KeyRune:
		c.handleRune(ev.Rune())
	}
}

func (c *Controls) handleRune(r rune) {
	switch r {
	case 'q', 'Q':
		c.quit = true
	case 'w', 'W':
		c.up = c.holdFrames
	case 's', 'S':
		c.down = c.holdFrames
	case 'a', 'A':
		c.left = c.holdFrames
	case 'd', 'D':
		c.right = c.holdFrames
	case ' ':
		c.fire = c.holdFrames
	case 'r', 'R':
		c.restart = true
	case 'i', 'I':
		c.keyAim(entity.V(0, -1))
	case 'k', 'K':
		c.keyAim(entity.V(0, 1))
	case 'j', 'J':
		c.keyAim(entity.V(-1, 0))
	case 'l', 'L':
		c.keyAim(entity.V(1, 0))
	}
}

func (c *Controls) keyAim(dir entity.Vec2) {
	c.aimDir = dir
	c.useMouse = false
}

// Quit reports whether the user asked to leave
func (c *Controls) Quit() bool {
	return c.quit
}

// Next returns the input for the coming frame and ages held keys
func (c *Controls) Next(snap session.Snapshot) system.InputState {
	aim := snap.Player.Pos.Add(c.aimDir.Scale(aimReach))
	if c.useMouse {
		aim = c.mouse
	}

	in := system.InputState{
		Up:      c.up > 0,
		Down:    c.down > 0,
		Left:    c.left > 0,
		Right:   c.right > 0,
		AimX:    aim.X,
		AimY:    aim.Y,
		Fire:    c.fire > 0 || c.mouseFire,
		Restart: c.restart,
	}

	c.up = decay(c.up)
	c.down = decay(c.down)
	c.left = decay(c.left)
	c.right = decay(c.right)
	c.fire = decay(c.fire)
	c.restart = false
	return in
}

func decay(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}
