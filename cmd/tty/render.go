package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/domain/entity"
)

// hudRows is the number of terminal rows reserved for the status line
const hudRows = 1

var (
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDeadPlayer = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayerShot = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyShot  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// Grid maps field coordinates onto terminal cells
type Grid struct {
	Cols   int
	Rows   int
	FieldW float64
	FieldH float64
}

// NewGrid fits a field into a cols x rows terminal, keeping the HUD row free
func NewGrid(cols, rows int, fieldW, fieldH float64) Grid {
	rows -= hudRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows, FieldW: fieldW, FieldH: fieldH}
}

// ToCell returns the cell containing field point p, clamped to the grid
func (g Grid) ToCell(p entity.Vec2) (int, int) {
	x := int(p.X / g.FieldW * float64(g.Cols))
	y := int(p.Y / g.FieldH * float64(g.Rows))
	return clamp(x, 0, g.Cols-1), clamp(y, 0, g.Rows-1) + hudRows
}

// ToField returns the field point at the center of a cell
func (g Grid) ToField(x, y int) entity.Vec2 {
	y -= hudRows
	return entity.V(
		(float64(x)+0.5)/float64(g.Cols)*g.FieldW,
		(float64(y)+0.5)/float64(g.Rows)*g.FieldH,
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	grid   Grid
	center entity.Vec2 // actor position to actor center
}

// NewRenderer creates a renderer sized to the screen. Actors are drawn at
// the cell under their center.
func NewRenderer(screen tcell.Screen, fieldW, fieldH, actorSize float64) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{
		screen: screen,
		grid:   NewGrid(cols, rows, fieldW, fieldH),
		center: entity.V(actorSize/2, actorSize/2),
	}
}

// Resize refits the grid after a terminal resize
func (r *Renderer) Resize() Grid {
	cols, rows := r.screen.Size()
	r.grid = NewGrid(cols, rows, r.grid.FieldW, r.grid.FieldH)
	return r.grid
}

// Grid returns the current cell mapping
func (r *Renderer) Grid() Grid {
	return r.grid
}

// Draw renders snap and shows it
func (r *Renderer) Draw(snap session.Snapshot) {
	r.screen.Clear()

	r.drawBorder()
	for _, b := range snap.Bullets {
		x, y := r.grid.ToCell(b.Pos)
		if b.Owner == entity.OwnerPlayer {
			r.screen.SetContent(x, y, '·', nil, stylePlayerShot)
		} else {
			r.screen.SetContent(x, y, '*', nil, styleEnemyShot)
		}
	}
	for _, e := range snap.Enemies {
		x, y := r.grid.ToCell(e.Pos.Add(r.center))
		r.screen.SetContent(x, y, rune('0'+clamp(e.Health, 0, 9)), nil, styleEnemy)
	}

	px, py := r.grid.ToCell(snap.Player.Pos.Add(r.center))
	if snap.Player.Alive {
		r.screen.SetContent(px, py, '@', nil, stylePlayer)
	} else {
		r.screen.SetContent(px, py, 'x', nil, styleDeadPlayer)
	}

	r.drawHUD(snap)
	if snap.State == state.StateGameOver {
		r.drawBanner(fmt.Sprintf(" YOU DIED  score %d  press r to restart ", snap.Score))
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder() {
	top, bottom := hudRows, hudRows+r.grid.Rows-1
	for x := 0; x < r.grid.Cols; x++ {
		r.screen.SetContent(x, top, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
}

func (r *Renderer) drawHUD(snap session.Snapshot) {
	hp := ""
	for i := 0; i < snap.Player.MaxHealth; i++ {
		if i < snap.Player.Health {
			hp += "♥"
		} else {
			hp += "·"
		}
	}
	line := fmt.Sprintf("HP %s  score %d  enemies %d  %s", hp, snap.Score, len(snap.Enemies), snap.State)
	r.text(0, 0, line, styleHUD)
}

func (r *Renderer) drawBanner(msg string) {
	x := (r.grid.Cols - len([]rune(msg))) / 2
	y := hudRows + r.grid.Rows/3
	r.text(max(x, 0), y, msg, styleBanner)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.grid.Cols {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
