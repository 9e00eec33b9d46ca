// Package autopilot produces player input from snapshots, for demos and
// headless runs.
package autopilot

import (
	"math"

	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
)

// axisThreshold is the smallest direction component that presses a key
const axisThreshold = 0.3

// Pilot plays the game: it targets the nearest enemy, fires continuously
// and strafes around its target, flipping direction periodically.
type Pilot struct {
	strafeFrames int     // frames between strafe direction flips
	edgeMargin   float64 // distance from a wall at which it heads inward
	frame        int
	side         float64
}

// New creates a pilot that flips strafe direction every strafeFrames frames
func New(strafeFrames int, edgeMargin float64) *Pilot {
	if strafeFrames <= 0 {
		strafeFrames = 1
	}
	return &Pilot{
		strafeFrames: strafeFrames,
		edgeMargin:   edgeMargin,
		side:         1,
	}
}

// Next returns the input for the frame following snap
func (p *Pilot) Next(snap session.Snapshot) system.InputState {
	p.frame++
	if p.frame%p.strafeFrames == 0 {
		p.side = -p.side
	}

	if snap.State == state.StateGameOver {
		return system.InputState{Restart: true}
	}

	field := snap.Field()
	pos := snap.Player.Pos
	target, ok := nearestEnemy(snap)
	if !ok {
		c := field.Center()
		return system.InputState{AimX: c.X, AimY: c.Y}
	}

	aim := target.Sub(pos).DirectionOr(entity.DefaultAim)
	move := entity.V(-aim.Y, aim.X).Scale(p.side)
	move = move.Add(p.wallPush(pos, field))

	in := pressAxes(move)
	in.AimX, in.AimY = target.X, target.Y
	in.Fire = true
	return in
}

// wallPush steers away from any wall closer than the edge margin
func (p *Pilot) wallPush(pos entity.Vec2, field entity.Field) entity.Vec2 {
	var push entity.Vec2
	if pos.X < p.edgeMargin {
		push.X++
	}
	if pos.X > field.Width-p.edgeMargin {
		push.X--
	}
	if pos.Y < p.edgeMargin {
		push.Y++
	}
	if pos.Y > field.Height-p.edgeMargin {
		push.Y--
	}
	return push.Scale(2)
}

func pressAxes(dir entity.Vec2) system.InputState {
	return system.InputState{
		Left:  dir.X < -axisThreshold,
		Right: dir.X > axisThreshold,
		Up:    dir.Y < -axisThreshold,
		Down:  dir.Y > axisThreshold,
	}
}

func nearestEnemy(snap session.Snapshot) (entity.Vec2, bool) {
	best := math.Inf(1)
	var target entity.Vec2
	for _, e := range snap.Enemies {
		if d := snap.Player.Pos.Dist(e.Pos); d < best {
			best = d
			target = e.Pos
		}
	}
	return target, len(snap.Enemies) > 0
}

// CurrentFrame returns the number of inputs produced so far
func (p *Pilot) CurrentFrame() int {
	return p.frame
}

// Reset returns the pilot to its starting state
func (p *Pilot) Reset() {
	p.frame = 0
	p.side = 1
}
