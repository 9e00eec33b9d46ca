package system

import "github.com/younwookim/arena/internal/domain/entity"

// InputState holds the player's intent for one frame, as sampled by a
// front end. Fire is level-triggered; Restart is edge-triggered.
type InputState struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	AimX    float64 // aim target in field coordinates
	AimY    float64
	Fire    bool
	Restart bool
}

// MoveDir composes the four axis flags into an unnormalized direction.
// Opposite keys cancel out.
func (in InputState) MoveDir() entity.Vec2 {
	var dir entity.Vec2
	if in.Up {
		dir.Y -= 1
	}
	if in.Down {
		dir.Y += 1
	}
	if in.Left {
		dir.X -= 1
	}
	if in.Right {
		dir.X += 1
	}
	return dir
}

// AimTarget returns the aim target as a vector
func (in InputState) AimTarget() entity.Vec2 {
	return entity.V(in.AimX, in.AimY)
}

// Trigger turns level-triggered fire input into a shot request according to
// the configured fire mode. It remembers whether fire was held last frame.
type Trigger struct {
	edge bool
	held bool
}

// NewTrigger creates a trigger; edge=true fires only on the press edge
func NewTrigger(edge bool) *Trigger {
	return &Trigger{edge: edge}
}

// Pull reports whether this frame's fire input requests a shot
func (t *Trigger) Pull(fire bool) bool {
	wasHeld := t.held
	t.held = fire
	if t.edge {
		return fire && !wasHeld
	}
	return fire
}

// Reset forgets the held state
func (t *Trigger) Reset() {
	t.held = false
}
