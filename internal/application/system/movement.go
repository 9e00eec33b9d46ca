package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
)

// MovementSystem displaces actors and bullets
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// MovePlayer moves the player along the normalized input direction.
// A dead player does not move.
func (s *MovementSystem) MovePlayer(p *entity.Player, in InputState, dt float64) {
	if !p.IsAlive() {
		return
	}
	dir := in.MoveDir()
	if dir.IsZero() {
		return
	}
	p.Pos = p.Pos.Add(dir.Normalize().Scale(p.Speed * dt))
}

// SeekEnemies moves every enemy straight toward target at its own speed
func (s *MovementSystem) SeekEnemies(enemies []*entity.Enemy, target entity.Vec2, dt float64) {
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		toTarget := target.Sub(e.Pos)
		if toTarget.LenSq() <= entity.Epsilon {
			continue
		}
		e.Pos = e.Pos.Add(toTarget.Normalize().Scale(e.Speed * dt))
	}
}

// AdvanceBullets moves every live bullet along its velocity
func (s *MovementSystem) AdvanceBullets(bullets []*entity.Bullet, dt float64) {
	for _, b := range bullets {
		if !b.Active {
			continue
		}
		b.Advance(dt)
	}
}
