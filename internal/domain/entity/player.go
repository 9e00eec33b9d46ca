package entity

// Player represents the player avatar
type Player struct {
	Pos       Vec2
	Speed     float64
	Health    int
	MaxHealth int
	Alive     bool

	// Facing is the polar angle of the last aim direction (rendering only)
	Facing float64

	// FireTimer counts down to the next permitted shot (seconds)
	FireTimer float64
}

// NewPlayer creates a player with full health
func NewPlayer(pos Vec2, speed float64, maxHealth int) *Player {
	return &Player{
		Pos:       pos,
		Speed:     speed,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Alive:     true,
	}
}

// TakeHit removes one point of health. Health is clamped at zero and the
// player dies the moment it gets there. Returns true if this hit killed the player.
func (p *Player) TakeHit() bool {
	if !p.Alive {
		return false
	}
	p.Health--
	if p.Health <= 0 {
		p.Health = 0
		p.Alive = false
		return true
	}
	return false
}

// IsAlive returns true if the player can still act
func (p *Player) IsAlive() bool {
	return p.Alive
}

// CanFire returns true when the weapon cooldown has elapsed
func (p *Player) CanFire() bool {
	return p.Alive && p.FireTimer <= 0
}
