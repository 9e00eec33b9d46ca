package entity

// Enemy represents a pursuing, shooting enemy
type Enemy struct {
	ID     EntityID
	Pos    Vec2
	Speed  float64
	Active bool

	Health    int
	MaxHealth int

	// FireTimer counts down to the next shot (seconds)
	FireTimer float64
}

// NewEnemy creates a new enemy that may fire immediately
func NewEnemy(id EntityID, pos Vec2, speed float64, health int) *Enemy {
	return &Enemy{
		ID:        id,
		Pos:       pos,
		Speed:     speed,
		Active:    true,
		Health:    health,
		MaxHealth: health,
	}
}

// TakeDamage applies damage to the enemy, clamping health at zero.
// Returns true if the enemy is now dead.
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}
