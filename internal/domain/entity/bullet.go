package entity

// Bullet is a straight-flying projectile. Owner never changes after creation.
type Bullet struct {
	ID     EntityID
	Pos    Vec2
	Vel    Vec2
	owner  Owner
	Active bool
}

// NewBullet creates a new live bullet
func NewBullet(id EntityID, pos, vel Vec2, owner Owner) *Bullet {
	return &Bullet{
		ID:     id,
		Pos:    pos,
		Vel:    vel,
		owner:  owner,
		Active: true,
	}
}

// Owner returns who fired the bullet
func (b *Bullet) Owner() Owner {
	return b.owner
}

// IsPlayer returns true if the bullet was fired by the player
func (b *Bullet) IsPlayer() bool {
	return b.owner == OwnerPlayer
}

// Advance moves the bullet along its velocity
func (b *Bullet) Advance(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Rotation returns the rotation angle based on velocity vector
func (b *Bullet) Rotation() float64 {
	return b.Vel.Angle()
}

// Deactivate marks the bullet for removal
func (b *Bullet) Deactivate() {
	b.Active = false
}
