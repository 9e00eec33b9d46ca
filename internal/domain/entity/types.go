package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// PlayerID is the reserved id of the single player entity.
const PlayerID EntityID = 0

// IDSource hands out entity ids. IDs are never recycled within a session.
type IDSource struct {
	next EntityID
}

// NewIDSource returns a source whose first id is 1 (0 is the player)
func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

// Next returns a fresh id
func (s *IDSource) Next() EntityID {
	id := s.next
	s.next++
	return id
}

// Peek returns the id that the next call to Next will return
func (s *IDSource) Peek() EntityID {
	return s.next
}

// Owner tags who fired a bullet
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the string representation of the owner
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "Player"
	case OwnerEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Field is the rectangular play area [0, Width] x [0, Height]
type Field struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the field. Edges are inside.
func (f Field) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

// Center returns the middle of the field
func (f Field) Center() Vec2 {
	return Vec2{X: f.Width / 2, Y: f.Height / 2}
}
