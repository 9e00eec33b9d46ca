package entity

import "math"

// Vec2 is a 2D vector in field units (pixels).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) LenSq() float64       { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64         { return math.Sqrt(v.LenSq()) }
func (v Vec2) Dist(o Vec2) float64  { return o.Sub(v).Len() }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in v's direction.
// A zero vector stays zero; callers that need a direction must pick a fallback.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// DirectionOr returns v normalized, or fallback when v is (nearly) zero length.
func (v Vec2) DirectionOr(fallback Vec2) Vec2 {
	if v.LenSq() <= Epsilon {
		return fallback
	}
	return v.Normalize()
}

// Angle returns the polar angle of v in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Epsilon is the squared length under which a vector is treated as zero.
const Epsilon = 1e-12

// DefaultAim is used when the aim target coincides with the shooter.
var DefaultAim = Vec2{X: 1, Y: 0}
