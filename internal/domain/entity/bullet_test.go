package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBullet(t *testing.T) {
	b := NewBullet(7, V(10, 20), V(500, 0), OwnerPlayer)

	require.NotNil(t, b)
	assert.Equal(t, EntityID(7), b.ID)
	assert.True(t, b.Active)
	assert.True(t, b.IsPlayer())
	assert.Equal(t, OwnerPlayer, b.Owner())
}

func TestBullet_Advance(t *testing.T) {
	b := NewBullet(1, V(100, 100), V(300, -150), OwnerEnemy)

	b.Advance(0.5)

	assert.InDelta(t, 250.0, b.Pos.X, 1e-9)
	assert.InDelta(t, 25.0, b.Pos.Y, 1e-9)
	assert.Equal(t, OwnerEnemy, b.Owner(), "owner survives movement")
}

func TestBullet_AdvanceZeroDT(t *testing.T) {
	b := NewBullet(1, V(100, 100), V(300, -150), OwnerEnemy)

	b.Advance(0)

	assert.Equal(t, V(100, 100), b.Pos)
}

func TestBullet_Rotation(t *testing.T) {
	tests := []struct {
		name     string
		vel      Vec2
		expected float64
	}{
		{"moving right", V(100, 0), 0},
		{"moving down", V(0, 100), math.Pi / 2},
		{"moving left", V(-100, 0), math.Pi},
		{"moving up", V(0, -100), -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(1, Vec2{}, tt.vel, OwnerPlayer)
			assert.InDelta(t, tt.expected, b.Rotation(), 0.001)
		})
	}
}

func TestBullet_Deactivate(t *testing.T) {
	b := NewBullet(1, Vec2{}, Vec2{}, OwnerPlayer)

	b.Deactivate()

	assert.False(t, b.Active)
}

func TestOwner_String(t *testing.T) {
	assert.Equal(t, "Player", OwnerPlayer.String())
	assert.Equal(t, "Enemy", OwnerEnemy.String())
	assert.Equal(t, "Unknown", Owner(9).String())
}
