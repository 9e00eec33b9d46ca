package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Contains(t *testing.T) {
	f := Field{Width: 800, Height: 600}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V(400, 300), true},
		{"origin corner", V(0, 0), true},
		{"far corner", V(800, 600), true},
		{"right edge", V(800, 10), true},
		{"one past right edge", V(801, 10), false},
		{"one past bottom edge", V(10, 601), false},
		{"negative x", V(-1, 10), false},
		{"negative y", V(10, -0.001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Contains(tt.p))
		})
	}
}

func TestField_Center(t *testing.T) {
	assert.Equal(t, V(400, 300), Field{Width: 800, Height: 600}.Center())
}

func TestIDSourceNeverRecycles(t *testing.T) {
	ids := NewIDSource()

	assert.Equal(t, EntityID(1), ids.Peek())
	assert.Equal(t, EntityID(1), ids.Next())
	assert.Equal(t, EntityID(2), ids.Next())
	assert.Equal(t, EntityID(3), ids.Peek())
	assert.NotEqual(t, PlayerID, ids.Next())
}
