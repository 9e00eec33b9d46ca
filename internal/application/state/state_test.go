package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// The zero value is a fresh session
	var s GameState
	assert.Equal(t, StatePlaying, s)
	assert.Equal(t, GameState(1), StateGameOver)
}

func TestGameState_AcceptsInput(t *testing.T) {
	assert.True(t, StatePlaying.AcceptsInput())
	assert.False(t, StateGameOver.AcceptsInput())
}
