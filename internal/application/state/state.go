package state

// GameState is the lifecycle state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// AcceptsInput reports whether player intents affect the simulation
func (s GameState) AcceptsInput() bool {
	return s == StatePlaying
}
