// Package audio synthesizes short sound cues with beep and plays them
// through the system speaker.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a game event with a sound
type Cue int

const (
	CueShot Cue = iota
	CueEnemyShot
	CueEnemyHit
	CuePlayerHit
	CueKill
	CueSpawn
	CueDeath
	CueRestart
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueEnemyShot:
		return "enemyShot"
	case CueEnemyHit:
		return "enemyHit"
	case CuePlayerHit:
		return "playerHit"
	case CueKill:
		return "kill"
	case CueSpawn:
		return "spawn"
	case CueDeath:
		return "death"
	case CueRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Sound builds the streamer for a cue at unity gain. Unknown cues are nil.
func Sound(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueShot:
		return tone(880, 40*time.Millisecond, WaveSquare, rate)
	case CueEnemyShot:
		return tone(330, 50*time.Millisecond, WaveSaw, rate)
	case CueEnemyHit:
		return tone(0, 30*time.Millisecond, WaveNoise, rate)
	case CuePlayerHit:
		return tone(110, 120*time.Millisecond, WaveSaw, rate)
	case CueKill:
		return beep.Seq(
			tone(987.77, 60*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case CueSpawn:
		return tone(220, 80*time.Millisecond, WaveSine, rate)
	case CueDeath:
		return beep.Seq(
			tone(440, 150*time.Millisecond, WaveSaw, rate),
			tone(330, 150*time.Millisecond, WaveSaw, rate),
			tone(220, 300*time.Millisecond, WaveSaw, rate),
		)
	case CueRestart:
		return beep.Mix(
			tone(523.25, 200*time.Millisecond, WaveSine, rate),
			tone(659.25, 200*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
}
