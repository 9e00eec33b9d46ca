package audio

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillator_Length(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)

	samples := drain(t, osc)

	assert.Len(t, samples, testRate.N(100*time.Millisecond))
	assert.NoError(t, osc.Err())
}

func TestOscillator_Range(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(220, 20*time.Millisecond, wave, testRate)
		for _, s := range drain(t, osc) {
			require.GreaterOrEqual(t, s[0], -1.0)
			require.LessOrEqual(t, s[0], 1.0)
			require.Equal(t, s[0], s[1], "mono on both channels")
		}
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(100, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := drain(t, env)

	require.NotEmpty(t, samples)
	assert.Equal(t, 0.0, samples[0][0], "attack starts at zero")
	assert.Less(t, abs(samples[len(samples)-1][0]), 0.01, "release fades out")
	assert.Equal(t, 1.0, abs(samples[len(samples)/2][0]), "full gain in the middle")
}

func TestSound_AllCuesFinite(t *testing.T) {
	cues := []Cue{CueShot, CueEnemyShot, CueEnemyHit, CuePlayerHit, CueKill, CueSpawn, CueDeath, CueRestart}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := Sound(c, testRate)
			require.NotNil(t, s)
			samples := drain(t, s)
			assert.NotEmpty(t, samples)
			assert.Less(t, len(samples), testRate.N(time.Second))
		})
	}
}

func TestSound_SequenceLength(t *testing.T) {
	samples := drain(t, Sound(CueKill, testRate))
	want := testRate.N(60*time.Millisecond) + testRate.N(120*time.Millisecond)
	assert.Len(t, samples, want)
}

func TestSound_Unknown(t *testing.T) {
	assert.Nil(t, Sound(Cue(99), testRate))
	assert.Equal(t, "unknown", Cue(99).String())
}

func TestWithVolume(t *testing.T) {
	loud := drain(t, withVolume(NewOscillator(100, 10*time.Millisecond, WaveSquare, testRate), 0.5))
	assert.InDelta(t, 0.5, abs(loud[0][0]), 1e-9)

	mute := drain(t, withVolume(NewOscillator(100, 10*time.Millisecond, WaveSquare, testRate), 0))
	assert.Equal(t, 0.0, mute[0][0])
}

func TestOpen_DisabledIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false

	p := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.IsType(t, Silent{}, p)
	p.Play(CueShot) // no-op
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
