package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

// CuePlayer plays sound cues. Play must not block.
type CuePlayer interface {
	Play(c Cue)
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}

// SpeakerPlayer mixes cues into the system speaker
type SpeakerPlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewSpeakerPlayer initializes the speaker and starts the mixer
func NewSpeakerPlayer(cfg config.AudioConfig) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		rate:   rate,
		volume: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the cue on the mixer
func (p *SpeakerPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	s := Sound(c, p.rate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Close stops all sounds
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Clear()
	p.closed = true
}

// Open returns a speaker-backed player, or Silent when audio is disabled
// or the device cannot be opened.
func Open(cfg config.AudioConfig, logger *slog.Logger) CuePlayer {
	if !cfg.Enabled {
		return Silent{}
	}
	p, err := NewSpeakerPlayer(cfg)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}
	}
	return p
}
