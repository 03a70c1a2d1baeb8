// Package audio plays short synthesized effects for game events.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"classic-snake/config"
	"classic-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundType identifies one of the effects.
type SoundType int

const (
	SoundChime SoundType = iota // apple eaten
	SoundBlip                   // pause or resume
	SoundCrash                  // game over
)

func (s SoundType) String() string {
	switch s {
	case SoundChime:
		return "chime"
	case SoundBlip:
		return "blip"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// SoundManager owns the speaker and a mixer that effects are queued onto.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	logger      *slog.Logger
	initialized bool
}

// NewSoundManager creates a manager; nothing plays until Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig, logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.Default()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the audio device. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and releases the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether the device is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues an effect. It does nothing when audio is not initialized.
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := sm.effect(st)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) effect(st SoundType) beep.Streamer {
	switch st {
	case SoundChime:
		return NewChime(sm.rate, sm.volume)
	case SoundBlip:
		return NewBlip(sm.rate, sm.volume)
	case SoundCrash:
		return NewCrash(sm.rate, sm.volume)
	default:
		sm.logger.Debug("unknown sound", "sound", int(st))
		return nil
	}
}

func (sm *SoundManager) OnStateChanged(ev game.Event) {
	if st, ok := soundFor(ev.Kind); ok {
		sm.Play(st)
	}
}

func soundFor(kind game.EventKind) (SoundType, bool) {
	switch kind {
	case game.EventAteApple:
		return SoundChime, true
	case game.EventPaused, game.EventResumed:
		return SoundBlip, true
	case game.EventGameOver:
		return SoundCrash, true
	default:
		return 0, false
	}
}
