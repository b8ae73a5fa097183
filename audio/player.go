// Package audio plays short synthesized cues through the system speaker
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/parameter"
)

// AlertPlayer mixes sound cues into a single speaker stream
// Play is safe from any goroutine, an uninitialized or muted player drops cues
type AlertPlayer struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	lastAlert   time.Time
	now         func() time.Time
	logger      *log.Logger
}

func NewAlertPlayer(cfg *AudioConfig, logger *log.Logger) *AlertPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &AlertPlayer{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
		logger: logger.WithPrefix("audio"),
	}
}

// Initialize opens the speaker, a disabled config leaves the player silent
func (p *AlertPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferMs*time.Millisecond)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", p.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds, the speaker itself stays open
func (p *AlertPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue, alerts inside the cooldown window are dropped
func (p *AlertPlayer) Play(s SoundType) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}

	if s == SoundAlert {
		now := p.now()
		if !p.lastAlert.IsZero() && now.Sub(p.lastAlert) < parameter.AlertCooldown {
			return false
		}
		p.lastAlert = now
	}

	streamer := GetSoundEffect(s, p.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

func (p *AlertPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (p *AlertPlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *AlertPlayer) IsMuted() bool {
	return p.muted.Load()
}

// Active is the number of cues still playing
func (p *AlertPlayer) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}
