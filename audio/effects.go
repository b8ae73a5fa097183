package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	sweep := 0.0
	if secs := duration.Seconds(); secs > 0 {
		sweep = (to - from) / secs
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(samples) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateAlertSound generates a short low saw buzz
func CreateAlertSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.AlertSoundFreq, parameter.AlertSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.AlertSoundDuration, parameter.AlertSoundAttack, parameter.AlertSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundAlert]*cfg.MasterVolume)
}

// CreateWaveSound generates a two-note rising horn
func CreateWaveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.WaveSoundNoteDuration

	// A3 then E4
	n1 := NewEnvelope(NewOscillator(220.0, d, WaveSquare, rate), d, parameter.WaveSoundAttack, parameter.WaveSoundRelease, rate)
	n2 := NewEnvelope(NewOscillator(329.63, d, WaveSquare, rate), d, parameter.WaveSoundAttack, parameter.WaveSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundWave]*cfg.MasterVolume)
}

// CreateGameOverSound generates a falling tone over a noise bed
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GameOverSoundDuration

	tone := NewEnvelope(NewSweep(440, 110, d, WaveSine, rate), d, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(tone, 0.8),
		newVolume(noise, 0.15),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundAlert:
		return CreateAlertSound(cfg)
	case SoundWave:
		return CreateWaveSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
