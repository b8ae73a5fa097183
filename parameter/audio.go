package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate   = 48000
	AudioMasterVolume = 0.5
	AudioBufferMs     = 100
)

// Alert buzz on loop degradation
const (
	AlertSoundFreq     = 110.0
	AlertSoundDuration = 180 * time.Millisecond
	AlertSoundAttack   = 5 * time.Millisecond
	AlertSoundRelease  = 60 * time.Millisecond
)

// Wave horn, two rising notes
const (
	WaveSoundNoteDuration = 120 * time.Millisecond
	WaveSoundAttack       = 5 * time.Millisecond
	WaveSoundRelease      = 50 * time.Millisecond
)

// Game over, long falling tone over noise
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 20 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
)

// AlertCooldown keeps bursts of warnings from stacking buzzes
const AlertCooldown = 2 * time.Second
