package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer, max int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < max {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.LessOrEqual(t, buf[i][0], 1.0)
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillator_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		total, peak := drain(t, osc, 10000)
		assert.Equal(t, rate.N(100*time.Millisecond), total, "wave %d", wave)
		assert.Greater(t, peak, 0.0)
		assert.NoError(t, osc.Err())
	}
}

func TestOscillator_DrainedReportsDone(t *testing.T) {
	osc := NewOscillator(440, 0, WaveSine, beep.SampleRate(8000))
	n, ok := osc.Stream(make([][2]float64, 16))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEnvelope_AttackStartsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0])
	assert.Equal(t, 1.0, buf[len(buf)/2][0])
	assert.Less(t, buf[n-1][0], 0.1)
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	for s := SoundType(0); s < soundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		require.NotNil(t, streamer, s.String())
		total, _ := drain(t, streamer, 100000)
		assert.Greater(t, total, 0, s.String())
	}
	assert.Nil(t, GetSoundEffect(soundTypeCount, cfg))
}

func TestSoundType_RoundTrip(t *testing.T) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		got, ok := ParseSoundType(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseSoundType("nope")
	assert.False(t, ok)
}

func TestLoadAudioConfig_Env(t *testing.T) {
	t.Setenv("HORDE_AUDIO_ENABLED", "false")
	t.Setenv("HORDE_MASTER_VOLUME", "150")
	t.Setenv("HORDE_SFX_VOLUMES", `{"wave":0.1,"bogus":1}`)
	t.Setenv("HORDE_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume)
	assert.Equal(t, 0.1, cfg.EffectVolumes[SoundWave])
	assert.Equal(t, 0.6, cfg.EffectVolumes[SoundAlert])
	assert.Equal(t, 22050, cfg.SampleRate)
}

// newTestPlayer bypasses the speaker, the mixer is drained by hand
func newTestPlayer() (*AlertPlayer, *time.Time) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	p := NewAlertPlayer(cfg, log.New(io.Discard))
	p.initialized = true
	now := time.Unix(1000, 0)
	p.now = func() time.Time { return now }
	return p, &now
}

func TestPlayer_UninitializedDrops(t *testing.T) {
	p := NewAlertPlayer(nil, log.New(io.Discard))
	assert.False(t, p.Play(SoundWave))
	assert.Zero(t, p.Active())
}

func TestPlayer_DisabledInitializeIsNoop(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	p := NewAlertPlayer(cfg, log.New(io.Discard))
	require.NoError(t, p.Initialize())
	assert.False(t, p.Play(SoundWave))
}

func TestPlayer_AlertCooldown(t *testing.T) {
	p, now := newTestPlayer()

	assert.True(t, p.Play(SoundAlert))
	assert.False(t, p.Play(SoundAlert))
	assert.True(t, p.Play(SoundWave), "cooldown applies to alerts only")

	*now = now.Add(3 * time.Second)
	assert.True(t, p.Play(SoundAlert))
	assert.Equal(t, 3, p.Active())
}

func TestPlayer_Mute(t *testing.T) {
	p, _ := newTestPlayer()
	assert.True(t, p.ToggleMute())
	assert.True(t, p.IsMuted())
	assert.False(t, p.Play(SoundGameOver))

	p.SetMuted(false)
	assert.True(t, p.Play(SoundGameOver))
}

func TestPlayer_MixerDrains(t *testing.T) {
	p, _ := newTestPlayer()
	require.True(t, p.Play(SoundWave))

	buf := make([][2]float64, 512)
	for i := 0; i < 100 && p.mixer.Len() > 0; i++ {
		p.mixer.Stream(buf)
	}
	assert.Zero(t, p.Active())

	p.Cleanup()
	assert.False(t, p.Play(SoundWave))
}
