package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundAlert    SoundType = iota // Loop degradation buzz
	SoundWave                      // New wave at the gate
	SoundGameOver                  // Base destroyed
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundAlert:
		return "alert"
	case SoundWave:
		return "wave"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ParseSoundType maps a name back to its type, ok is false for unknown names
func ParseSoundType(name string) (SoundType, bool) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
