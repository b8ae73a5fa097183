package physics

import (
	"math"

	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// SpeedCurve maps distance-to-destination onto a speed multiplier
// Flat 1 inside Inner, logarithmic ramp to Max at Outer, flat Max beyond
type SpeedCurve struct {
	Inner float64
	Outer float64
	Max   float64
}

// NewSpeedCurve derives the radii from the world extent (largest playfield dimension)
func NewSpeedCurve(extent float64) SpeedCurve {
	return SpeedCurve{
		Inner: extent * parameter.SpeedCurveInnerFraction,
		Outer: extent * parameter.SpeedCurveOuterFraction,
		Max:   parameter.SpeedCurveMaxMultiplier,
	}
}

// Multiplier returns the distance speed multiplier, always in [1, Max]
func (c SpeedCurve) Multiplier(dist float64) float64 {
	if dist <= c.Inner || c.Max <= 1 {
		return 1
	}
	span := c.Outer - c.Inner
	if span <= 0 {
		return c.Max
	}
	t := vmath.Clamp((dist-c.Inner)/span, 0, 1)
	// ln(1 + t(e-1)) runs 0→1 over t∈[0,1], steep early and flattening toward Outer
	return 1 + (c.Max-1)*math.Log(1+t*(math.E-1))
}
