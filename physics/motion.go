package physics

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// Motion strategies perturb the integrated velocity before the position update
// Instances carrying state are per agent, stateless ones may be shared

// Straight leaves the seek velocity untouched
type Straight struct{}

func (Straight) Apply(*core.Agent) {}

// Oscillate adds a sinusoidal sideways velocity, producing a weaving path
type Oscillate struct {
	Amplitude float64 // fraction of base speed
	Period    float64 // ticks per full wave
	Phase     float64 // ticks, desynchronizes agents of the same kind
}

// NewOscillate creates an oscillation with default amplitude and period
func NewOscillate(phase float64) *Oscillate {
	return &Oscillate{
		Amplitude: parameter.OscillateAmplitude,
		Period:    parameter.OscillatePeriod,
		Phase:     phase,
	}
}

func (o *Oscillate) Apply(a *core.Agent) {
	if o.Period <= 0 {
		return
	}
	var heading vmath.Vec2
	if vmath.Normalize(&heading, a.Vel, vmath.Epsilon) == 0 {
		return
	}
	var side, unused vmath.Vec2
	vmath.Perpendiculars(&side, &unused, heading)

	wave := math.Sin(2 * math.Pi * (float64(a.LiveTime) + o.Phase) / o.Period)
	vmath.AddScaled(&a.Vel, side, o.Amplitude*a.BaseSpeed*wave)
}

// Wander rotates the heading by a smoothly varying noise angle
type Wander struct {
	noise     opensimplex.Noise
	row       float64
	Strength  float64 // max turn as a fraction of π
	Frequency float64 // noise units per tick
}

// NewWander creates a wander motion, seed selects the noise field and row separates agents sharing it
func NewWander(seed int64, row float64) *Wander {
	return &Wander{
		noise:     opensimplex.NewNormalized(seed),
		row:       row,
		Strength:  parameter.WanderStrength,
		Frequency: parameter.WanderFrequency,
	}
}

func (w *Wander) Apply(a *core.Agent) {
	// Normalized noise is in [0,1), recenter to [-1,1)
	n := w.noise.Eval2(w.row, float64(a.LiveTime)*w.Frequency)*2 - 1
	angle := n * math.Pi * w.Strength
	Rotate(&a.Vel, a.Vel, math.Cos(angle), math.Sin(angle))
}

// Charge builds up a speed boost while the heading stays steady and bleeds it off on turns
type Charge struct {
	MaxBoost float64 // velocity multiplier ceiling
	Decay    float64 // boost retention per turning tick
	boost    float64
	heading  vmath.Vec2
}

// chargeAlignment is the heading dot product above which the agent is considered running straight
const chargeAlignment = 0.95

func NewCharge() *Charge {
	return &Charge{
		MaxBoost: parameter.ChargeMaxBoost,
		Decay:    parameter.ChargeDecay,
		boost:    1,
	}
}

// Boost returns the current velocity multiplier
func (c *Charge) Boost() float64 {
	return c.boost
}

func (c *Charge) Apply(a *core.Agent) {
	var heading vmath.Vec2
	if vmath.Normalize(&heading, a.Vel, vmath.Epsilon) == 0 {
		c.boost = 1
		c.heading.Zero()
		return
	}

	if !c.heading.IsZero() && vmath.Dot(heading, c.heading) > chargeAlignment {
		c.boost = math.Min(c.MaxBoost, c.boost+a.Accel.Len())
	} else {
		c.boost = math.Max(1, c.boost*c.Decay)
	}
	c.heading = heading

	vmath.Scale(&a.Vel, a.Vel, c.boost)
}
