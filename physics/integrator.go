package physics

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/steering"
	"github.com/lixenwraith/horde/vmath"
)

// Integrator advances agents one simulation tick
// Stateless apart from the curve, a single instance serves the whole population
type Integrator struct {
	Curve SpeedCurve
}

// NewIntegrator creates an integrator for a world of the given extent
func NewIntegrator(extent float64) *Integrator {
	return &Integrator{Curve: NewSpeedCurve(extent)}
}

// Advance runs steering and kinematics for one agent and increments its LiveTime
// Neighbor data comes from q, which must reflect the state before this tick
// Suspended agents are skipped entirely and do not age
func (in *Integrator) Advance(a *core.Agent, q core.RangeQuery, s *steering.Scratch) {
	if a.Suspended {
		return
	}

	in.steer(a, q, s)

	// Seek
	var dir vmath.Vec2
	var toDest vmath.Vec2
	vmath.Sub(&toDest, a.Destination, a.Pos)
	dist := vmath.Normalize(&dir, toDest, parameter.ArrivalEpsilon)

	freeze := a.Freeze
	if freeze == 0 {
		freeze = 1
	}
	freeze = vmath.Clamp(freeze, parameter.MinFreezeMultiplier, parameter.MaxBurnMultiplier)

	speed := a.BaseSpeed * freeze * in.Curve.Multiplier(dist)
	vmath.Scale(&a.Vel, dir, speed)
	vmath.Scale(&a.Accel, dir, a.AccelRate)

	// Steering persists across ticks, behaviors that were not due contribute their cached value
	vmath.Add(&a.Vel, a.Vel, a.Steering.Total)

	if a.Motion != nil {
		a.Motion.Apply(a)
	}

	Integrate(&a.Kinetic)
	vmath.Add(&a.Accel, a.Accel, a.Steering.Total)
	a.LiveTime++
}

// steer refreshes target and the steering cache, queries run only for behaviors that are due
func (in *Integrator) steer(a *core.Agent, q core.RangeQuery, s *steering.Scratch) {
	b := &a.Behaviors

	if cfg := b.Targeting; cfg != nil && core.Due(a.LiveTime, cfg.UpdateInterval) {
		s.Structures = q.Structures(a.Pos, cfg.ScanRadius, s.Structures[:0])
		var pos vmath.Vec2
		switch sel, id := steering.SelectTarget(&pos, a, cfg, s.Structures); sel {
		case steering.SelectionFound:
			a.Destination = pos
			a.TargetID = id
		case steering.SelectionNone:
			a.Destination = a.DefaultDestination
			a.TargetID = 0
		}
	}

	if cfg := b.Dodge; cfg == nil {
		a.Steering.Dodge.Zero()
	} else if core.Due(a.LiveTime, cfg.ReactionTime) {
		s.Projectiles = q.Projectiles(a.Pos, cfg.DetectRadius, s.Projectiles[:0])
		steering.Dodge(&a.Steering.Dodge, a, cfg, s.Projectiles)
	}

	if cfg := b.Flocking; cfg == nil {
		a.Steering.Flock.Zero()
	} else if core.Due(a.LiveTime, cfg.UpdateInterval) {
		s.Neighbors = q.Agents(a.Pos, cfg.PerceptionRadius, s.Neighbors[:0])
		steering.Flock(&a.Steering.Flock, a, cfg, s.Neighbors)
	}

	vmath.Add(&a.Steering.Total, a.Steering.Dodge, a.Steering.Flock)
}

// Arrived reports whether the agent is within its arrival radius of the destination
func Arrived(a *core.Agent) bool {
	r := a.ArrivalRadius
	if r <= 0 {
		r = parameter.DefaultArrivalRadius
	}
	return vmath.DistSq(a.Pos, a.Destination) < r*r
}
