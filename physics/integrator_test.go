package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/steering"
	"github.com/lixenwraith/horde/vmath"
)

// fixedQuery returns everything it holds regardless of radius, like a coarse index
type fixedQuery struct {
	projectiles []core.Projectile
	agents      []core.Neighbor
	structures  []core.Structure
}

func (q *fixedQuery) Projectiles(_ vmath.Vec2, _ float64, dst []core.Projectile) []core.Projectile {
	return append(dst, q.projectiles...)
}

func (q *fixedQuery) Agents(_ vmath.Vec2, _ float64, dst []core.Neighbor) []core.Neighbor {
	return append(dst, q.agents...)
}

func (q *fixedQuery) Structures(_ vmath.Vec2, _ float64, dst []core.Structure) []core.Structure {
	return append(dst, q.structures...)
}

// recordMotion captures the velocity handed to the motion hook
type recordMotion struct {
	seen  vmath.Vec2
	calls int
}

func (m *recordMotion) Apply(a *core.Agent) {
	m.seen = a.Vel
	m.calls++
}

func TestAdvance_StraightLine(t *testing.T) {
	in := NewIntegrator(1000)
	s := steering.NewScratch(8)
	q := &fixedQuery{}

	a := &core.Agent{ID: 1, BaseSpeed: 1, Freeze: 1, Destination: vmath.V2(100, 0)}
	for i := 0; i < 10; i++ {
		in.Advance(a, q, s)
		require.Greater(t, a.Pos.X, 0.0)
		require.Equal(t, 0.0, a.Pos.Y)
	}

	// Within the inner radius the curve is flat
	assert.InDelta(t, 10.0, a.Pos.X, 1e-9)
	assert.InDelta(t, 1.0, a.Vel.X, 1e-12)
	assert.Equal(t, uint64(10), a.LiveTime)
}

func TestAdvance_AtDestination(t *testing.T) {
	in := NewIntegrator(1000)
	a := &core.Agent{ID: 1, BaseSpeed: 3, AccelRate: 1, Freeze: 1,
		Kinetic: core.Kinetic{Pos: vmath.V2(5, 5)}, Destination: vmath.V2(5, 5)}

	in.Advance(a, &fixedQuery{}, steering.NewScratch(1))

	assert.Equal(t, vmath.Vec2{}, a.Vel)
	assert.Equal(t, vmath.Vec2{}, a.Accel)
	assert.Equal(t, vmath.V2(5, 5), a.Pos)
	assert.False(t, math.IsNaN(a.Pos.X))
}

func TestAdvance_FreezeClamp(t *testing.T) {
	in := NewIntegrator(1000)
	tests := []struct {
		name   string
		freeze float64
		speed  float64
	}{
		{"unset is neutral", 0, 2},
		{"frozen solid", 0.001, 2 * 0.05},
		{"half frozen", 0.5, 1},
		{"burning", 5, 2 * 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &core.Agent{BaseSpeed: 2, Freeze: tt.freeze, Destination: vmath.V2(0, 50)}
			in.Advance(a, &fixedQuery{}, steering.NewScratch(1))
			assert.InDelta(t, tt.speed, a.Vel.Len(), 1e-12)
		})
	}
}

func TestAdvance_Suspended(t *testing.T) {
	in := NewIntegrator(1000)
	a := &core.Agent{BaseSpeed: 1, Freeze: 1, Suspended: true, Destination: vmath.V2(10, 0), LiveTime: 3}
	in.Advance(a, &fixedQuery{}, steering.NewScratch(1))
	assert.Equal(t, vmath.Vec2{}, a.Pos)
	assert.Equal(t, uint64(3), a.LiveTime)
}

func TestAdvance_SteeringPersistsWhenNotDue(t *testing.T) {
	in := NewIntegrator(1000)
	s := steering.NewScratch(4)
	q := &fixedQuery{projectiles: []core.Projectile{{ID: 9, Pos: vmath.V2(-10, 0), Vel: vmath.V2(1, 0)}}}

	a := &core.Agent{
		ID: 1, BaseSpeed: 1, AccelRate: 0.5, Freeze: 1,
		Destination: vmath.V2(0, 100),
		Behaviors: core.Behaviors{Dodge: &core.DodgeConfig{DetectRadius: 50, Strength: 2, ReactionTime: 4}},
	}

	in.Advance(a, q, s)
	cached := a.Steering.Dodge
	require.False(t, cached.IsZero())
	assert.Equal(t, cached, a.Steering.Total)

	// Threat gone, but the next three ticks are off-interval
	q.projectiles = nil
	for i := 0; i < 3; i++ {
		in.Advance(a, q, s)
		assert.Equal(t, cached, a.Steering.Dodge, "tick %d", a.LiveTime)
		// Accel is rebuilt from seek every tick plus the persisted steering
		assert.InDelta(t, cached.X, a.Accel.X, 1e-12)
		assert.InDelta(t, 0.5+cached.Y, a.Accel.Y, 1e-12)
	}

	in.Advance(a, q, s)
	assert.Equal(t, vmath.Vec2{}, a.Steering.Dodge)
}

func TestAdvance_DisabledBehaviorClearsCache(t *testing.T) {
	in := NewIntegrator(1000)
	a := &core.Agent{BaseSpeed: 1, Freeze: 1, Destination: vmath.V2(10, 0)}
	a.Steering.Dodge.Set(3, 3)
	a.Steering.Flock.Set(1, 1)

	in.Advance(a, &fixedQuery{}, steering.NewScratch(1))
	assert.Equal(t, vmath.Vec2{}, a.Steering.Total)
	assert.InDelta(t, 1.0, a.Vel.X, 1e-12)
	assert.Equal(t, 0.0, a.Vel.Y)
}

func TestAdvance_TargetSelection(t *testing.T) {
	in := NewIntegrator(1000)
	s := steering.NewScratch(4)
	q := &fixedQuery{structures: []core.Structure{{ID: 7, Pos: vmath.V2(20, 20), Health: 10}}}

	a := &core.Agent{
		BaseSpeed: 1, Freeze: 1,
		DefaultDestination: vmath.V2(500, 0),
		Destination:        vmath.V2(500, 0),
		Behaviors: core.Behaviors{Targeting: &core.TargetingConfig{
			Strategy: core.StrategyNearest, ScanRadius: 100, UpdateInterval: 2,
		}},
	}

	in.Advance(a, q, s)
	assert.Equal(t, vmath.V2(20, 20), a.Destination)
	assert.Equal(t, core.EntityID(7), a.TargetID)

	// Off-interval keeps the target even though it vanished
	q.structures = nil
	in.Advance(a, q, s)
	assert.Equal(t, core.EntityID(7), a.TargetID)

	in.Advance(a, q, s)
	assert.Equal(t, vmath.V2(500, 0), a.Destination)
	assert.Zero(t, a.TargetID)
}

func TestAdvance_MotionSeesSteeredVelocity(t *testing.T) {
	in := NewIntegrator(1000)
	m := &recordMotion{}
	a := &core.Agent{
		ID: 1, Kind: "grunt", BaseSpeed: 1, Freeze: 1, Destination: vmath.V2(100, 0), Motion: m,
		Behaviors: core.Behaviors{Flocking: &core.FlockingConfig{
			PerceptionRadius: 50, SeparationRadius: 20, MaxForce: 5, UpdateInterval: 1,
			Weights: core.FlockWeights{Separation: 1},
		}},
	}
	q := &fixedQuery{agents: []core.Neighbor{{ID: 2, Kind: "grunt", Pos: vmath.V2(0, 10)}}}

	in.Advance(a, q, steering.NewScratch(2))

	require.Equal(t, 1, m.calls)
	// seek (1,0) plus separation pushing away from (0,10)
	assert.InDelta(t, 1.0, m.seen.X, 1e-12)
	assert.InDelta(t, -0.1, m.seen.Y, 1e-12)
	assert.Equal(t, m.seen, a.Pos)
}

func TestArrived(t *testing.T) {
	a := &core.Agent{Destination: vmath.V2(10, 0)}
	a.Pos = vmath.V2(7, 0)
	assert.True(t, Arrived(a))

	a.Pos = vmath.V2(6, 0)
	assert.False(t, Arrived(a), "default radius is exclusive")

	a.ArrivalRadius = 10
	assert.True(t, Arrived(a))
}

func TestSpeedCurve(t *testing.T) {
	c := NewSpeedCurve(1000)
	require.InDelta(t, 150.0, c.Inner, 1e-9)
	require.InDelta(t, 600.0, c.Outer, 1e-9)

	assert.Equal(t, 1.0, c.Multiplier(0))
	assert.Equal(t, 1.0, c.Multiplier(150))
	assert.InDelta(t, c.Max, c.Multiplier(600), 1e-12)
	assert.InDelta(t, c.Max, c.Multiplier(10000), 1e-12)

	// Logarithmic: more than half the boost arrives in the first half of the ramp
	half := c.Multiplier(375)
	assert.Greater(t, half, 1+(c.Max-1)/2)

	prev := 1.0
	for d := 150.0; d <= 700; d += 10 {
		m := c.Multiplier(d)
		require.GreaterOrEqual(t, m, prev)
		require.LessOrEqual(t, m, c.Max)
		prev = m
	}
}

func TestSpeedCurve_Degenerate(t *testing.T) {
	c := SpeedCurve{Inner: 10, Outer: 10, Max: 3}
	assert.Equal(t, 1.0, c.Multiplier(5))
	assert.Equal(t, 3.0, c.Multiplier(11))

	flat := SpeedCurve{Inner: 0, Outer: 100, Max: 1}
	assert.Equal(t, 1.0, flat.Multiplier(50))
}
