package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

func TestStraight_NoOp(t *testing.T) {
	a := &core.Agent{Kinetic: core.Kinetic{Vel: vmath.V2(2, 3)}}
	Straight{}.Apply(a)
	assert.Equal(t, vmath.V2(2, 3), a.Vel)
}

func TestOscillate(t *testing.T) {
	assert.Equal(t, 0.0, NewOscillate(0).Phase)

	o := &Oscillate{Amplitude: 0.5, Period: 8}
	a := &core.Agent{BaseSpeed: 2, Kinetic: core.Kinetic{Vel: vmath.V2(2, 0)}}

	// sin(0) adds nothing
	o.Apply(a)
	assert.InDelta(t, 0, a.Vel.Y, 1e-12)

	// Quarter period is the peak, sideways only
	a.Vel = vmath.V2(2, 0)
	a.LiveTime = 2
	o.Apply(a)
	assert.InDelta(t, 2.0, a.Vel.X, 1e-12)
	assert.InDelta(t, o.Amplitude*a.BaseSpeed, a.Vel.Y, 1e-9)

	// Three quarters swings the other way
	a.Vel = vmath.V2(2, 0)
	a.LiveTime = 6
	o.Apply(a)
	assert.InDelta(t, -o.Amplitude*a.BaseSpeed, a.Vel.Y, 1e-9)

	// Stationary agents stay put
	a.Vel = vmath.Vec2{}
	o.Apply(a)
	assert.Equal(t, vmath.Vec2{}, a.Vel)
}

func TestWander_PreservesSpeed(t *testing.T) {
	w := NewWander(11, 3.5)
	a := &core.Agent{Kinetic: core.Kinetic{Vel: vmath.V2(3, 4)}}

	for i := 0; i < 200; i++ {
		a.LiveTime = uint64(i)
		w.Apply(a)
		if d := a.Vel.Len() - 5; d > 1e-9 || d < -1e-9 {
			t.Fatalf("tick %d: speed drifted to %v", i, a.Vel.Len())
		}
	}
}

func TestWander_Deterministic(t *testing.T) {
	w1 := NewWander(5, 0)
	w2 := NewWander(5, 0)
	a1 := &core.Agent{Kinetic: core.Kinetic{Vel: vmath.V2(1, 0)}}
	a2 := &core.Agent{Kinetic: core.Kinetic{Vel: vmath.V2(1, 0)}}

	for i := 0; i < 50; i++ {
		a1.LiveTime, a2.LiveTime = uint64(i), uint64(i)
		w1.Apply(a1)
		w2.Apply(a2)
	}
	assert.Equal(t, a1.Vel, a2.Vel)
}

func TestCharge_BuildsAndDecays(t *testing.T) {
	c := NewCharge()
	a := &core.Agent{}

	for i := 0; i < 20; i++ {
		a.Vel = vmath.V2(1, 0)
		a.Accel = vmath.V2(0.1, 0)
		c.Apply(a)
	}
	assert.InDelta(t, c.MaxBoost, c.Boost(), 1e-12)
	assert.InDelta(t, c.MaxBoost, a.Vel.X, 1e-12)

	// Hard turn bleeds off the boost
	a.Vel = vmath.V2(0, 1)
	c.Apply(a)
	assert.InDelta(t, c.MaxBoost*c.Decay, c.Boost(), 1e-12)

	a.Accel = vmath.Vec2{}
	for i := 0; i < 100; i++ {
		a.Vel = vmath.V2(float64(i%2), float64((i+1)%2))
		c.Apply(a)
	}
	assert.Equal(t, 1.0, c.Boost())

	// Stopping resets
	a.Vel = vmath.Vec2{}
	c.Apply(a)
	assert.Equal(t, 1.0, c.Boost())
}
