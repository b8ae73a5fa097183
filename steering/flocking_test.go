package steering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

func flockConfig() *core.FlockingConfig {
	return &core.FlockingConfig{
		PerceptionRadius: 100,
		SeparationRadius: 40,
		Weights:          core.FlockWeights{Separation: 1.5, Alignment: 1, Cohesion: 1},
		MaxForce:         2,
		UpdateInterval:   1,
	}
}

func TestFlock_EmptyAfterFiltering(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt"}
	neighbors := []core.Neighbor{
		{ID: 1, Kind: "grunt", Pos: vmath.V2(0, 0)},   // self
		{ID: 2, Kind: "flyer", Pos: vmath.V2(5, 0)},   // other kind
		{ID: 3, Kind: "grunt", Pos: vmath.V2(100, 0)}, // on the perception boundary
		{ID: 4, Kind: "grunt", Pos: vmath.V2(90, 90)}, // box corner
	}

	out := vmath.V2(3, 3)
	assert.True(t, Flock(&out, a, flockConfig(), neighbors))
	assert.Equal(t, vmath.Vec2{}, out)

	assert.True(t, Flock(&out, a, flockConfig(), nil))
	assert.Equal(t, vmath.Vec2{}, out)
}

func TestFlock_Throttled(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt", LiveTime: 5}
	cfg := flockConfig()
	cfg.UpdateInterval = 4
	neighbors := []core.Neighbor{{ID: 2, Kind: "grunt", Pos: vmath.V2(10, 0)}}

	out := vmath.V2(1, 1)
	assert.False(t, Flock(&out, a, cfg, neighbors))
	assert.Equal(t, vmath.Vec2{}, out)

	a.LiveTime = 8
	assert.True(t, Flock(&out, a, cfg, neighbors))
	assert.False(t, out.IsZero())
}

func TestFlock_SeparationPointsAway(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt", Kinetic: core.Kinetic{Pos: vmath.V2(0, 0)}}
	cfg := &core.FlockingConfig{
		PerceptionRadius: 100,
		SeparationRadius: 40,
		Weights:          core.FlockWeights{Separation: 1},
		MaxForce:         10,
		UpdateInterval:   1,
	}
	neighbors := []core.Neighbor{{ID: 2, Kind: "grunt", Pos: vmath.V2(10, 0)}}

	var out vmath.Vec2
	Flock(&out, a, cfg, neighbors)
	assert.Less(t, out.X, 0.0)
	assert.InDelta(t, 0, out.Y, 1e-12)
	// (0-10)/10 * 1/10
	assert.InDelta(t, -0.1, out.X, 1e-12)
}

func TestFlock_SeparationIgnoresCoincident(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt"}
	cfg := &core.FlockingConfig{
		PerceptionRadius: 100,
		SeparationRadius: 40,
		Weights:          core.FlockWeights{Separation: 1},
		MaxForce:         10,
		UpdateInterval:   1,
	}
	neighbors := []core.Neighbor{{ID: 2, Kind: "grunt", Pos: vmath.V2(0, 0)}}

	var out vmath.Vec2
	Flock(&out, a, cfg, neighbors)
	assert.Equal(t, vmath.Vec2{}, out)
}

func TestFlock_AlignmentAndCohesion(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt", Kinetic: core.Kinetic{Vel: vmath.V2(1, 0)}}
	cfg := &core.FlockingConfig{
		PerceptionRadius: 100,
		SeparationRadius: 1,
		Weights:          core.FlockWeights{Alignment: 1},
		MaxForce:         100,
		UpdateInterval:   1,
	}
	neighbors := []core.Neighbor{
		{ID: 2, Kind: "grunt", Pos: vmath.V2(0, 50), Vel: vmath.V2(0, 2)},
		{ID: 3, Kind: "grunt", Pos: vmath.V2(0, -10), Vel: vmath.V2(0, 4)},
	}

	var out vmath.Vec2
	Flock(&out, a, cfg, neighbors)
	// mean velocity (0,3) minus own (1,0)
	assert.InDelta(t, -1.0, out.X, 1e-12)
	assert.InDelta(t, 3.0, out.Y, 1e-12)

	cfg.Weights = core.FlockWeights{Cohesion: 1}
	Flock(&out, a, cfg, neighbors)
	// centroid (0,20), unit vector regardless of distance
	assert.InDelta(t, 0, out.X, 1e-12)
	assert.InDelta(t, 1.0, out.Y, 1e-12)
}

func TestFlock_ClampAppliedToSum(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt"}
	cfg := &core.FlockingConfig{
		PerceptionRadius: 5,
		SeparationRadius: 0.5,
		Weights:          core.FlockWeights{Alignment: 1, Cohesion: 1},
		MaxForce:         3,
		UpdateInterval:   1,
	}
	neighbors := []core.Neighbor{{ID: 2, Kind: "grunt", Pos: vmath.V2(1, 0), Vel: vmath.V2(0, 3)}}

	var out vmath.Vec2
	Flock(&out, a, cfg, neighbors)
	// alignment (0,3) and cohesion (1,0) each fit, their sum does not
	assert.InDelta(t, 3.0, out.Len(), 1e-9)
	assert.InDelta(t, out.Y/out.X, 3.0, 1e-9)
}

func TestFlock_MagnitudeBounded(t *testing.T) {
	rng := vmath.NewFastRand(7)
	cfg := flockConfig()
	neighbors := make([]core.Neighbor, 30)
	var out vmath.Vec2

	for round := 0; round < 200; round++ {
		a := &core.Agent{ID: 1000, Kind: "grunt", Kinetic: core.Kinetic{
			Pos: vmath.V2(rng.Range(-20, 20), rng.Range(-20, 20)),
			Vel: vmath.V2(rng.Range(-3, 3), rng.Range(-3, 3)),
		}}
		for i := range neighbors {
			neighbors[i] = core.Neighbor{
				ID:   core.EntityID(i + 1),
				Kind: "grunt",
				Pos:  vmath.V2(rng.Range(-60, 60), rng.Range(-60, 60)),
				Vel:  vmath.V2(rng.Range(-10, 10), rng.Range(-10, 10)),
			}
		}
		Flock(&out, a, cfg, neighbors)
		if out.Len() > cfg.MaxForce+1e-9 {
			t.Fatalf("round %d: flock magnitude %v exceeds max force %v", round, out.Len(), cfg.MaxForce)
		}
	}
}

func TestFlock_NoAlloc(t *testing.T) {
	a := &core.Agent{ID: 1, Kind: "grunt"}
	cfg := flockConfig()
	neighbors := make([]core.Neighbor, 16)
	for i := range neighbors {
		neighbors[i] = core.Neighbor{ID: core.EntityID(i + 2), Kind: "grunt", Pos: vmath.V2(float64(i), 3)}
	}
	var out vmath.Vec2
	allocs := testing.AllocsPerRun(100, func() {
		Flock(&out, a, cfg, neighbors)
	})
	assert.Zero(t, allocs)
}
