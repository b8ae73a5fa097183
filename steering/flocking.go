package steering

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// Flock writes the weighted separation + alignment + cohesion force into out
// Neighbors are filtered here: self, other kinds and anything outside PerceptionRadius are ignored
// The sum is clamped once to MaxForce after all three terms are added
func Flock(out *vmath.Vec2, a *core.Agent, cfg *core.FlockingConfig, neighbors []core.Neighbor) bool {
	out.Zero()
	if !core.Due(a.LiveTime, cfg.UpdateInterval) {
		return false
	}

	perceptionSq := cfg.PerceptionRadius * cfg.PerceptionRadius
	separationSq := cfg.SeparationRadius * cfg.SeparationRadius

	var sep, velSum, posSum vmath.Vec2
	flock, crowd := 0, 0

	for i := range neighbors {
		n := &neighbors[i]
		if n.ID == a.ID || n.Kind != a.Kind {
			continue
		}
		dSq := vmath.DistSq(a.Pos, n.Pos)
		if dSq >= perceptionSq {
			continue
		}

		flock++
		vmath.Add(&velSum, velSum, n.Vel)
		vmath.Add(&posSum, posSum, n.Pos)

		// Coincident neighbors have no direction to repel along
		if dSq < separationSq && dSq > 0 {
			// (agent-neighbor)/d * 1/d
			inv := 1 / dSq
			sep.X += (a.Pos.X - n.Pos.X) * inv
			sep.Y += (a.Pos.Y - n.Pos.Y) * inv
			crowd++
		}
	}

	if flock == 0 {
		return true
	}

	inv := 1 / float64(flock)

	if crowd > 0 {
		vmath.Scale(&sep, sep, 1/float64(crowd))
	}

	var align vmath.Vec2
	vmath.Scale(&align, velSum, inv)
	vmath.Sub(&align, align, a.Vel)

	var cohesion vmath.Vec2
	vmath.Scale(&cohesion, posSum, inv)
	vmath.Sub(&cohesion, cohesion, a.Pos)
	vmath.Normalize(&cohesion, cohesion, vmath.Epsilon)

	vmath.AddScaled(out, sep, cfg.Weights.Separation)
	vmath.AddScaled(out, align, cfg.Weights.Alignment)
	vmath.AddScaled(out, cohesion, cfg.Weights.Cohesion)

	if cfg.MaxForce > 0 {
		vmath.ClampMagnitude(out, cfg.MaxForce)
	}
	return true
}
