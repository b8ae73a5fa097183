package steering

import (
	"math"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// IsApproaching reports whether the projectile's velocity has a positive component toward agentPos
// Zero and negative dot products are not approaching
func IsApproaching(p *core.Projectile, agentPos vmath.Vec2) bool {
	var toAgent vmath.Vec2
	vmath.Sub(&toAgent, agentPos, p.Pos)
	return vmath.Dot(p.Vel, toAgent) > 0
}

// DodgeVector writes the sidestep for a single threat into out
// The perpendicular more aligned with the agent's current velocity wins, ties keep the counter-clockwise one
// Magnitude is strength scaled by max(0.2, 1 - dist/150), a near-stationary projectile yields (0,0)
func DodgeVector(out *vmath.Vec2, p *core.Projectile, agentPos, agentVel vmath.Vec2, strength float64) {
	var heading vmath.Vec2
	if vmath.Normalize(&heading, p.Vel, parameter.DodgeMinProjectileSpeed) == 0 {
		out.Zero()
		return
	}

	var ccw, cw vmath.Vec2
	vmath.Perpendiculars(&ccw, &cw, heading)
	side := ccw
	if vmath.Dot(cw, agentVel) > vmath.Dot(ccw, agentVel) {
		side = cw
	}

	dist := vmath.Dist(agentPos, p.Pos)
	factor := math.Max(parameter.DodgeMinDistanceFactor, 1-dist/parameter.DodgeFalloffDistance)
	vmath.Scale(out, side, strength*factor)
}

// Dodge averages the sidesteps of all approaching projectiles within DetectRadius
// Returns false without computing when the agent's reaction time has not elapsed
func Dodge(out *vmath.Vec2, a *core.Agent, cfg *core.DodgeConfig, projectiles []core.Projectile) bool {
	out.Zero()
	if !core.Due(a.LiveTime, cfg.ReactionTime) {
		return false
	}

	radiusSq := cfg.DetectRadius * cfg.DetectRadius
	var sum, v vmath.Vec2
	threats := 0
	for i := range projectiles {
		p := &projectiles[i]
		// Query results are a superset of the radius
		if vmath.DistSq(a.Pos, p.Pos) >= radiusSq {
			continue
		}
		if !IsApproaching(p, a.Pos) {
			continue
		}
		DodgeVector(&v, p, a.Pos, a.Vel, cfg.Strength)
		vmath.Add(&sum, sum, v)
		threats++
	}

	if threats > 0 {
		vmath.Scale(out, sum, 1/float64(threats))
	}
	return true
}
