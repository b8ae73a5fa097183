package steering

import (
	"math"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// Selection is the result of a target scan
type Selection uint8

const (
	// SelectionKeep means the scan was not due, the current target stays
	SelectionKeep Selection = iota
	// SelectionNone means no candidate was in range, fall back to the default destination
	SelectionNone
	// SelectionFound means out holds the winner's position
	SelectionFound
)

func (s Selection) String() string {
	switch s {
	case SelectionKeep:
		return "keep"
	case SelectionNone:
		return "none"
	case SelectionFound:
		return "found"
	default:
		return "unknown"
	}
}

// EstimatedDPS returns damage / max(cooldown, 1), missing values default to 10 and 30
func EstimatedDPS(s *core.Structure) float64 {
	damage := s.Damage
	if damage <= 0 {
		damage = parameter.DefaultStructureDamage
	}
	cooldown := s.Cooldown
	if cooldown <= 0 {
		cooldown = parameter.DefaultStructureCooldown
	}
	return vmath.SafeDiv(damage, cooldown, 1)
}

// BalancedScore ranks a candidate at distance dist, higher is better
func BalancedScore(w core.TargetWeights, dist float64, s *core.Structure) float64 {
	return w.Distance*vmath.SafeDiv(parameter.BalancedDistanceScale, dist, 1) +
		w.HP*vmath.SafeDiv(parameter.BalancedHealthScale, s.Health, 1) +
		w.Threat*EstimatedDPS(s)
}

// SelectTarget scans candidates within ScanRadius and writes the winner's position into out
// Strict comparisons in a single pass make the first candidate win ties
func SelectTarget(out *vmath.Vec2, a *core.Agent, cfg *core.TargetingConfig, candidates []core.Structure) (Selection, core.EntityID) {
	if !core.Due(a.LiveTime, cfg.UpdateInterval) {
		return SelectionKeep, 0
	}

	radiusSq := cfg.ScanRadius * cfg.ScanRadius
	best := -1
	var bestValue float64

	for i := range candidates {
		c := &candidates[i]
		dSq := vmath.DistSq(a.Pos, c.Pos)
		if dSq >= radiusSq {
			continue
		}

		var value float64
		switch cfg.Strategy {
		case core.StrategyNearest:
			value = -dSq
		case core.StrategyWeakest:
			value = -c.Health
		case core.StrategyThreat:
			value = EstimatedDPS(c)
		default:
			value = BalancedScore(cfg.Weights, math.Sqrt(dSq), c)
		}

		if best < 0 || value > bestValue {
			best = i
			bestValue = value
		}
	}

	if best < 0 {
		return SelectionNone, 0
	}
	*out = candidates[best].Pos
	return SelectionFound, candidates[best].ID
}
