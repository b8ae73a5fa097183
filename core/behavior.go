package core

import "fmt"

// DodgeConfig drives bullet dodging, ReactionTime is in ticks
type DodgeConfig struct {
	DetectRadius float64
	Strength     float64
	ReactionTime uint64
}

// FlockWeights scale the three boids terms
type FlockWeights struct {
	Separation float64
	Alignment  float64
	Cohesion   float64
}

// FlockingConfig drives separation, alignment and cohesion
// SeparationRadius <= PerceptionRadius, MaxForce > 0
type FlockingConfig struct {
	PerceptionRadius float64
	SeparationRadius float64
	Weights          FlockWeights
	MaxForce         float64
	UpdateInterval   uint64
}

// TargetStrategy selects how structures are ranked
type TargetStrategy uint8

const (
	StrategyBalanced TargetStrategy = iota
	StrategyNearest
	StrategyWeakest
	StrategyThreat
)

var strategyNames = [...]string{
	StrategyBalanced: "balanced",
	StrategyNearest:  "nearest",
	StrategyWeakest:  "weakest",
	StrategyThreat:   "threat",
}

func (s TargetStrategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// ParseTargetStrategy maps a config name to a strategy, empty means balanced
func ParseTargetStrategy(name string) (TargetStrategy, error) {
	if name == "" {
		return StrategyBalanced, nil
	}
	for i, n := range strategyNames {
		if n == name {
			return TargetStrategy(i), nil
		}
	}
	return StrategyBalanced, fmt.Errorf("unknown target strategy %q", name)
}

// TargetWeights are used by the balanced strategy only and need not sum to 1
type TargetWeights struct {
	Distance float64
	HP       float64
	Threat   float64
}

// TargetingConfig drives dynamic target selection
type TargetingConfig struct {
	Strategy       TargetStrategy
	ScanRadius     float64
	UpdateInterval uint64
	Weights        TargetWeights
}

// Behaviors holds the independently enabled steering configs, nil disables
type Behaviors struct {
	Dodge     *DodgeConfig
	Flocking  *FlockingConfig
	Targeting *TargetingConfig
}
