package config

import (
	"time"

	"github.com/lixenwraith/horde/parameter"
)

// Default returns the built-in scenario: a lane from the gate on the left to the base on the right, guarded by four towers
func Default() *File {
	return &File{
		Loop: LoopConfig{
			Speed:           1,
			FrameIntervalMs: int(parameter.FrameUpdateInterval / time.Millisecond),
		},
		World: WorldConfig{
			Width:  240,
			Height: 80,
			Seed:   1,
		},
		Arena: ArenaConfig{
			BaseHealth:    300,
			Base:          Point{X: 230, Y: 40},
			Gate:          Point{X: 6, Y: 40},
			ProjectileTTL: 150,
			HitRadius:     2,
			Towers: []TowerConfig{
				{Pos: Point{X: 70, Y: 22}, Range: 45, Damage: 8, Cooldown: 24, Health: 120, ProjectileSpeed: 2.2},
				{Pos: Point{X: 110, Y: 58}, Range: 45, Damage: 8, Cooldown: 24, Health: 120, ProjectileSpeed: 2.2},
				{Pos: Point{X: 160, Y: 26}, Range: 60, Damage: 20, Cooldown: 60, Health: 160, ProjectileSpeed: 1.6},
				{Pos: Point{X: 200, Y: 54}, Range: 35, Damage: 4, Cooldown: 8, Health: 90, ProjectileSpeed: 3},
			},
			Waves: WaveConfig{
				Interval: 360,
				Size:     10,
				Growth:   3,
				Profiles: []string{"grunt", "weaver", "drifter", "brute", "sapper"},
			},
		},
		Profiles: map[string]ProfileConfig{
			"grunt": {
				BaseSpeed: 0.22, Health: 30, Damage: 10, Motion: "straight", Collision: "explode",
				Dodge: &DodgeConfig{Able: true, DetectRadius: 18, Strength: 0.25, ReactionTime: 6},
				Flocking: &FlockingConfig{
					PerceptionRadius: 12, SeparationRadius: 4, UpdateInterval: 3, MaxForce: 0.12,
				},
			},
			"weaver": {
				BaseSpeed: 0.26, Health: 22, Damage: 8, Motion: "oscillate", Collision: "bounce",
				Dodge: &DodgeConfig{Able: true, DetectRadius: 24, Strength: 0.45, ReactionTime: 2},
			},
			"drifter": {
				BaseSpeed: 0.18, Health: 40, Damage: 12, Motion: "wander", Collision: "explode",
				Flocking: &FlockingConfig{
					PerceptionRadius: 16, SeparationRadius: 5, UpdateInterval: 2, MaxForce: 0.15,
					Weights: &FlockWeights{Separation: 2, Alignment: 1.2, Cohesion: 0.8},
				},
			},
			"brute": {
				BaseSpeed: 0.12, AccelRate: 0.01, Health: 140, Damage: 6, Motion: "charge", Collision: "bounce",
				TargetSelection: &TargetSelectionConfig{
					Able: true, Strategy: "threat", ScanRadius: 60, UpdateInterval: 30,
				},
			},
			"sapper": {
				BaseSpeed: 0.2, Health: 26, Damage: 45, Motion: "straight", Collision: "explode",
				Dodge: &DodgeConfig{Able: true, DetectRadius: 20, Strength: 0.3, ReactionTime: 4},
				TargetSelection: &TargetSelectionConfig{
					Able: true, Strategy: "balanced", ScanRadius: 50, UpdateInterval: 20,
					Weights: &TargetWeights{Distance: 1, HP: 2, Threat: 0.5},
				},
			},
		},
	}
}
