package config

import (
	"fmt"
	"math"

	"github.com/lixenwraith/horde/core"
)

// Validate checks the whole file and reports all problems at once
func (f *File) Validate() error {
	var p []string
	add := func(format string, args ...any) {
		p = append(p, fmt.Sprintf(format, args...))
	}

	if f.Loop.Speed <= 0 || math.IsInf(f.Loop.Speed, 0) || math.IsNaN(f.Loop.Speed) {
		add("loop.speed must be positive and finite, got %g", f.Loop.Speed)
	}
	if f.Loop.FrameIntervalMs <= 0 {
		add("loop.frame_interval_ms must be positive, got %d", f.Loop.FrameIntervalMs)
	}
	if f.World.Width <= 0 || f.World.Height <= 0 {
		add("world size must be positive, got %gx%g", f.World.Width, f.World.Height)
	}

	for _, name := range f.ProfileNames() {
		pc := f.Profiles[name]
		if pc.BaseSpeed < 0 {
			add("profile %s: base_speed must not be negative", name)
		}
		if pc.Health <= 0 {
			add("profile %s: health must be positive", name)
		}
		if d := pc.Dodge; d != nil && d.Able {
			if d.DetectRadius <= 0 {
				add("profile %s: dodge.detect_radius must be positive", name)
			}
			if d.Strength < 0 {
				add("profile %s: dodge.dodge_strength must not be negative", name)
			}
		}
		if fl := pc.Flocking; fl != nil {
			if fl.PerceptionRadius <= 0 {
				add("profile %s: flocking.perception_radius must be positive", name)
			}
			if fl.SeparationRadius < 0 || fl.SeparationRadius > fl.PerceptionRadius {
				add("profile %s: flocking.separation_radius must be within [0, perception_radius]", name)
			}
			if fl.MaxForce <= 0 {
				add("profile %s: flocking.max_force must be positive", name)
			}
		}
		if ts := pc.TargetSelection; ts != nil && ts.Able {
			if _, err := core.ParseTargetStrategy(ts.Strategy); err != nil {
				add("profile %s: %v", name, err)
			}
			if ts.ScanRadius <= 0 {
				add("profile %s: target_selection.scan_radius must be positive", name)
			}
		}
	}

	a := &f.Arena
	if a.BaseHealth <= 0 {
		add("arena.base_health must be positive")
	}
	if !f.inside(a.Base) {
		add("arena.base (%g,%g) is outside the world", a.Base.X, a.Base.Y)
	}
	if !f.inside(a.Gate) {
		add("arena.gate (%g,%g) is outside the world", a.Gate.X, a.Gate.Y)
	}
	for i, t := range a.Towers {
		if t.Range <= 0 || t.ProjectileSpeed <= 0 {
			add("arena.towers[%d]: range and projectile_speed must be positive", i)
		}
		if t.Health <= 0 {
			add("arena.towers[%d]: health must be positive", i)
		}
	}
	if a.Waves.Interval == 0 || a.Waves.Size <= 0 {
		add("arena.waves: interval and size must be positive")
	}
	for _, name := range a.Waves.Profiles {
		if _, ok := f.Profiles[name]; !ok {
			add("arena.waves: unknown profile %q", name)
		}
	}

	if len(p) > 0 {
		return &ValidationError{Problems: p}
	}
	return nil
}

func (f *File) inside(pt Point) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X <= f.World.Width && pt.Y <= f.World.Height
}
