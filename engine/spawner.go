package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/registry"
	"github.com/lixenwraith/horde/vmath"
)

// Spawner builds agents from registry profiles and adds them to a world
type Spawner struct {
	reg   *registry.Registry
	world *World
	seed  int64
}

func NewSpawner(reg *registry.Registry, world *World, seed int64) *Spawner {
	return &Spawner{reg: reg, world: world, seed: seed}
}

// Build creates an agent from a profile without adding it
// Behavior configs are shared read-only between agents of one profile, strategies are per agent
func (s *Spawner) Build(profile string, pos, dest vmath.Vec2) (*core.Agent, error) {
	p, ok := s.reg.Profile(profile)
	if !ok {
		return nil, errors.Errorf("unknown profile %q", profile)
	}

	s.seed++
	a := &core.Agent{
		Kind:               p.Kind,
		Kinetic:            core.Kinetic{Pos: pos},
		Destination:        dest,
		DefaultDestination: dest,
		BaseSpeed:          p.BaseSpeed,
		AccelRate:          p.AccelRate,
		Health:             p.Health,
		Freeze:             1,
		Behaviors:          p.Behaviors,
		ArrivalRadius:      p.ArrivalRadius,
	}

	if p.Motion != "" {
		f, ok := s.reg.Motion(p.Motion)
		if !ok {
			return nil, errors.Errorf("profile %q: motion %q not registered", profile, p.Motion)
		}
		a.Motion = f(s.seed)
	}
	if p.Collision != "" {
		f, ok := s.reg.Collision(p.Collision)
		if !ok {
			return nil, errors.Errorf("profile %q: collision %q not registered", profile, p.Collision)
		}
		a.Collision = f(p.Damage)
	}
	return a, nil
}

// Spawn builds an agent and adds it to the world
func (s *Spawner) Spawn(profile string, pos, dest vmath.Vec2) (core.EntityID, error) {
	a, err := s.Build(profile, pos, dest)
	if err != nil {
		return 0, err
	}
	return s.world.Add(a), nil
}
