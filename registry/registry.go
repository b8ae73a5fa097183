// Package registry maps names to motion and collision strategies and agent archetypes
// A Registry is built once at startup and handed to the spawner, there is no package-level state
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/physics"
)

// MotionFactory builds a motion for one agent, seed varies per agent
// Stateful motions must return a fresh instance per call
type MotionFactory func(seed int64) core.Motion

// CollisionFactory builds a collision response dealing the profile's damage
type CollisionFactory func(damage float64) core.Collision

// Profile is a resolved agent archetype
type Profile struct {
	Name          string
	Kind          string
	BaseSpeed     float64
	AccelRate     float64
	Health        float64
	Damage        float64
	ArrivalRadius float64
	Motion        string
	Collision     string
	Behaviors     core.Behaviors
}

// Registry holds strategy factories and archetype profiles by name
type Registry struct {
	mu         sync.RWMutex
	motions    map[string]MotionFactory
	collisions map[string]CollisionFactory
	profiles   map[string]*Profile
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		motions:    make(map[string]MotionFactory),
		collisions: make(map[string]CollisionFactory),
		profiles:   make(map[string]*Profile),
	}
}

// NewDefault creates a registry with the built-in physics strategies
func NewDefault() *Registry {
	r := New()
	r.mustRegisterMotion("straight", func(int64) core.Motion { return physics.Straight{} })
	r.mustRegisterMotion("oscillate", func(seed int64) core.Motion { return physics.NewOscillate(float64(seed % 360)) })
	r.mustRegisterMotion("wander", func(seed int64) core.Motion { return physics.NewWander(seed, float64(seed)) })
	r.mustRegisterMotion("charge", func(int64) core.Motion { return physics.NewCharge() })

	r.mustRegisterCollision("explode", func(d float64) core.Collision { return physics.Explode{Damage: d} })
	r.mustRegisterCollision("bounce", func(d float64) core.Collision { return physics.Bounce{Damage: d} })
	r.mustRegisterCollision("halt", func(float64) core.Collision { return physics.Halt{} })
	return r
}

func (r *Registry) mustRegisterMotion(name string, f MotionFactory) {
	if err := r.RegisterMotion(name, f); err != nil {
		panic(err)
	}
}

func (r *Registry) mustRegisterCollision(name string, f CollisionFactory) {
	if err := r.RegisterCollision(name, f); err != nil {
		panic(err)
	}
}

// RegisterMotion adds a motion factory, names are unique
func (r *Registry) RegisterMotion(name string, f MotionFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.motions[name]; ok {
		return fmt.Errorf("motion %q already registered", name)
	}
	r.motions[name] = f
	return nil
}

// Motion retrieves a motion factory by name
func (r *Registry) Motion(name string) (MotionFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.motions[name]
	return f, ok
}

// RegisterCollision adds a collision factory, names are unique
func (r *Registry) RegisterCollision(name string, f CollisionFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.collisions[name]; ok {
		return fmt.Errorf("collision %q already registered", name)
	}
	r.collisions[name] = f
	return nil
}

// Collision retrieves a collision factory by name
func (r *Registry) Collision(name string) (CollisionFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.collisions[name]
	return f, ok
}

// RegisterProfile adds or replaces an archetype
// Strategy names must already be registered, empty names fall back to straight motion and halt
func (r *Registry) RegisterProfile(p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.Name == "" {
		return fmt.Errorf("profile without name")
	}
	if p.Motion != "" {
		if _, ok := r.motions[p.Motion]; !ok {
			return fmt.Errorf("profile %q: unknown motion %q", p.Name, p.Motion)
		}
	}
	if p.Collision != "" {
		if _, ok := r.collisions[p.Collision]; !ok {
			return fmt.Errorf("profile %q: unknown collision %q", p.Name, p.Collision)
		}
	}
	if p.Kind == "" {
		p.Kind = p.Name
	}
	r.profiles[p.Name] = &p
	return nil
}

// Profile retrieves an archetype by name, the result must not be modified
func (r *Registry) Profile(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// ProfileNames returns all archetype names in sorted order
func (r *Registry) ProfileNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.profiles)
}

// MotionNames returns all motion names in sorted order
func (r *Registry) MotionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.motions)
}

// CollisionNames returns all collision names in sorted order
func (r *Registry) CollisionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.collisions)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
