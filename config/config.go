// Package config loads the YAML scenario: loop tuning, world bounds, arena layout and agent profiles
package config

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/registry"
	"github.com/lixenwraith/horde/vmath"
)

// File is the root of a scenario document
type File struct {
	Loop     LoopConfig               `yaml:"loop"`
	World    WorldConfig              `yaml:"world"`
	Arena    ArenaConfig              `yaml:"arena"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`
}

type LoopConfig struct {
	Speed           float64 `yaml:"speed"`
	FrameIntervalMs int     `yaml:"frame_interval_ms"`
}

type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Seed   int64   `yaml:"seed"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec() vmath.Vec2 {
	return vmath.V2(p.X, p.Y)
}

type TowerConfig struct {
	Pos             Point   `yaml:"pos"`
	Range           float64 `yaml:"range"`
	Damage          float64 `yaml:"damage"`
	Cooldown        float64 `yaml:"cooldown"`
	Health          float64 `yaml:"health"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
}

type WaveConfig struct {
	Interval uint64   `yaml:"interval"`
	Size     int      `yaml:"size"`
	Growth   int      `yaml:"growth"`
	Profiles []string `yaml:"profiles"`
}

type ArenaConfig struct {
	BaseHealth    float64       `yaml:"base_health"`
	Base          Point         `yaml:"base"`
	Gate          Point         `yaml:"gate"`
	ProjectileTTL uint64        `yaml:"projectile_ttl"`
	HitRadius     float64       `yaml:"hit_radius"`
	Towers        []TowerConfig `yaml:"towers"`
	Waves         WaveConfig    `yaml:"waves"`
}

// DodgeConfig is the per-agent dodge group, absent or dodge_able false disables it
type DodgeConfig struct {
	Able         bool    `yaml:"dodge_able"`
	DetectRadius float64 `yaml:"detect_radius"`
	Strength     float64 `yaml:"dodge_strength"`
	ReactionTime uint64  `yaml:"reaction_time"`
}

type FlockWeights struct {
	Separation float64 `yaml:"separation"`
	Alignment  float64 `yaml:"alignment"`
	Cohesion   float64 `yaml:"cohesion"`
}

// FlockingConfig is enabled by presence
type FlockingConfig struct {
	PerceptionRadius float64       `yaml:"perception_radius"`
	SeparationRadius float64       `yaml:"separation_radius"`
	UpdateInterval   uint64        `yaml:"update_interval"`
	Weights          *FlockWeights `yaml:"weights"`
	MaxForce         float64       `yaml:"max_force"`
}

type TargetWeights struct {
	Distance float64 `yaml:"distance"`
	HP       float64 `yaml:"hp"`
	Threat   float64 `yaml:"threat"`
}

// TargetSelectionConfig is the per-agent targeting group, absent or target_selection_able false disables it
type TargetSelectionConfig struct {
	Able           bool           `yaml:"target_selection_able"`
	Strategy       string         `yaml:"strategy"`
	ScanRadius     float64        `yaml:"scan_radius"`
	UpdateInterval uint64         `yaml:"update_interval"`
	Weights        *TargetWeights `yaml:"weights"`
}

type ProfileConfig struct {
	Kind            string                 `yaml:"kind"`
	BaseSpeed       float64                `yaml:"base_speed"`
	AccelRate       float64                `yaml:"accel_rate"`
	Health          float64                `yaml:"health"`
	Damage          float64                `yaml:"damage"`
	ArrivalRadius   float64                `yaml:"arrival_radius"`
	Motion          string                 `yaml:"motion"`
	Collision       string                 `yaml:"collision"`
	Dodge           *DodgeConfig           `yaml:"dodge"`
	Flocking        *FlockingConfig        `yaml:"flocking"`
	TargetSelection *TargetSelectionConfig `yaml:"target_selection"`
}

// Load reads and validates a scenario file, profiles in the file replace built-ins of the same name
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

// Parse decodes a scenario over Default and validates the result
func Parse(data []byte) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Behaviors converts the three optional groups into core configs, filling defaults
func (p *ProfileConfig) Behaviors() (core.Behaviors, error) {
	var b core.Behaviors

	if d := p.Dodge; d != nil && d.Able {
		b.Dodge = &core.DodgeConfig{
			DetectRadius: d.DetectRadius,
			Strength:     d.Strength,
			ReactionTime: atLeastOne(d.ReactionTime),
		}
	}

	if fl := p.Flocking; fl != nil {
		w := core.FlockWeights{
			Separation: parameter.DefaultSeparationWeight,
			Alignment:  parameter.DefaultAlignmentWeight,
			Cohesion:   parameter.DefaultCohesionWeight,
		}
		if fl.Weights != nil {
			w = core.FlockWeights(*fl.Weights)
		}
		b.Flocking = &core.FlockingConfig{
			PerceptionRadius: fl.PerceptionRadius,
			SeparationRadius: fl.SeparationRadius,
			Weights:          w,
			MaxForce:         fl.MaxForce,
			UpdateInterval:   atLeastOne(fl.UpdateInterval),
		}
	}

	if ts := p.TargetSelection; ts != nil && ts.Able {
		strategy, err := core.ParseTargetStrategy(ts.Strategy)
		if err != nil {
			return b, errors.WithStack(err)
		}
		w := core.TargetWeights{Distance: 1, HP: 1, Threat: 1}
		if ts.Weights != nil {
			w = core.TargetWeights(*ts.Weights)
		}
		b.Targeting = &core.TargetingConfig{
			Strategy:       strategy,
			ScanRadius:     ts.ScanRadius,
			UpdateInterval: atLeastOne(ts.UpdateInterval),
			Weights:        w,
		}
	}

	return b, nil
}

func atLeastOne(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return n
}

// Register resolves every profile into reg in name order
func (f *File) Register(reg *registry.Registry) error {
	for _, name := range f.ProfileNames() {
		pc := f.Profiles[name]
		b, err := pc.Behaviors()
		if err != nil {
			return errors.Wrapf(err, "profile %s", name)
		}
		err = reg.RegisterProfile(registry.Profile{
			Name:          name,
			Kind:          pc.Kind,
			BaseSpeed:     pc.BaseSpeed,
			AccelRate:     pc.AccelRate,
			Health:        pc.Health,
			Damage:        pc.Damage,
			ArrivalRadius: pc.ArrivalRadius,
			Motion:        pc.Motion,
			Collision:     pc.Collision,
			Behaviors:     b,
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// ProfileNames returns profile names in sorted order
func (f *File) ProfileNames() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationError lists every problem found in a scenario
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}
