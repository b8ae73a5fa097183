// Package arena is a small tower-defense sandbox around the horde
// Towers shoot at monsters, waves spawn at the gate, monsters that reach the base damage it
package arena

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horde/config"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

// BaseID is the target ID of the base, towers are numbered from 1
const BaseID core.EntityID = 0

type Tower struct {
	ID              core.EntityID
	Pos             vmath.Vec2
	Range           float64
	Damage          float64
	Cooldown        float64 // ticks
	Health          float64
	ProjectileSpeed float64
	nextShot        uint64
}

func (t *Tower) Alive() bool {
	return t.Health > 0
}

type Projectile struct {
	core.Projectile
	Damage float64
	TTL    uint64
}

// Arena implements engine.Environment for a World
type Arena struct {
	cfg     config.ArenaConfig
	world   *engine.World
	spawner *engine.Spawner
	rng     *vmath.FastRand
	logger  *log.Logger

	towers      []Tower
	projectiles []Projectile
	nextShotID  core.EntityID

	base       vmath.Vec2
	gate       vmath.Vec2
	baseHealth float64
	wave       int
	nextWave   uint64
	kills      int
	over       bool
	onOver     func()
	onWave     func(wave int)

	hitBuf []core.Neighbor

	statWave        *atomic.Int64
	statKills       *atomic.Int64
	statTowers      *atomic.Int64
	statProjectiles *atomic.Int64
	statBaseHealth  *status.AtomicFloat
}

// New builds the arena and attaches it to the world as its environment
func New(cfg config.ArenaConfig, world *engine.World, spawner *engine.Spawner, seed int64, reg *status.Registry, logger *log.Logger) *Arena {
	if logger == nil {
		logger = log.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	a := &Arena{
		cfg:             cfg,
		world:           world,
		spawner:         spawner,
		rng:             vmath.NewFastRand(uint64(seed)),
		logger:          logger.WithPrefix("arena"),
		base:            cfg.Base.Vec(),
		gate:            cfg.Gate.Vec(),
		baseHealth:      cfg.BaseHealth,
		nextShotID:      1,
		statWave:        reg.Ints.Get("arena.wave"),
		statKills:       reg.Ints.Get("arena.kills"),
		statTowers:      reg.Ints.Get("arena.towers"),
		statProjectiles: reg.Ints.Get("arena.projectiles"),
		statBaseHealth:  reg.Floats.Get("arena.base_health"),
	}
	for i, tc := range cfg.Towers {
		a.towers = append(a.towers, Tower{
			ID:              core.EntityID(i + 1),
			Pos:             tc.Pos.Vec(),
			Range:           tc.Range,
			Damage:          tc.Damage,
			Cooldown:        tc.Cooldown,
			Health:          tc.Health,
			ProjectileSpeed: tc.ProjectileSpeed,
		})
	}
	alive := 0
	for i := range a.towers {
		if a.towers[i].Alive() {
			alive++
		}
	}
	a.statTowers.Store(int64(alive))
	a.statBaseHealth.Store(a.baseHealth)

	world.SetEnvironment(a)
	world.OnClash(a.clash)
	return a
}

// OnGameOver registers the callback fired once when the base falls
func (a *Arena) OnGameOver(fn func()) {
	a.onOver = fn
}

// OnWave registers the callback fired after each wave spawned
func (a *Arena) OnWave(fn func(wave int)) {
	a.onWave = fn
}

func (a *Arena) Over() bool { return a.over }
func (a *Arena) BaseHealth() float64 { return a.baseHealth }
func (a *Arena) BaseMaxHealth() float64 { return a.cfg.BaseHealth }
func (a *Arena) Base() vmath.Vec2 { return a.base }
func (a *Arena) Gate() vmath.Vec2 { return a.gate }
func (a *Arena) Wave() int { return a.wave }
func (a *Arena) Kills() int { return a.kills }
func (a *Arena) Towers() []Tower { return a.towers }
func (a *Arena) Projectiles() []Projectile { return a.projectiles }

// Snapshot exposes live projectiles and towers to the steering queries
func (a *Arena) Snapshot(projectiles []core.Projectile, structures []core.Structure) ([]core.Projectile, []core.Structure) {
	for i := range a.projectiles {
		projectiles = append(projectiles, a.projectiles[i].Projectile)
	}
	for i := range a.towers {
		t := &a.towers[i]
		if !t.Alive() {
			continue
		}
		structures = append(structures, core.Structure{
			ID:       t.ID,
			Pos:      t.Pos,
			Health:   t.Health,
			Damage:   t.Damage,
			Cooldown: t.Cooldown,
		})
	}
	return projectiles, structures
}

// Step runs after all agents moved: waves, tower fire, projectile flight
func (a *Arena) Step(w *engine.World) {
	if a.over {
		return
	}
	tick := w.Ticks()

	if tick >= a.nextWave {
		a.spawnWave()
		a.nextWave = tick + a.cfg.Waves.Interval
	}

	a.fire(w, tick)
	a.fly(w)

	a.statProjectiles.Store(int64(len(a.projectiles)))
}

func (a *Arena) spawnWave() {
	profiles := a.cfg.Waves.Profiles
	if len(profiles) == 0 {
		return
	}
	size := a.cfg.Waves.Size + a.wave*a.cfg.Waves.Growth
	for i := 0; i < size; i++ {
		name := profiles[a.rng.Intn(len(profiles))]
		pos := vmath.V2(
			a.gate.X+a.rng.Range(-parameter.GateSpawnSpread, parameter.GateSpawnSpread),
			a.gate.Y+a.rng.Range(-parameter.GateSpawnSpread, parameter.GateSpawnSpread),
		)
		if _, err := a.spawner.Spawn(name, pos, a.base); err != nil {
			a.logger.Error("spawn failed", "profile", name, "err", err)
		}
	}
	a.wave++
	a.statWave.Store(int64(a.wave))
	a.logger.Info("wave spawned", "wave", a.wave, "size", size)
	if a.onWave != nil {
		a.onWave(a.wave)
	}
}

// fire aims every ready tower at the nearest monster from the pre-tick snapshot
func (a *Arena) fire(w *engine.World, tick uint64) {
	for i := range a.towers {
		t := &a.towers[i]
		if !t.Alive() || tick < t.nextShot {
			continue
		}
		target, ok := w.Index().NearestAgent(t.Pos, t.Range)
		if !ok {
			continue
		}
		var dir vmath.Vec2
		vmath.Sub(&dir, target.Pos, t.Pos)
		if vmath.Normalize(&dir, dir, vmath.Epsilon) == 0 {
			dir.Set(1, 0)
		}
		p := Projectile{Damage: t.Damage, TTL: a.cfg.ProjectileTTL}
		p.ID = a.nextShotID
		p.Pos = t.Pos
		vmath.Scale(&p.Vel, dir, t.ProjectileSpeed)
		a.nextShotID++
		a.projectiles = append(a.projectiles, p)

		t.nextShot = tick + uint64(math.Max(parameter.TowerMinCooldown, t.Cooldown))
	}
}

// fly moves projectiles and resolves hits against live agent positions
func (a *Arena) fly(w *engine.World) {
	hitSq := a.cfg.HitRadius * a.cfg.HitRadius
	reach := a.cfg.HitRadius + w.MaxDisplacement()
	kept := a.projectiles[:0]

	for i := range a.projectiles {
		p := a.projectiles[i]
		vmath.Add(&p.Pos, p.Pos, p.Vel)
		if p.TTL > 0 {
			p.TTL--
		}

		hit := false
		// Snapshot finds candidates, the live position decides
		a.hitBuf = w.Index().Agents(p.Pos, reach, a.hitBuf[:0])
		for j := range a.hitBuf {
			ag, ok := w.Agent(a.hitBuf[j].ID)
			if !ok || ag.Health <= 0 {
				continue
			}
			if vmath.DistSq(ag.Pos, p.Pos) < hitSq {
				a.damageAgent(w, ag, p.Damage)
				hit = true
				break
			}
		}

		if !hit && p.TTL > 0 {
			kept = append(kept, p)
		}
	}
	a.projectiles = kept
}

func (a *Arena) damageAgent(w *engine.World, ag *core.Agent, dmg float64) {
	ag.Health -= dmg
	if ag.Health <= 0 {
		w.Remove(ag.ID)
		a.kills++
		a.statKills.Store(int64(a.kills))
	}
}

// clash applies monster impacts to towers or the base
func (a *Arena) clash(ag *core.Agent, imp core.Impact) {
	if a.over || imp.Damage <= 0 {
		return
	}

	if imp.TargetID != BaseID {
		if t := a.tower(imp.TargetID); t != nil && t.Alive() {
			t.Health -= imp.Damage
			if !t.Alive() {
				a.statTowers.Add(-1)
				a.logger.Info("tower destroyed", "tower", t.ID, "by", ag.Kind)
			}
		}
		// Tower hits never spill over to the base
		return
	}

	a.baseHealth -= imp.Damage
	a.statBaseHealth.Store(math.Max(0, a.baseHealth))
	if a.baseHealth <= 0 {
		a.over = true
		a.logger.Warn("base destroyed", "wave", a.wave, "kills", a.kills)
		if a.onOver != nil {
			a.onOver()
		}
	}
}

func (a *Arena) tower(id core.EntityID) *Tower {
	for i := range a.towers {
		if a.towers[i].ID == id {
			return &a.towers[i]
		}
	}
	return nil
}
