package engine

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/spatial"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/steering"
	"github.com/lixenwraith/horde/vmath"
)

// Environment supplies the non-agent entities and reacts after agents moved
// Snapshot appends the current projectiles and structures, Step runs once per tick after all agents
type Environment interface {
	Snapshot(projectiles []core.Projectile, structures []core.Structure) ([]core.Projectile, []core.Structure)
	Step(w *World)
}

// ClashFunc observes collision responses before their outcome is applied
type ClashFunc func(a *core.Agent, imp core.Impact)

// World owns the agent population and implements Simulation
// Membership changes requested during a tick are deferred until the tick ends
type World struct {
	agents []*core.Agent
	byID   map[core.EntityID]*core.Agent
	nextID core.EntityID

	pendingAdd    []*core.Agent
	pendingRemove []core.EntityID
	stepping      bool

	index      *spatial.Index
	integrator *physics.Integrator
	scratch    *steering.Scratch
	env        Environment
	onClash    ClashFunc

	min, max vmath.Vec2

	// Per-tick snapshot buffers
	neighbors   []core.Neighbor
	projectiles []core.Projectile
	structures  []core.Structure
	impacts     []pendingImpact

	ticks  uint64
	logger *log.Logger

	statAgents  *atomic.Int64
	statTicks   *atomic.Int64
	statRemoved *atomic.Int64
	statClashes *atomic.Int64
}

type pendingImpact struct {
	agent  *core.Agent
	impact core.Impact
}

// NewWorld creates an empty world spanning [0,width]x[0,height]
func NewWorld(width, height float64, reg *status.Registry, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &World{
		byID:        make(map[core.EntityID]*core.Agent),
		nextID:      1,
		index:       spatial.NewIndex(),
		integrator:  physics.NewIntegrator(math.Max(width, height)),
		scratch:     steering.NewScratch(64),
		max:         vmath.V2(width, height),
		logger:      logger.WithPrefix("world"),
		statAgents:  reg.Ints.Get("world.agents"),
		statTicks:   reg.Ints.Get("world.ticks"),
		statRemoved: reg.Ints.Get("world.removed"),
		statClashes: reg.Ints.Get("world.clashes"),
	}
}

// SetEnvironment attaches the provider of projectiles and structures
func (w *World) SetEnvironment(env Environment) {
	w.env = env
}

// OnClash registers the collision observer
func (w *World) OnClash(fn ClashFunc) {
	w.onClash = fn
}

// Bounds returns the world rectangle corners
func (w *World) Bounds() (min, max vmath.Vec2) {
	return w.min, w.max
}

// Index exposes the snapshot of the last tick
func (w *World) Index() *spatial.Index {
	return w.index
}

// Ticks returns the number of completed ticks
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Add inserts an agent and returns its ID, assigning one when zero
// During a tick the agent joins after the tick ends
func (w *World) Add(a *core.Agent) core.EntityID {
	if a.ID == 0 {
		a.ID = w.nextID
		w.nextID++
	} else if a.ID >= w.nextID {
		w.nextID = a.ID + 1
	}

	if w.stepping {
		w.pendingAdd = append(w.pendingAdd, a)
	} else {
		w.insert(a)
	}
	return a.ID
}

// Remove deletes an agent, during a tick the removal happens after the tick ends
func (w *World) Remove(id core.EntityID) {
	if w.stepping {
		w.pendingRemove = append(w.pendingRemove, id)
		return
	}
	w.delete(id)
}

// Agent returns a live agent by ID
func (w *World) Agent(id core.EntityID) (*core.Agent, bool) {
	a, ok := w.byID[id]
	return a, ok
}

// Agents returns the live population, valid until the next membership change
func (w *World) Agents() []*core.Agent {
	return w.agents
}

// MaxDisplacement returns the farthest any agent has moved since the last index snapshot
// Covers integration, bounds reflection and collision push-back alike
func (w *World) MaxDisplacement() float64 {
	m := 0.0
	for i := range w.neighbors {
		n := &w.neighbors[i]
		if a, ok := w.byID[n.ID]; ok {
			if d := vmath.DistSq(a.Pos, n.Pos); d > m {
				m = d
			}
		}
	}
	return math.Sqrt(m)
}

// Len returns the live population size
func (w *World) Len() int {
	return len(w.agents)
}

func (w *World) insert(a *core.Agent) {
	if _, ok := w.byID[a.ID]; ok {
		w.logger.Warn("duplicate agent id, ignoring add", "id", a.ID)
		return
	}
	w.agents = append(w.agents, a)
	w.byID[a.ID] = a
	w.statAgents.Store(int64(len(w.agents)))
}

func (w *World) delete(id core.EntityID) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	// Filter in place, order preserved
	kept := w.agents[:0]
	for _, a := range w.agents {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(w.agents); i++ {
		w.agents[i] = nil
	}
	w.agents = kept
	w.statRemoved.Add(1)
	w.statAgents.Store(int64(len(w.agents)))
}

func (w *World) flush() {
	for _, id := range w.pendingRemove {
		w.delete(id)
	}
	w.pendingRemove = w.pendingRemove[:0]

	for i, a := range w.pendingAdd {
		w.insert(a)
		w.pendingAdd[i] = nil
	}
	w.pendingAdd = w.pendingAdd[:0]
}

// snapshot copies pre-tick state into the spatial index
func (w *World) snapshot() {
	w.neighbors = w.neighbors[:0]
	for _, a := range w.agents {
		w.neighbors = append(w.neighbors, core.Neighbor{ID: a.ID, Kind: a.Kind, Pos: a.Pos, Vel: a.Vel})
	}
	w.projectiles = w.projectiles[:0]
	w.structures = w.structures[:0]
	if w.env != nil {
		w.projectiles, w.structures = w.env.Snapshot(w.projectiles, w.structures)
	}
	w.index.Rebuild(w.projectiles, w.neighbors, w.structures)
}

// Step advances every agent one tick against the pre-tick snapshot
func (w *World) Step() {
	w.stepping = true

	w.snapshot()

	w.impacts = w.impacts[:0]
	for _, a := range w.agents {
		if a.Suspended {
			continue
		}
		w.integrator.Advance(a, w.index, w.scratch)
		physics.ReflectBounds(&a.Kinetic, w.min, w.max)

		if physics.Arrived(a) {
			var c core.Collision = physics.Halt{}
			if a.Collision != nil {
				c = a.Collision
			}
			w.impacts = append(w.impacts, pendingImpact{agent: a, impact: c.Respond(a)})
		}
	}

	for i := range w.impacts {
		p := &w.impacts[i]
		w.statClashes.Add(1)
		if w.onClash != nil {
			w.onClash(p.agent, p.impact)
		}
		switch p.impact.Outcome {
		case core.OutcomeRemove:
			w.Remove(p.agent.ID)
		case core.OutcomeHalt:
			p.agent.Suspended = true
		}
		p.agent = nil
	}

	if w.env != nil {
		w.env.Step(w)
	}

	w.stepping = false
	w.flush()

	w.ticks++
	w.statTicks.Store(int64(w.ticks))
}
