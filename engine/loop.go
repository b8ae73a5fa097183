package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/status"
)

// State is the governor lifecycle state
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Simulation advances the whole population by one fixed tick
type Simulation interface {
	Step()
}

// SimulationFunc adapts a function to Simulation
type SimulationFunc func()

func (f SimulationFunc) Step() { f() }

// Renderer draws the current state once per frame after all ticks
type Renderer interface {
	Render()
}

// RenderFunc adapts a function to Renderer
type RenderFunc func()

func (f RenderFunc) Render() { f() }

// Command is a control request delivered to a running loop from another goroutine
type Command uint8

const (
	CmdTogglePause Command = iota
	CmdRequestRender
	CmdSpeedUp
	CmdSpeedDown
	CmdEnd
)

// LoopGuard is the overload/recovery hysteresis
// Degradation moves one level per trigger and stays within [0, MaxDegradation]
type LoopGuard struct {
	ConsecutiveOverload int
	OverloadThreshold   int
	ConsecutiveNormal   int
	RecoveryThreshold   int
	DegradationLevel    int
	MaxDegradation      int
	LastWarningTime     time.Time
	WarningCooldown     time.Duration
}

func NewLoopGuard() LoopGuard {
	return LoopGuard{
		OverloadThreshold: parameter.OverloadThreshold,
		RecoveryThreshold: parameter.RecoveryThreshold,
		MaxDegradation:    parameter.MaxDegradation,
		WarningCooldown:   parameter.WarningCooldown,
	}
}

// Observe feeds one frame outcome into the hysteresis
// Returns the level change (-1, 0, +1) and whether a degradation warning is due
func (g *LoopGuard) Observe(overloaded bool, now time.Time) (change int, warn bool) {
	if overloaded {
		g.ConsecutiveOverload++
		g.ConsecutiveNormal = 0
		if g.ConsecutiveOverload >= g.OverloadThreshold && g.DegradationLevel < g.MaxDegradation {
			g.DegradationLevel++
			g.ConsecutiveOverload = 0
			if g.LastWarningTime.IsZero() || now.Sub(g.LastWarningTime) >= g.WarningCooldown {
				g.LastWarningTime = now
				warn = true
			}
			return 1, warn
		}
		return 0, false
	}

	g.ConsecutiveNormal++
	g.ConsecutiveOverload = 0
	if g.ConsecutiveNormal >= g.RecoveryThreshold && g.DegradationLevel > 0 {
		g.DegradationLevel--
		g.ConsecutiveNormal = 0
		return -1, false
	}
	return 0, false
}

// ResetWindow starts a fresh hysteresis window, the level is kept
func (g *LoopGuard) ResetWindow() {
	g.ConsecutiveOverload = 0
	g.ConsecutiveNormal = 0
}

// FrameReport describes what one host frame did
type FrameReport struct {
	State      State
	Delta      time.Duration
	StepMs     float64
	Steps      int
	MaxSteps   int
	Overloaded bool
	Level      int
	Degraded   bool
	Recovered  bool
	Warned     bool
	Rendered   bool
}

// Loop is the fixed-timestep governor
// Frame and the state methods belong to the goroutine driving the loop, other goroutines use Send
type Loop struct {
	sim      Simulation
	renderer Renderer
	clock    Clock
	logger   *log.Logger

	state         State
	guard         LoopGuard
	accumulator   float64 // ms
	lastFrame     time.Time
	speed         float64
	renderPending bool

	commands  chan Command
	done      chan struct{}
	onWarning func(level int)

	statFrames   *atomic.Int64
	statTicks    *atomic.Int64
	statSteps    *atomic.Int64
	statLevel    *atomic.Int64
	statOverload *atomic.Int64
	statStepMs   *status.AtomicFloat
	statPeakMs   *status.AtomicFloat
	statSpeed    *status.AtomicFloat
	statState    *status.AtomicString
}

// NewLoop creates a running governor at speed 1, nil logger means log.Default
func NewLoop(sim Simulation, renderer Renderer, clock Clock, reg *status.Registry, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	l := &Loop{
		sim:          sim,
		renderer:     renderer,
		clock:        clock,
		logger:       logger.WithPrefix("loop"),
		guard:        NewLoopGuard(),
		speed:        1,
		commands:     make(chan Command, 16),
		done:         make(chan struct{}),
		statFrames:   reg.Ints.Get("loop.frames"),
		statTicks:    reg.Ints.Get("loop.ticks"),
		statSteps:    reg.Ints.Get("loop.steps"),
		statLevel:    reg.Ints.Get("loop.level"),
		statOverload: reg.Ints.Get("loop.overload_frames"),
		statStepMs:   reg.Floats.Get("loop.step_ms"),
		statPeakMs:   reg.Floats.Get("loop.peak_delta_ms"),
		statSpeed:    reg.Floats.Get("loop.speed"),
		statState:    reg.Strings.Get("loop.state"),
	}
	l.statSpeed.Store(l.speed)
	l.statState.Store(l.state.String())
	return l
}

// OnWarning registers a callback for rate-limited degradation warnings
func (l *Loop) OnWarning(fn func(level int)) {
	l.onWarning = fn
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Guard() LoopGuard { return l.guard }

func (l *Loop) Speed() float64 { return l.speed }

// Done is closed when Run returns
func (l *Loop) Done() <-chan struct{} { return l.done }

// Start anchors frame timing at now
func (l *Loop) Start(now time.Time) {
	l.lastFrame = now
	l.accumulator = 0
}

// Frame runs one host frame: ticks as many fixed steps as time allows, then renders
func (l *Loop) Frame(now time.Time) FrameReport {
	switch l.state {
	case StateEnded:
		return FrameReport{State: StateEnded, Level: l.guard.DegradationLevel}

	case StatePaused:
		r := FrameReport{State: StatePaused, Level: l.guard.DegradationLevel}
		if l.renderPending {
			l.renderPending = false
			l.renderer.Render()
			r.Rendered = true
		}
		l.accumulator = 0
		l.lastFrame = now
		return r
	}

	if l.lastFrame.IsZero() {
		l.lastFrame = now
	}
	delta := now.Sub(l.lastFrame)
	if delta > parameter.MaxFrameDelta {
		delta = parameter.MaxFrameDelta
	} else if delta < 0 {
		delta = 0
	}
	l.lastFrame = now

	prof := parameter.DegradationTable[l.guard.DegradationLevel]
	step := parameter.BaseStepMs / math.Max(parameter.MinSpeedMultiplier, l.speed) * prof.StepMultiplier
	maxSteps := int(math.Floor(parameter.BaseMaxSteps * math.Max(1, l.speed) * prof.MaxStepsMultiplier))
	if maxSteps < parameter.MinMaxSteps {
		maxSteps = parameter.MinMaxSteps
	}

	deltaMs := float64(delta) / float64(time.Millisecond)
	l.accumulator += deltaMs
	l.statPeakMs.StoreMax(deltaMs)

	r := FrameReport{Delta: delta, StepMs: step, MaxSteps: maxSteps}
	for l.accumulator >= step && r.Steps < maxSteps {
		l.sim.Step()
		l.accumulator -= step
		r.Steps++
		if l.state == StateEnded {
			break
		}
	}

	l.statFrames.Add(1)
	l.statTicks.Add(int64(r.Steps))
	l.statSteps.Store(int64(r.Steps))
	l.statStepMs.Store(step)

	if l.state == StateEnded {
		r.State = StateEnded
		r.Level = l.guard.DegradationLevel
		return r
	}

	r.Overloaded = r.Steps == maxSteps
	if r.Overloaded {
		// Drop the backlog instead of chasing it
		l.accumulator = 0
		l.statOverload.Add(1)
	}

	change, warn := l.guard.Observe(r.Overloaded, now)
	switch change {
	case 1:
		r.Degraded = true
		if warn {
			r.Warned = true
			l.logger.Warn("simulation overloaded, degrading",
				"level", l.guard.DegradationLevel, "max_steps", maxSteps, "step_ms", step)
			if l.onWarning != nil {
				l.onWarning(l.guard.DegradationLevel)
			}
		}
	case -1:
		r.Recovered = true
		l.logger.Info("simulation recovered", "level", l.guard.DegradationLevel)
	}
	r.Level = l.guard.DegradationLevel
	l.statLevel.Store(int64(r.Level))

	l.renderPending = false
	l.renderer.Render()
	r.Rendered = true
	return r
}

func (l *Loop) setState(s State) {
	l.state = s
	l.statState.Store(s.String())
}

// Pause stops tick issuance, state is kept for resume
func (l *Loop) Pause() {
	if l.state == StateRunning {
		l.setState(StatePaused)
		l.logger.Debug("paused")
	}
}

// Resume restarts ticking from now with a fresh hysteresis window, the degradation level persists
func (l *Loop) Resume(now time.Time) {
	if l.state != StatePaused {
		return
	}
	l.setState(StateRunning)
	l.guard.ResetWindow()
	l.accumulator = 0
	l.lastFrame = now
	l.logger.Debug("resumed", "level", l.guard.DegradationLevel)
}

func (l *Loop) TogglePause() {
	switch l.state {
	case StateRunning:
		l.Pause()
	case StatePaused:
		l.Resume(l.clock.Now())
	}
}

// RequestRender asks for one render while paused, e.g. after the camera moved
func (l *Loop) RequestRender() {
	l.renderPending = true
}

// SetSpeed changes the simulation speed multiplier, non-positive values are ignored
func (l *Loop) SetSpeed(m float64) {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return
	}
	l.speed = m
	l.statSpeed.Store(m)
}

// End is terminal: no further ticks or renders, Run returns
func (l *Loop) End() {
	if l.state == StateEnded {
		return
	}
	l.setState(StateEnded)
	l.logger.Info("ended", "level", l.guard.DegradationLevel)
}

// Send queues a command for the goroutine running Run, safe from any goroutine
// Commands sent after Run returned are dropped
func (l *Loop) Send(cmd Command) {
	select {
	case l.commands <- cmd:
	case <-l.done:
	}
}

func (l *Loop) apply(cmd Command) {
	switch cmd {
	case CmdTogglePause:
		l.TogglePause()
	case CmdRequestRender:
		l.RequestRender()
	case CmdSpeedUp:
		l.SetSpeed(math.Min(parameter.MaxSpeedMultiplier, l.speed*parameter.SpeedStep))
	case CmdSpeedDown:
		l.SetSpeed(math.Max(parameter.MinSpeedMultiplier, l.speed/parameter.SpeedStep))
	case CmdEnd:
		l.End()
	}
}

// Run drives the loop from frames until End or ctx cancellation, then stops the frame source
// Run may be called once
func (l *Loop) Run(ctx context.Context, frames FrameSource) error {
	defer close(l.done)
	defer frames.Stop()

	l.Start(l.clock.Now())
	for l.state != StateEnded {
		select {
		case <-ctx.Done():
			l.End()
			return ctx.Err()
		case cmd := <-l.commands:
			l.apply(cmd)
		case <-frames.Frames():
			l.Frame(l.clock.Now())
		}
	}
	return nil
}
