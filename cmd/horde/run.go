package main

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/arena"
	"github.com/lixenwraith/horde/audio"
	"github.com/lixenwraith/horde/config"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/registry"
	"github.com/lixenwraith/horde/render"
	"github.com/lixenwraith/horde/render/renderers"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

type options struct {
	configPath string
	agents     int
	speed      float64
	headless   bool
	frames     int
	mute       bool
}

// session is one scenario wired end to end
type session struct {
	cfg     *config.File
	stats   *status.Registry
	world   *engine.World
	spawner *engine.Spawner
	arena   *arena.Arena
	loop    *engine.Loop
	player  *audio.AlertPlayer
	logger  *log.Logger

	frames    atomic.Int64
	maxFrames int64
	statMuted *atomic.Bool
}

// hudKeys is the metric subset shown in the status strip
var hudKeys = []string{
	"loop.state", "loop.speed", "loop.level",
	"arena.wave", "arena.base_health", "arena.kills", "arena.towers",
	"world.agents", "audio.muted",
}

func loadScenario(path string) (*config.File, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newSession builds world, arena, audio and loop, a nil screen renders nothing
func newSession(opts options, screen tcell.Screen, logger *log.Logger) (*session, error) {
	cfg, err := loadScenario(opts.configPath)
	if err != nil {
		return nil, err
	}

	reg := registry.NewDefault()
	if err := cfg.Register(reg); err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		stats:     status.NewRegistry(),
		logger:    logger,
		maxFrames: int64(opts.frames),
	}
	s.statMuted = s.stats.Bools.Get("audio.muted")

	s.world = engine.NewWorld(cfg.World.Width, cfg.World.Height, s.stats, logger)
	s.spawner = engine.NewSpawner(reg, s.world, cfg.World.Seed)
	s.arena = arena.New(cfg.Arena, s.world, s.spawner, cfg.World.Seed, s.stats, logger)
	if err := s.spawnExtra(opts.agents); err != nil {
		return nil, err
	}

	var draw func()
	if screen != nil {
		min, max := s.world.Bounds()
		orch := render.NewRenderOrchestrator(screen, min, max)
		orch.Register(renderers.NewFieldRenderer(s.arena), render.PriorityBackground)
		orch.Register(renderers.NewTowerRenderer(s.arena), render.PriorityStructures)
		orch.Register(renderers.NewAgentRenderer(s.world), render.PriorityAgents)
		orch.Register(renderers.NewProjectileRenderer(s.arena), render.PriorityProjectiles)
		orch.Register(renderers.NewHudRenderer(s.stats, hudKeys...), render.PriorityUI)
		draw = orch.Render
	}
	s.loop = engine.NewLoop(s.world, engine.RenderFunc(func() { s.render(draw) }), engine.NewTimeProvider(), s.stats, logger)
	s.loop.SetSpeed(cfg.Loop.Speed)
	if opts.speed > 0 {
		s.loop.SetSpeed(opts.speed)
	}

	s.player = audio.NewAlertPlayer(audio.LoadAudioConfig(), logger)
	if opts.mute {
		s.player.SetMuted(true)
	} else if err := s.player.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silent", "err", err)
	}
	s.statMuted.Store(s.player.IsMuted())

	s.loop.OnWarning(func(level int) {
		s.player.Play(audio.SoundAlert)
	})
	s.arena.OnWave(func(int) {
		s.player.Play(audio.SoundWave)
	})
	s.arena.OnGameOver(func() {
		s.player.Play(audio.SoundGameOver)
		s.loop.End()
	})
	return s, nil
}

// render counts frames and ends the loop once the frame budget is spent
func (s *session) render(draw func()) {
	if draw != nil {
		draw()
	}
	n := s.frames.Add(1)
	if s.maxFrames > 0 && n >= s.maxFrames {
		s.loop.End()
	}
}

// spawnExtra scatters n monsters over the left third of the field, all headed for the base
func (s *session) spawnExtra(n int) error {
	profiles := s.cfg.Arena.Waves.Profiles
	if n <= 0 || len(profiles) == 0 {
		return nil
	}
	rng := vmath.NewFastRand(uint64(s.cfg.World.Seed) + 1)
	min, max := s.world.Bounds()
	for i := 0; i < n; i++ {
		pos := vmath.V2(
			rng.Range(min.X, min.X+(max.X-min.X)/3),
			rng.Range(min.Y, max.Y),
		)
		if _, err := s.spawner.Spawn(profiles[i%len(profiles)], pos, s.arena.Base()); err != nil {
			return err
		}
	}
	return nil
}

// run drives the loop until quit, game over, the frame budget or ctx cancellation
func (s *session) run(ctx context.Context) error {
	interval := time.Duration(s.cfg.Loop.FrameIntervalMs) * time.Millisecond
	err := s.loop.Run(ctx, engine.NewTickerFrames(interval))
	s.player.Cleanup()

	s.logger.Info("session over", s.stats.KeyVals()...)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger := log.Default()

	if opts.headless {
		s, err := newSession(opts, nil, logger)
		if err != nil {
			return err
		}
		return s.run(ctx)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	s, err := newSession(opts, screen, logger)
	if err != nil {
		return err
	}
	core.Go(func() { s.pollInput(screen) })
	return s.run(ctx)
}
