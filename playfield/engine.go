package playfield

import (
	"github.com/plus3/pixecs/ecs"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Engine owns the entity manager and the per-tick system order:
// input, movement, clear, render.
type Engine struct {
	cfg       Config
	screen    Screen
	manager   *ecs.Manager
	scheduler *ecs.Scheduler[*Frame]
	player    ecs.Entity
	ticks     uint64
	logger    zerolog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger shared by the engine and its manager.
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine validates cfg, creates the entities in layout and registers the
// systems. The first entity tagged player receives input.
func NewEngine(cfg Config, layout []EntitySpec, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		screen: cfg.Screen(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.manager = ecs.NewManager(ecs.WithLogger(e.logger))
	for _, spec := range layout {
		Spawn(e.manager, spec)
	}

	player, ok := e.manager.FindTagged(ecs.TagPlayer)
	if !ok {
		return nil, eris.Wrapf(ErrNoPlayer, "%d entities spawned", len(layout))
	}
	e.player = player

	e.scheduler = ecs.NewScheduler[*Frame]()
	e.scheduler.Register(&InputSystem{
		Player:     player,
		Speed:      cfg.PlayerSpeed,
		BoostSpeed: cfg.PlayerBoostSpeed,
	})
	e.scheduler.Register(&MovementSystem{})
	e.scheduler.Register(&ClearSystem{Color: cfg.Background})
	e.scheduler.Register(&RenderSystem{})

	e.logger.Info().
		Int("entities", e.manager.Len()).
		Uint64("player", uint64(player)).
		Int("width", e.screen.Width).
		Int("height", e.screen.Height).
		Msg("playfield ready")

	return e, nil
}

// Tick runs one full frame against the key snapshot and writes it into buffer.
// It never blocks; the caller paces ticks at Config.TickInterval.
func (e *Engine) Tick(keys KeyState, buffer []uint32) error {
	if len(buffer) != e.screen.Len() {
		return eris.Wrapf(ErrBufferSize, "got %d pixels, want %d", len(buffer), e.screen.Len())
	}
	if keys == nil {
		keys = NoKeys
	}

	e.ticks++
	frame := &Frame{
		Tick:    e.ticks,
		Screen:  e.screen,
		Manager: e.manager,
		Keys:    keys,
		Buffer:  buffer,
	}
	return e.scheduler.Once(frame)
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Screen() Screen {
	return e.screen
}

func (e *Engine) Manager() *ecs.Manager {
	return e.manager
}

func (e *Engine) Player() ecs.Entity {
	return e.player
}

// Ticks returns how many ticks have started.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Stats returns per-system execution statistics.
func (e *Engine) Stats() *ecs.SchedulerStats {
	return e.scheduler.GetStats()
}
