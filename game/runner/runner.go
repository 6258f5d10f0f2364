package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wricardo/mazegame/game/engine"
)

// ErrAlreadyRunning is returned when Run is called twice
var ErrAlreadyRunning = errors.New("runner already running")

// TickFunc observes the result of one step
type TickFunc func(engine.TickResult)

// Option configures a Runner
type Option func(*Runner)

// WithInterval sets the ticker period used when no tick source is injected
func WithInterval(interval time.Duration) Option {
	return func(r *Runner) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithTickSource drives the loop from ticks instead of an internal ticker.
// Closing the channel ends Run.
func WithTickSource(ticks <-chan time.Time) Option {
	return func(r *Runner) {
		r.ticks = ticks
	}
}

// WithLogger replaces the standard logrus logger
func WithLogger(logger log.FieldLogger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner steps an engine on a schedule
type Runner struct {
	engine   *engine.Engine
	interval time.Duration
	ticks    <-chan time.Time
	logger   log.FieldLogger

	// steer holds at most the latest unapplied request
	steer    chan engine.Direction
	stop     chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	observers []TickFunc
	running   bool
}

// New creates a runner for an engine
func New(e *engine.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine:   e,
		interval: engine.DefaultTickIntervalMs * time.Millisecond,
		logger:   log.StandardLogger(),
		steer:    make(chan engine.Direction, 1),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine returns the driven engine. Only read it from an OnTick observer
// or after Run returns.
func (r *Runner) Engine() *engine.Engine {
	return r.engine
}

// Interval returns the ticker period
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// OnTick registers an observer called on the runner goroutine after every step
func (r *Runner) OnTick(fn TickFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Steer requests a new player direction. It never blocks; when several
// requests arrive within one tick the latest wins.
func (r *Runner) Steer(direction engine.Direction) {
	for {
		select {
		case r.steer <- direction:
			return
		default:
		}
		// drop the stale request and retry
		select {
		case <-r.steer:
		default:
		}
	}
}

// Stop asks Run to return. It is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

// Run starts the engine and steps it on every tick until the context is
// cancelled, Stop is called, the tick source closes or the game is over.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.running = true
	r.mu.Unlock()

	ticks := r.ticks
	if ticks == nil {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	r.engine.Start()
	r.logger.WithFields(log.Fields{
		"interval": r.interval,
		"ghosts":   r.engine.Maze().GhostCount(),
		"dots":     r.engine.Maze().DotsRemaining(),
	}).Info("runner started")

	for {
		select {
		case <-ctx.Done():
			r.engine.Stop()
			r.logger.WithField("tick", r.engine.Ticks()).Info("runner cancelled")
			return ctx.Err()

		case <-r.stop:
			r.engine.Stop()
			r.logger.WithField("tick", r.engine.Ticks()).Info("runner stopped")
			return nil

		case direction := <-r.steer:
			r.engine.Steer(direction)

		case _, ok := <-ticks:
			if !ok {
				r.engine.Stop()
				r.logger.WithField("tick", r.engine.Ticks()).Info("tick source closed")
				return nil
			}

			result := r.step()
			if result.State == engine.GameOver {
				r.logger.WithFields(log.Fields{
					"tick":  result.Tick,
					"score": result.Score.Score,
				}).Info("game over")
				return nil
			}
		}
	}
}

// step applies any pending steering, advances the engine and notifies observers
func (r *Runner) step() engine.TickResult {
	select {
	case direction := <-r.steer:
		r.engine.Steer(direction)
	default:
	}

	result := r.engine.Step()
	if result.Score.Changed() {
		r.logger.WithFields(log.Fields{
			"tick":      result.Tick,
			"collected": result.Score.Collected.String(),
			"score":     result.Score.Score,
		}).Debug("score changed")
	}

	r.mu.Lock()
	observers := append([]TickFunc(nil), r.observers...)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(result)
	}
	return result
}
