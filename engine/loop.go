// Package engine drives the simulation at a fixed tick rate.
//
// Each tick drains the pending intents, steps the simulation once, hands a
// snapshot to the presenter and then sleeps for whatever is left of the tick
// period. A slow tick is never caught up: the next tick simply starts late.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"snake-term/config"
	"snake-term/game/types"
)

// ErrRender wraps presenter failures.
var ErrRender = errors.New("render failed")

// Presenter renders one full frame per tick.
type Presenter interface {
	Render(snapshot types.Snapshot) error
}

// Simulation is the state machine advanced by the loop.
type Simulation interface {
	Step(intents []types.Intent) types.Outcome
	Snapshot() types.Snapshot
	Score() int
	Ticks() uint64
}

// IntentSource hands over everything queued since the previous call.
type IntentSource interface {
	DrainAll() []types.Intent
}

// Reason tells why a game ended.
type Reason string

const (
	ReasonQuit Reason = "quit"
	ReasonLost Reason = "lost"
)

// Result summarises a finished game.
type Result struct {
	Reason  Reason
	Score   int
	Ticks   uint64
	Elapsed time.Duration
}

type Loop struct {
	sim       Simulation
	intents   IntentSource
	presenter Presenter
	period    time.Duration
	clock     Clock
	metrics   *Metrics
	logger    *slog.Logger
	failures  <-chan error
}

// Option customises a Loop.
type Option func(*Loop)

func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

func WithMetrics(m *Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithFailures makes the loop stop with an error as soon as a value arrives
// on failures. Input capture reports its fatal errors this way.
func WithFailures(failures <-chan error) Option {
	return func(l *Loop) { l.failures = failures }
}

func New(cfg config.Config, sim Simulation, intents IntentSource, presenter Presenter, opts ...Option) *Loop {
	l := &Loop{
		sim:       sim,
		intents:   intents,
		presenter: presenter,
		period:    cfg.TickPeriod(),
		clock:     RealClock{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

// Run ticks until a quit intent is drained, the simulation reports a loss,
// ctx is cancelled, or an I/O failure occurs. Cancellation counts as a quit.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	start := l.clock.Now()
	result := func(reason Reason) Result {
		return Result{
			Reason:  reason,
			Score:   l.sim.Score(),
			Ticks:   l.sim.Ticks(),
			Elapsed: l.clock.Now().Sub(start),
		}
	}

	for {
		tickStart := l.clock.Now()

		select {
		case err := <-l.failures:
			return result(ReasonQuit), fmt.Errorf("input capture: %w", err)
		case <-ctx.Done():
			return l.finish(result(ReasonQuit)), nil
		default:
		}

		intents := l.intents.DrainAll()
		if hasQuit(intents) {
			return l.finish(result(ReasonQuit)), nil
		}

		outcome := l.sim.Step(intents)
		if err := l.presenter.Render(l.sim.Snapshot()); err != nil {
			l.logger.Error("render failed", "tick", l.sim.Ticks(), "error", err)
			return result(ReasonQuit), fmt.Errorf("%w: %w", ErrRender, err)
		}

		elapsed := l.clock.Now().Sub(tickStart)
		l.metrics.observeTick(elapsed, outcome, l.sim.Score())

		if outcome == types.Lost {
			return l.finish(result(ReasonLost)), nil
		}

		if elapsed < l.period {
			l.clock.Sleep(ctx, l.period-elapsed)
		} else {
			l.metrics.observeOverrun()
			l.logger.Debug("tick overran", "tick", l.sim.Ticks(), "elapsed", elapsed, "period", l.period)
		}
	}
}

func (l *Loop) finish(r Result) Result {
	l.logger.Info("game over",
		"reason", r.Reason,
		"score", r.Score,
		"ticks", r.Ticks,
		"elapsed", r.Elapsed,
	)
	return r
}

func hasQuit(intents []types.Intent) bool {
	for _, intent := range intents {
		if intent.Kind == types.IntentQuit {
			return true
		}
	}
	return false
}
