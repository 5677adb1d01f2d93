package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"snake-term/game/types"
)

const metricsNamespace = "snake"

// Metrics instruments the game loop. A nil *Metrics records nothing.
type Metrics struct {
	// TicksTotal counts ticks by outcome (continued, grew, lost).
	TicksTotal *prometheus.CounterVec

	// TickDurationSeconds measures the busy part of a tick, before sleeping.
	TickDurationSeconds prometheus.Histogram

	// TickOverrunsTotal counts ticks whose work exceeded the tick period.
	TickOverrunsTotal prometheus.Counter

	// Score is the current snake length.
	Score prometheus.Gauge
}

// NewMetrics registers the loop metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TicksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "loop",
			Name:      "ticks_total",
			Help:      "Simulation ticks by outcome",
		}, []string{"outcome"}),
		TickDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "loop",
			Name:      "tick_duration_seconds",
			Help:      "Time spent draining, stepping and rendering one tick",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.2, 0.5},
		}),
		TickOverrunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "loop",
			Name:      "tick_overruns_total",
			Help:      "Ticks whose work took at least the whole tick period",
		}),
		Score: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "game",
			Name:      "score",
			Help:      "Current snake length",
		}),
	}
}

// QueueStats is implemented by the intent queue.
type QueueStats interface {
	Dropped() uint64
	Len() int
}

// RegisterQueue exposes the queue's drop counter and depth.
func RegisterQueue(reg prometheus.Registerer, q QueueStats) {
	factory := promauto.With(reg)
	factory.NewCounterFunc(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "input",
		Name:      "intents_dropped_total",
		Help:      "Intents discarded because the queue was full",
	}, func() float64 { return float64(q.Dropped()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "input",
		Name:      "queue_depth",
		Help:      "Intents waiting for the next tick",
	}, func() float64 { return float64(q.Len()) })
}

func (m *Metrics) observeTick(elapsed time.Duration, outcome types.Outcome, score int) {
	if m == nil {
		return
	}
	m.TicksTotal.WithLabelValues(outcome.String()).Inc()
	m.TickDurationSeconds.Observe(elapsed.Seconds())
	m.Score.Set(float64(score))
}

func (m *Metrics) observeOverrun() {
	if m == nil {
		return
	}
	m.TickOverrunsTotal.Inc()
}
