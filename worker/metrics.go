package worker

import (
	"github.com/battlesnakeio/placman/rules"
	"github.com/battlesnakeio/placman/strip"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentRenderer wraps a renderer to time its calls.
func InstrumentRenderer(name string, r strip.Renderer) strip.Renderer {
	return &metrics{name: name, r: r}
}

var (
	renderCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "placman",
			Subsystem: "worker",
			Name:      "render_seconds",
			Help:      "Time spent pushing a frame to a renderer.",
		},
		[]string{"renderer"},
	)
	tickCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placman",
			Subsystem: "worker",
			Name:      "ticks_total",
			Help:      "Ticks run, by mode and status after the tick.",
		},
		[]string{"mode", "status"},
	)
	captureCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "placman",
			Subsystem: "worker",
			Name:      "cherries_total",
			Help:      "Cherries eaten by the snake.",
		},
	)
	lossCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placman",
			Subsystem: "worker",
			Name:      "losses_total",
			Help:      "Games lost, by cause.",
		},
		[]string{"cause"},
	)
	resetCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "placman",
			Subsystem: "worker",
			Name:      "resets_total",
			Help:      "Snake resets after a loss flash.",
		},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "placman",
			Subsystem: "worker",
			Name:      "snake_length",
			Help:      "Current length of the snake.",
		},
	)
)

func init() {
	prometheus.MustRegister(renderCalls, tickCount, captureCount, lossCount, resetCount, snakeLength)
}

func observeTick(gs *rules.GameState) {
	tickCount.WithLabelValues(string(gs.Mode.Name()), string(rules.StatusOf(gs))).Inc()
	snakeLength.Set(float64(gs.Snake.Length))
	r := gs.Report
	if r.Captured {
		captureCount.Inc()
	}
	if r.Loss != "" {
		lossCount.WithLabelValues(string(r.Loss)).Inc()
	}
	if r.Reset {
		resetCount.Inc()
	}
}

type metrics struct {
	name string
	r    strip.Renderer
}

func (m *metrics) Render(f *strip.Frame) error {
	t := prometheus.NewTimer(renderCalls.WithLabelValues(m.name))
	defer t.ObserveDuration()
	return m.r.Render(f)
}
