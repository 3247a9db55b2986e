// Package metrics exports presentation lifecycle events as prometheus
// metrics.
//
// A Collector is a presentation.Observer and a prometheus.Collector at once:
//
//	m := metrics.New("app")
//	prometheus.MustRegister(m)
//	c := presentation.New(sched, host, presentation.WithObserver(m))
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/go-drift/transit/pkg/presentation"
)

const subsystem = "transition"

// Collector counts sessions, outcomes and vetoes, and records how long
// sessions last.
type Collector struct {
	started  *prometheus.CounterVec
	ended    *prometheus.CounterVec
	vetoed   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	active   prometheus.Gauge
}

// New creates a Collector whose metric names are prefixed with namespace.
func New(namespace string) *Collector {
	return &Collector{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_started_total",
			Help:      "Transition sessions started.",
		}, []string{"kind", "direction", "interactive"}),
		ended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_ended_total",
			Help:      "Transition sessions ended, by outcome.",
		}, []string{"kind", "direction", "outcome"}),
		vetoed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dismissals_vetoed_total",
			Help:      "Committed dismissals the host refused.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "session_duration_seconds",
			Help:      "Time from session start to its end.",
			Buckets:   []float64{0.05, 0.1, 0.2, 0.35, 0.5, 0.75, 1, 2, 5},
		}, []string{"kind", "direction", "interactive"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_active",
			Help:      "Sessions currently in flight.",
		}),
	}
}

// TransitionEvent implements presentation.Observer.
func (c *Collector) TransitionEvent(e presentation.Event) {
	kind := e.Kind.String()
	direction := e.Direction.String()
	interactive := boolLabel(e.Interactive)
	switch e.Phase {
	case presentation.EventBegan:
		c.started.WithLabelValues(kind, direction, interactive).Inc()
		c.active.Inc()
	case presentation.EventEnded:
		c.ended.WithLabelValues(kind, direction, e.Outcome.String()).Inc()
		c.duration.WithLabelValues(kind, direction, interactive).Observe(e.Elapsed.Seconds())
		c.active.Dec()
	case presentation.EventVetoed:
		c.vetoed.WithLabelValues(kind).Inc()
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.started.Describe(ch)
	c.ended.Describe(ch)
	c.vetoed.Describe(ch)
	c.duration.Describe(ch)
	c.active.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.started.Collect(ch)
	c.ended.Collect(ch)
	c.vetoed.Collect(ch)
	c.duration.Collect(ch)
	c.active.Collect(ch)
}

// WriteText gathers g and writes it in the prometheus text exposition
// format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

var (
	_ presentation.Observer = (*Collector)(nil)
	_ prometheus.Collector  = (*Collector)(nil)
)
