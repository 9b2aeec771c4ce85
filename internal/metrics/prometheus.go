package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type Metrics struct {
	registry     *prometheus.Registry
	computations *prometheus.CounterVec
	degenerate   *prometheus.CounterVec
	invalid      prometheus.Counter
}

func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greatcircle_computations_total",
			Help: "The total number of great-circle computations",
		}, []string{"operation"}),
		degenerate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greatcircle_degenerate_inputs_total",
			Help: "The total number of point pairs without a unique great circle",
		}, []string{"kind"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "greatcircle_invalid_points_total",
			Help: "The total number of points with a latitude outside [-90, 90]",
		}),
	}
	metrics.register()
	return metrics
}

func (m *Metrics) register() {
	m.registry.MustRegister(m.computations, m.degenerate, m.invalid)
}

func (m *Metrics) IncrementComputations(operation string) {
	m.computations.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementDegenerate(kind string) {
	m.degenerate.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementInvalidPoints() {
	m.invalid.Inc()
}

// WriteText writes every collected metric in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
