package analytics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder counts events in a private Prometheus registry.
type MetricsRecorder struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
}

// NewMetricsRecorder creates the recorder and registers its collectors.
func NewMetricsRecorder() *MetricsRecorder {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sixteen",
		Name:      "events_total",
		Help:      "Quiz observability events by name and personality type.",
	}, []string{"event", "type"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(events)

	return &MetricsRecorder{registry: reg, events: events}
}

func (m *MetricsRecorder) Name() string { return "metrics" }

func (m *MetricsRecorder) Record(_ context.Context, e Event) error {
	m.events.WithLabelValues(string(e.Name), e.ResultType).Inc()
	return nil
}

// Gatherer exposes the registry for scraping or inspection.
func (m *MetricsRecorder) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the current counters in the node exporter
// textfile-collector format.
func (m *MetricsRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
