package analytics

import "github.com/prometheus/client_golang/prometheus"

// metrics mirrors the persisted counters into a Prometheus counter
// vector for scraping-based observability stacks.
type metrics struct {
	events *prometheus.CounterVec
}

// WithPrometheus registers a notification event counter vector with the
// given registerer. The vector is labeled by event name (sent, failed,
// clicked, dismissed, retried).
func WithPrometheus(reg prometheus.Registerer, namespace string) RecorderOption {
	return func(r *Recorder) {
		if reg == nil {
			return
		}
		m := &metrics{
			events: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "notifications",
				Name:      "events_total",
				Help:      "Notification delivery events by outcome.",
			}, []string{"event"}),
		}
		reg.MustRegister(m.events)
		r.metrics = m
	}
}

func (m *metrics) inc(event string) {
	m.events.WithLabelValues(event).Inc()
}
