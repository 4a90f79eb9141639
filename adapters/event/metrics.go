package event

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	notified *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	notified, err := registerCounter(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_notified_total",
		Help: "Number of events passed to Notify, by event name.",
	}, []string{"event"}))
	if err != nil {
		return nil, err
	}

	failures, err := registerCounter(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "event_handler_failures_total",
		Help: "Number of handler errors returned during Notify, by event name.",
	}, []string{"event"}))
	if err != nil {
		return nil, err
	}

	return &metrics{notified: notified, failures: failures}, nil
}

// registerCounter lets several dispatchers share one registry.
func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}

		return nil, err
	}

	return c, nil
}

func (m *metrics) observeNotify(name string) {
	if m == nil {
		return
	}
	m.notified.WithLabelValues(name).Inc()
}

func (m *metrics) observeFailure(name string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(name).Inc()
}
