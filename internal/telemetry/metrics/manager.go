package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterRoutinesCreated     prometheus.Counter
	CounterRoutinesDeleted     prometheus.Counter
	CounterCompletionsLogged   prometheus.Counter
	CounterPersistenceErrors   prometheus.Counter

	// gauges
	GaugeRequests        prometheus.Gauge
	GaugeOpenConnections prometheus.Gauge
	GaugeLifeSignal      prometheus.Gauge

	// histograms
	HistRequestDuration       prometheus.Histogram
	HistCompletionDurationMin prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("physio", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("physio", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterRoutinesCreated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "routines_created",
		Help:      "The total number of created routines",
	})
	counterRoutinesDeleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "routines_deleted",
		Help:      "The total number of deleted routines",
	})
	counterCompletionsLogged := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completions_logged",
		Help:      "The total number of logged routine completions",
	})
	counterPersistenceErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persistence_errors",
		Help:      "The total number of failed document writes",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeOpenConnections := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "open_connections",
		Help:      "Current number of open client connections",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histRequestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})
	histCompletionDurationMin := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completion_duration_minutes",
		Help:      "Duration of completed routines in minutes",
		Buckets:   []float64{1, 5, 10, 15, 20, 30, 45, 60, 90, 120},
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterRoutinesCreated:     counterRoutinesCreated,
		CounterRoutinesDeleted:     counterRoutinesDeleted,
		CounterCompletionsLogged:   counterCompletionsLogged,
		CounterPersistenceErrors:   counterPersistenceErrors,
		GaugeRequests:              gaugeRequests,
		GaugeOpenConnections:       gaugeOpenConnections,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistRequestDuration:        histRequestDuration,
		HistCompletionDurationMin:  histCompletionDurationMin,
	}
}
