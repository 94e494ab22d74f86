package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// http
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	GaugeRequests              prometheus.Gauge
	GaugeLifeSignal            prometheus.Gauge
	HistogramRequestDuration   *prometheus.HistogramVec

	// workout
	CounterSessionsInstantiated *prometheus.CounterVec
	CounterSetsToggled          prometheus.Counter
	CounterSessionsCompleted    prometheus.Counter
	CounterTemplatesCreated     prometheus.Counter
	CounterTemplatesDeleted     prometheus.Counter
	HistogramSessionRating      prometheus.Histogram

	// adherence
	CounterStreakCacheHits        prometheus.Counter
	CounterStreakCacheMisses      prometheus.Counter
	CounterNutritionFetchFailures prometheus.Counter
}

func NewTestManager() *Manager {
	return NewManager("fittrack", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fittrack", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic:  counter("handle_request_panic", "The total number of serve request panics"),
		CounterRateLimitedRequests: counter("rate_limited_requests", "The total number of rate limited requests"),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeLifeSignal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
			Help:      "Shows whether the service is alive",
		}),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),

		CounterSessionsInstantiated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_instantiated",
			Help:      "The total number of sessions created, by source",
		}, []string{"source"}),
		CounterSetsToggled:       counter("sets_toggled", "The total number of set completion updates"),
		CounterSessionsCompleted: counter("sessions_completed", "The total number of completed sessions"),
		CounterTemplatesCreated:  counter("templates_created", "The total number of created templates"),
		CounterTemplatesDeleted:  counter("templates_deleted", "The total number of deleted templates"),
		HistogramSessionRating: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "session_rating",
			Help:      "Ratings given on session completion",
			Buckets:   []float64{1, 2, 3, 4, 5},
		}),

		CounterStreakCacheHits:        counter("streak_cache_hits", "Streak lookups served from cache"),
		CounterStreakCacheMisses:      counter("streak_cache_misses", "Streak lookups that had to be computed"),
		CounterNutritionFetchFailures: counter("nutrition_day_fetch_failures", "Nutrition days zero-filled after a failed fetch"),
	}
}
