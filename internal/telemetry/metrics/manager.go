package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests              *prometheus.CounterVec
	CounterHandleRequestPanic    prometheus.Counter
	CounterRateLimitedRequests   prometheus.Counter
	CounterWorkoutsStarted       prometheus.Counter
	CounterWorkoutsFinished      prometheus.Counter
	CounterWorkoutsDiscarded     prometheus.Counter
	CounterStorageWriteFailures  prometheus.Counter
	CounterStorageReadRecoveries prometheus.Counter

	// gauges
	GaugeRequests             prometheus.Gauge
	GaugeLifeSignal           prometheus.Gauge
	GaugeActiveWorkoutElapsed prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramWorkoutDuration prometheus.Histogram
	HistogramWorkoutVolume   prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
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
	counterWorkoutsStarted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_started",
		Help:      "The total number of started workouts",
	})
	counterWorkoutsFinished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_finished",
		Help:      "The total number of finished and saved workouts",
	})
	counterWorkoutsDiscarded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_discarded",
		Help:      "The total number of discarded workouts",
	})
	counterStorageWriteFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "storage_write_failures",
		Help:      "The total number of failed workout history writes",
	})
	counterStorageReadRecoveries := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "storage_read_recoveries",
		Help:      "The total number of history reads that failed and fell back to an empty list",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeActiveWorkoutElapsed := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_workout_elapsed_seconds",
		Help:      "Elapsed time of the active workout, 0 when idle",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramWorkoutDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_duration_seconds",
		Help:      "Duration of finished workouts in seconds",
		Buckets: []float64{
			300, 600, 1200, 1800, 2700,
			3600, 5400, 7200, 10800,
		},
	})
	histogramWorkoutVolume := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_volume",
		Help:      "Total volume (weight x reps) of finished workouts",
		Buckets:   prometheus.ExponentialBuckets(500, 2, 8),
	})

	return &Manager{
		CounterRequests:              counterRequests,
		CounterHandleRequestPanic:    counterHandleRequestPanic,
		CounterRateLimitedRequests:   counterRateLimitedRequests,
		CounterWorkoutsStarted:       counterWorkoutsStarted,
		CounterWorkoutsFinished:      counterWorkoutsFinished,
		CounterWorkoutsDiscarded:     counterWorkoutsDiscarded,
		CounterStorageWriteFailures:  counterStorageWriteFailures,
		CounterStorageReadRecoveries: counterStorageReadRecoveries,
		GaugeRequests:                gaugeRequests,
		GaugeLifeSignal:              gaugeLifeSignal,
		GaugeActiveWorkoutElapsed:    gaugeActiveWorkoutElapsed,
		HistogramRequestDuration:     histogramRequestDuration,
		HistogramWorkoutDuration:     histogramWorkoutDuration,
		HistogramWorkoutVolume:       histogramWorkoutVolume,
	}
}
