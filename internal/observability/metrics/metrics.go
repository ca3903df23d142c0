package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"

	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (o Outcome) String() string {
	return string(o)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	ledgerOperationCounter       *prometheus.CounterVec
	ledgerOperationDuration      *prometheus.HistogramVec
	eventsEmittedCounter         *prometheus.CounterVec
	eventPublishErrorCounter     prometheus.Counter
	outboxUnpublishedGauge       prometheus.Gauge
	dbLatency                    *prometheus.HistogramVec
	httpRequestDurationHistogram *prometheus.HistogramVec
)

// Init initializes the metrics package and starts the metrics server.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5}

	ledgerOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "The total number of ledger operations by type and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	ledgerOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Histogram of ledger operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation"},
	)

	eventsEmittedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_emitted_total",
			Help: "The total number of events emitted by the ledger core.",
		},
		[]string{"event_type"},
	)

	eventPublishErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "event_publish_error_count",
			Help: "The total number of errors when publishing events to the queue.",
		},
	)

	outboxUnpublishedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "event_outbox_unpublished",
			Help: "The number of outbox events awaiting publication.",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "Histogram of db call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming HTTP request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	prometheus.MustRegister(
		ledgerOperationCounter,
		ledgerOperationDuration,
		eventsEmittedCounter,
		eventPublishErrorCounter,
		outboxUnpublishedGauge,
		dbLatency,
		httpRequestDurationHistogram,
	)
}

// RecordLedgerOperation tracks one core operation with its duration and
// outcome.
func RecordLedgerOperation(operation string, duration time.Duration, outcome Outcome) {
	if ledgerOperationCounter == nil {
		return
	}
	ledgerOperationCounter.WithLabelValues(operation, outcome.String()).Inc()
	ledgerOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordEventEmitted counts an emitted ledger event by type.
func RecordEventEmitted(eventType string) {
	if eventsEmittedCounter == nil {
		return
	}
	eventsEmittedCounter.WithLabelValues(eventType).Inc()
}

// RecordEventPublishError counts a failed queue publish.
func RecordEventPublishError() {
	if eventPublishErrorCounter == nil {
		return
	}
	eventPublishErrorCounter.Inc()
}

// RecordOutboxUnpublished reports the outbox backlog size.
func RecordOutboxUnpublished(count float64) {
	if outboxUnpublishedGauge == nil {
		return
	}
	outboxUnpublishedGauge.Set(count)
}

// ObserveDbLatency tracks the duration of a db call.
func ObserveDbLatency(method string, duration time.Duration, failure bool) {
	if dbLatency == nil {
		return
	}
	status := Success
	if failure {
		status = Error
	}
	dbLatency.WithLabelValues(method, status.String()).Observe(duration.Seconds())
}

// ObserveHttpRequest tracks one incoming API request.
func ObserveHttpRequest(method, path string, statusCode int, duration time.Duration) {
	if httpRequestDurationHistogram == nil {
		return
	}
	httpRequestDurationHistogram.
		WithLabelValues(method, path, fmt.Sprintf("%d", statusCode)).
		Observe(duration.Seconds())
}
