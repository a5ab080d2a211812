// Package metrics provides Prometheus metrics for the rating and staking
// simulation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric the service publishes.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Simulation metrics
	eventsProcessed prometheus.Counter
	eventsSkipped   prometheus.Counter
	eventsDuplicate prometheus.Counter
	simDuration     prometheus.Histogram

	// Staking metrics
	stakeResolutions *prometheus.CounterVec
	totalStaked      prometheus.Gauge
	totalReturned    prometheus.Gauge
	profit           prometheus.Gauge

	// Rating metrics
	trackedPlayers prometheus.Gauge
	trackedTeams   prometheus.Gauge
	storeUpdates   prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry keeps the default Go collectors out of the scrape.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rinkrating",
		subsystem:        "sim",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventsProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_processed_total",
		Help:      "Completed events folded into the simulation",
	})

	m.eventsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_skipped_total",
		Help:      "Events ignored because they never completed",
	})

	m.eventsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_duplicate_total",
		Help:      "Events rejected by the exactly-once guard",
	})

	m.simDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Wall time of a full simulation run in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.stakeResolutions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "stake_resolutions_total",
			Help:      "Resolved stakes by outcome",
		},
		[]string{"outcome"},
	)

	m.totalStaked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_staked",
		Help:      "Cumulative amount staked across all players",
	})

	m.totalReturned = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_returned",
		Help:      "Cumulative amount returned across all players",
	})

	m.profit = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profit",
		Help:      "Returned minus staked for the whole run",
	})

	m.trackedPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracked_players",
		Help:      "Players with a rating in the ledger",
	})

	m.trackedTeams = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracked_teams",
		Help:      "Teams with a rating in the ledger",
	})

	m.storeUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_store_updates_total",
		Help:      "Score writes applied to the rank store",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_total",
			Help:      "Errors by component and kind",
		},
		[]string{"component", "kind"},
	)
}

// RecordEventProcessed increments the processed events counter.
func RecordEventProcessed() {
	globalManager.eventsProcessed.Inc()
}

// RecordEventSkipped increments the skipped events counter.
func RecordEventSkipped() {
	globalManager.eventsSkipped.Inc()
}

// RecordEventDuplicate increments the duplicate events counter.
func RecordEventDuplicate() {
	globalManager.eventsDuplicate.Inc()
}

// RecordRunDuration records a full-run wall time in milliseconds.
func RecordRunDuration(ms float64) {
	globalManager.simDuration.Observe(ms)
}

// RecordStakeResolution increments the resolution counter for an outcome.
func RecordStakeResolution(outcome string) {
	globalManager.stakeResolutions.WithLabelValues(outcome).Inc()
}

// UpdateStakingTotals publishes the aggregate staking amounts.
func UpdateStakingTotals(staked, returned, profit float64) {
	globalManager.totalStaked.Set(staked)
	globalManager.totalReturned.Set(returned)
	globalManager.profit.Set(profit)
}

// UpdateTrackedPlayers sets the player-count gauge.
func UpdateTrackedPlayers(count int) {
	globalManager.trackedPlayers.Set(float64(count))
}

// UpdateTrackedTeams sets the team-count gauge.
func UpdateTrackedTeams(count int) {
	globalManager.trackedTeams.Set(float64(count))
}

// RecordStoreUpdate increments the rank store write counter.
func RecordStoreUpdate() {
	globalManager.storeUpdates.Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByComponent counts an error for a component.
func RecordErrorByComponent(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}

// GetRegistry exposes the registry backing the global manager for /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
