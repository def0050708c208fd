package service

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/skillswap/internal/models"
)

// MetricsSnapshot summarises counters for logging and admin views.
type MetricsSnapshot struct {
	SwapRequestsCreated uint64    `json:"swapRequestsCreated"`
	SwapTransitions     uint64    `json:"swapTransitions"`
	MatchLookups        uint64    `json:"matchLookups"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// MetricsService encapsulates Prometheus instrumentation on a private registry.
type MetricsService struct {
	registry       *prometheus.Registry
	swapsCreated   prometheus.Counter
	swapTransition *prometheus.CounterVec
	matchLookups   prometheus.Counter
	matchResults   prometheus.Histogram
	users          prometheus.Gauge
	swapsByStatus  *prometheus.GaugeVec

	createdCount    uint64
	transitionCount uint64
	lookupCount     uint64
}

// NewMetricsService registers the marketplace collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	swapsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "skillswap",
		Name:      "swap_requests_created_total",
		Help:      "Total swap requests created",
	})

	swapTransition := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skillswap",
		Name:      "swap_transitions_total",
		Help:      "Swap request status transitions by target status",
	}, []string{"status"})

	matchLookups := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "skillswap",
		Name:      "match_lookups_total",
		Help:      "Total match finder invocations",
	})

	matchResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "skillswap",
		Name:      "match_results",
		Help:      "Number of matches returned per lookup",
		Buckets:   []float64{0, 1, 2, 3, 5, 10},
	})

	users := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "skillswap",
		Name:      "users",
		Help:      "Users in the directory",
	})

	swapsByStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "skillswap",
		Name:      "swap_requests",
		Help:      "Swap requests by current status",
	}, []string{"status"})

	registry.MustRegister(swapsCreated, swapTransition, matchLookups, matchResults, users, swapsByStatus)

	return &MetricsService{
		registry:       registry,
		swapsCreated:   swapsCreated,
		swapTransition: swapTransition,
		matchLookups:   matchLookups,
		matchResults:   matchResults,
		users:          users,
		swapsByStatus:  swapsByStatus,
	}
}

// Registry exposes the underlying registry for gathering.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordSwapCreated counts a new request.
func (m *MetricsService) RecordSwapCreated() {
	if m == nil {
		return
	}
	m.swapsCreated.Inc()
	atomic.AddUint64(&m.createdCount, 1)
}

// RecordSwapTransition counts a status change.
func (m *MetricsService) RecordSwapTransition(status models.SwapStatus) {
	if m == nil {
		return
	}
	m.swapTransition.WithLabelValues(string(status)).Inc()
	atomic.AddUint64(&m.transitionCount, 1)
}

// ObserveMatchLookup records one match finder run and its result size.
func (m *MetricsService) ObserveMatchLookup(results int) {
	if m == nil {
		return
	}
	m.matchLookups.Inc()
	m.matchResults.Observe(float64(results))
	atomic.AddUint64(&m.lookupCount, 1)
}

// PublishStats mirrors platform counts into gauges.
func (m *MetricsService) PublishStats(stats models.PlatformStats) {
	if m == nil {
		return
	}
	m.users.Set(float64(stats.TotalUsers))
	m.swapsByStatus.WithLabelValues(string(models.SwapStatusPending)).Set(float64(stats.PendingRequests))
	m.swapsByStatus.WithLabelValues(string(models.SwapStatusAccepted)).Set(float64(stats.ActiveSwaps))
	m.swapsByStatus.WithLabelValues(string(models.SwapStatusCompleted)).Set(float64(stats.CompletedSwaps))
	m.swapsByStatus.WithLabelValues(string(models.SwapStatusRejected)).Set(float64(stats.RejectedSwaps))
}

// Snapshot returns aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		SwapRequestsCreated: atomic.LoadUint64(&m.createdCount),
		SwapTransitions:     atomic.LoadUint64(&m.transitionCount),
		MatchLookups:        atomic.LoadUint64(&m.lookupCount),
		GeneratedAt:         time.Now().UTC(),
	}
}
