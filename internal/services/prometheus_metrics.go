package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by MetricsRecorderInterface implementations.
const (
	MetricQueryRecompute      = "query.recompute"
	MetricQueryFetch          = "query.fetch"
	MetricSearchScheduled     = "query.search.scheduled"
	MetricSearchApplied       = "query.search.applied"
	MetricQueryResultSize     = "query.result_size"
	MetricSessionEvent        = "session.event"
	MetricSessionsActive      = "sessions.active"
	MetricAuthenticationEvent = "authentication_event"
)

type PrometheusMetrics struct {
	recomputeTotal       *prometheus.CounterVec
	recomputeDuration    prometheus.Histogram
	fetchTotal           *prometheus.CounterVec
	fetchDuration        prometheus.Histogram
	searchScheduledTotal prometheus.Counter
	searchAppliedTotal   prometheus.Counter
	resultSize           prometheus.Histogram
	sessionEventsTotal   *prometheus.CounterVec
	activeSessions       prometheus.Gauge
	authEventsTotal      *prometheus.CounterVec
}

// NewPrometheusMetrics registers the dashboard collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		recomputeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_recompute_total",
				Help: "Total number of view recomputations",
			},
			[]string{"trigger"},
		),
		recomputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_recompute_duration_milliseconds",
				Help:    "Filter, search, aggregate and paginate duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		fetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_store_fetch_total",
				Help: "Total number of record store reads",
			},
			[]string{"status"},
		),
		fetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_store_fetch_duration_milliseconds",
				Help:    "Record store read duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
			},
		),
		searchScheduledTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "query_search_scheduled_total",
				Help: "Total number of search terms received, before debouncing",
			},
		),
		searchAppliedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "query_search_applied_total",
				Help: "Total number of search terms applied after debouncing",
			},
		),
		resultSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_result_size",
				Help:    "Number of records in a recomputed view",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		sessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_session_events_total",
				Help: "Total number of query session lifecycle events",
			},
			[]string{"event"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "query_sessions_active",
				Help: "Current number of live query sessions",
			},
		),
		authEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricQueryRecompute:
		m.recomputeTotal.WithLabelValues(tags["trigger"]).Inc()
	case MetricQueryFetch:
		m.fetchTotal.WithLabelValues(tags["status"]).Inc()
	case MetricSearchScheduled:
		m.searchScheduledTotal.Inc()
	case MetricSearchApplied:
		m.searchAppliedTotal.Inc()
	case MetricSessionEvent:
		if event := tags["event"]; event != "" {
			m.sessionEventsTotal.WithLabelValues(event).Inc()
		}
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Microseconds()) / 1000
	switch name {
	case MetricQueryRecompute:
		m.recomputeDuration.Observe(ms)
	case MetricQueryFetch:
		m.fetchDuration.Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricQueryResultSize:
		m.resultSize.Observe(value)
	case MetricSessionsActive:
		m.activeSessions.Set(value)
	}
}

// noopMetrics discards everything; used where no registry is wired.
type noopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
