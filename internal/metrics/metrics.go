package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// GitHub Metrics
var (
	GitHubRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGitHubRequests,
			Help: HelpTextGitHubRequests,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	GitHubCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGitHubCache,
			Help: HelpTextGitHubCache,
		},
		[]string{LabelKind, LabelResult},
	)
)

// Analytics Metrics
var (
	CalendarWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalendarWarnings,
			Help: HelpTextCalendarWarnings,
		},
		[]string{LabelCode},
	)

	AnalyticsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnalyticsComputed,
			Help: HelpTextAnalyticsComputed,
		},
		[]string{LabelOutcome},
	)

	AnalyticsDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAnalyticsDuration,
			Help:    HelpTextAnalyticsDuration,
			Buckets: AnalyticsLatencyBuckets,
		},
	)

	ProfilesAutoSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfilesAutoSaved,
			Help: HelpTextProfilesAutoSaved,
		},
		[]string{LabelOutcome},
	)

	SnapshotsPruned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsPruned,
			Help: HelpTextSnapshotsPruned,
		},
		[]string{LabelOutcome},
	)

	WorkerJobsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobsProcessed,
			Help: HelpTextWorkerJobsProcessed,
		},
		[]string{LabelOutcome},
	)
)
