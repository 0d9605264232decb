package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// GitHub client metric names
const (
	MetricNameGitHubRequests = "github_requests_total"
	MetricNameGitHubCache    = "github_cache_lookups_total"
)

// Analytics metric names
const (
	MetricNameCalendarWarnings    = "calendar_warnings_total"
	MetricNameAnalyticsComputed   = "analytics_computed_total"
	MetricNameAnalyticsDuration   = "analytics_duration_seconds"
	MetricNameProfilesAutoSaved   = "profiles_autosaved_total"
	MetricNameSnapshotsPruned     = "profile_snapshots_pruned_total"
	MetricNameWorkerJobsProcessed = "worker_jobs_processed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// GitHub client metric help text
const (
	HelpTextGitHubRequests = "Total number of GitHub API calls by endpoint and outcome"
	HelpTextGitHubCache    = "GitHub response cache lookups by kind and result"
)

// Analytics metric help text
const (
	HelpTextCalendarWarnings    = "Non-fatal contribution calendar anomalies by code"
	HelpTextAnalyticsComputed   = "Analytics computations by outcome"
	HelpTextAnalyticsDuration   = "Time spent fetching and computing analytics"
	HelpTextProfilesAutoSaved   = "Profiles saved automatically after a lookup, by outcome"
	HelpTextSnapshotsPruned     = "Ownerless profile snapshots deleted by the retention job; errors count runs"
	HelpTextWorkerJobsProcessed = "Background jobs processed by outcome"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
	LabelKind     = "kind"
	LabelResult   = "result"
	LabelCode     = "code"
)

// Label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	ResultHit      = "hit"
	ResultMiss     = "miss"
	OutcomeDropped = "dropped"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets      = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	AnalyticsLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 20}
)
