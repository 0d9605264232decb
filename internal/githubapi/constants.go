package githubapi

import "time"

// Defaults applied when Options leaves a field zero.
const (
	DefaultBaseURL          = "https://api.github.com/"
	DefaultTimeout          = 15 * time.Second
	DefaultCacheSize        = 512
	DefaultCacheTTL         = 10 * time.Minute
	DefaultCalendarCacheTTL = 5 * time.Minute
	DefaultConcurrency      = 5
)

const (
	// ReposPerPage is the largest page GitHub serves for repository listings.
	ReposPerPage = 100
	// ReposSort orders repositories by last update.
	ReposSort = "updated"
	// MaxUsernameLength is GitHub's login length limit.
	MaxUsernameLength = 39
	// UserAgent identifies this service to GitHub.
	UserAgent = "gitfolio"
)

// Recent activity paging limits
const (
	MinActivityPage    = 1
	MaxActivityPage    = 10
	MinActivityPerPage = 1
	MaxActivityPerPage = 30
)

// Metric endpoint labels
const (
	EndpointUser      = "user"
	EndpointRepos     = "repos"
	EndpointLanguages = "languages"
	EndpointCalendar  = "calendar"
	EndpointEvents    = "events"
)

const graphQLPath = "graphql"

// enterpriseRESTSuffix marks a GitHub Enterprise REST base; its GraphQL endpoint is /api/graphql.
const (
	enterpriseRESTSuffix = "/api/v3/"
	enterpriseGraphQL    = "/api/graphql"
)

// Log messages
const (
	LogMsgCacheHit            = "GitHub cache hit"
	LogMsgFetchingUser        = "Fetching GitHub user"
	LogMsgFetchingRepos       = "Fetching GitHub repositories"
	LogMsgFetchingCalendar    = "Fetching contribution calendar"
	LogMsgFetchingEvents      = "Fetching recent activity"
	LogMsgLanguageFetchFailed = "Skipping repository languages"
	LogMsgLanguagesFetched    = "Repository languages fetched"
	LogMsgNoToken             = "No GitHub token configured, contribution calendar unavailable"
)

// Error messages
const (
	ErrMsgInvalidBaseURL  = "invalid GitHub base URL"
	ErrMsgGraphQL         = "graphql error"
	ErrMsgCalendarSchema  = "calendar payload failed schema validation"
	ErrMsgDecodeCalendar  = "failed to decode contribution calendar"
	ErrMsgYearOutOfRange  = "year must be between 2008 and next year"
	ErrMsgActivityPage    = "page must be between 1 and 10"
	ErrMsgActivityPerPage = "per page must be between 1 and 30"
)

// FirstContributionYear is the first year GitHub has contribution data for.
const FirstContributionYear = 2008
