// Package githubapi fetches public GitHub data: profiles, repositories,
// per-repository languages and recent events over REST, and the
// contribution calendar over GraphQL.
package githubapi

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	gh "github.com/google/go-github/v62/github"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/metrics"
	"github.com/osse101/gitfolio/internal/validation"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9]){0,38}$`)

// ValidUsername reports whether login is a well-formed GitHub username:
// alphanumerics and single inner hyphens, at most 39 characters.
func ValidUsername(login string) bool {
	return len(login) <= MaxUsernameLength && usernamePattern.MatchString(login)
}

func checkUsername(login string) error {
	if !ValidUsername(login) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUsername, login)
	}
	return nil
}

// Options configures a Client. Zero values fall back to the package defaults.
type Options struct {
	Token            string
	BaseURL          string
	Timeout          time.Duration
	CacheSize        int
	CacheTTL         time.Duration
	CalendarCacheTTL time.Duration
	Concurrency      int
	HTTPClient       *http.Client
	Schemas          validation.SchemaValidator
}

func (o *Options) applyDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.CalendarCacheTTL <= 0 {
		o.CalendarCacheTTL = DefaultCalendarCacheTTL
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Schemas == nil {
		o.Schemas = validation.NewSchemaValidator()
	}
}

// Client is a caching GitHub client.
type Client struct {
	gh          *gh.Client
	graphQLURL  string
	hasToken    bool
	concurrency int
	schemas     validation.SchemaValidator
	now         func() time.Time

	users     *responseCache[domain.UserProfile]
	repos     *responseCache[[]domain.Repository]
	languages *responseCache[map[string]int64]
	calendars *responseCache[domain.ContributionCalendar]
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	opts.applyDefaults()

	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidBaseURL, opts.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	client := gh.NewClient(httpClient)
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}
	client.BaseURL = base
	client.UserAgent = UserAgent

	return &Client{
		gh:          client,
		graphQLURL:  graphQLEndpoint(base),
		hasToken:    opts.Token != "",
		concurrency: opts.Concurrency,
		schemas:     opts.Schemas,
		now:         time.Now,
		users:       newResponseCache[domain.UserProfile](cacheKindUser, opts.CacheSize, opts.CacheTTL),
		repos:       newResponseCache[[]domain.Repository](cacheKindRepos, opts.CacheSize, opts.CacheTTL),
		languages:   newResponseCache[map[string]int64](cacheKindLanguages, opts.CacheSize*4, opts.CacheTTL),
		calendars:   newResponseCache[domain.ContributionCalendar](cacheKindCalendar, opts.CacheSize, opts.CalendarCacheTTL),
	}, nil
}

// HasToken reports whether the client authenticates its requests.
func (c *Client) HasToken() bool {
	return c.hasToken
}

// BaseURL is the REST API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.gh.BaseURL.String()
}

// graphQLEndpoint derives the GraphQL URL from the REST base.
func graphQLEndpoint(base *url.URL) string {
	u := *base
	if strings.HasSuffix(u.Path, enterpriseRESTSuffix) {
		u.Path = strings.TrimSuffix(u.Path, enterpriseRESTSuffix) + enterpriseGraphQL
		return u.String()
	}
	u.Path += graphQLPath
	return u.String()
}

func record(endpoint string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.GitHubRequests.WithLabelValues(endpoint, outcome).Inc()
}
