package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gitfolio/internal/domain"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, token string) (*Client, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{Token: token, BaseURL: srv.URL + "/", Concurrency: 2})
	require.NoError(t, err)
	c.now = func() time.Time { return testNow }
	return c, mux
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestValidUsername(t *testing.T) {
	tests := []struct {
		login string
		want  bool
	}{
		{"octocat", true},
		{"a", true},
		{"my-name-1", true},
		{"A1b2C3", true},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"", false},
		{"has space", false},
		{"under_score", false},
		{"a234567890123456789012345678901234567890", false},
		{"a23456789012345678901234567890123456789", true},
	}
	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.login))
		})
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "::not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidBaseURL)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.False(t, c.HasToken())

	c, err = NewClient(Options{Token: "t", BaseURL: "https://ghe.example.com/api/v3"})
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", c.BaseURL())
	assert.True(t, c.HasToken())
}

func TestGraphQLEndpoint(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://api.github.com/", "https://api.github.com/graphql"},
		{"https://ghe.example.com/api/v3/", "https://ghe.example.com/api/graphql"},
		{"http://127.0.0.1:9000/", "http://127.0.0.1:9000/graphql"},
	}
	for _, tt := range tests {
		u, err := url.Parse(tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, graphQLEndpoint(u))
	}
}

func TestGetUser(t *testing.T) {
	c, mux := newTestClient(t, "token")
	var calls int32
	mux.HandleFunc("GET /users/octocat", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{
			"login": "octocat", "name": "The Octocat", "bio": "cat", "location": "SF",
			"company": "GitHub", "blog": "https://github.blog", "public_repos": 8,
			"public_gists": 2, "followers": 120, "following": 9,
			"created_at": "2011-01-25T18:44:36Z"
		}`)
	})

	ctx := context.Background()
	profile, err := c.GetUser(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Equal(t, 8, profile.PublicRepos)
	assert.Equal(t, 120, profile.Followers)
	assert.Equal(t, 2011, profile.CreatedAt.Year())

	_, err = c.GetUser(ctx, "OctoCat")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second lookup should be served from cache")
}

func TestGetUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		want    error
	}{
		{"not found", http.StatusNotFound, nil, domain.ErrUserNotFound},
		{"forbidden", http.StatusForbidden, nil, domain.ErrRateLimited},
		{"rate limit headers", http.StatusForbidden, map[string]string{
			"X-RateLimit-Remaining": "0",
			"X-RateLimit-Limit":     "60",
			"X-RateLimit-Reset":     fmt.Sprint(time.Now().Add(time.Hour).Unix()),
		}, domain.ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, nil, domain.ErrTokenRequired},
		{"server error", http.StatusBadGateway, nil, domain.ErrUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mux := newTestClient(t, "")
			mux.HandleFunc("GET /users/ghost", func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				writeJSON(w, tt.status, `{"message": "API rate limit exceeded"}`)
			})

			_, err := c.GetUser(context.Background(), "ghost")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetUser_InvalidUsernameMakesNoCall(t *testing.T) {
	c, mux := newTestClient(t, "")
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	_, err := c.GetUser(context.Background(), "bad--name")
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
}

func TestListRepositories_FollowsPages(t *testing.T) {
	c, mux := newTestClient(t, "")
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, ReposSort, q.Get("sort"))
		assert.Equal(t, "100", q.Get("per_page"))
		switch q.Get("page") {
		case "1":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/users/octocat/repos?page=2&per_page=100>; rel="next"`, r.Host))
			writeJSON(w, http.StatusOK, `[{"name": "a", "full_name": "octocat/a", "language": "Go", "size": 10, "stargazers_count": 3}]`)
		case "2":
			writeJSON(w, http.StatusOK, `[{"name": "b", "full_name": "octocat/b", "fork": true, "forks_count": 1}]`)
		default:
			t.Errorf("unexpected page %q", q.Get("page"))
		}
	})

	repos, err := c.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "octocat/a", repos[0].FullName)
	assert.Equal(t, int64(10), repos[0].Size)
	assert.Equal(t, 3, repos[0].StargazersCount)
	assert.True(t, repos[1].Fork)
}

func TestListRepositories_Empty(t *testing.T) {
	c, mux := newTestClient(t, "")
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	repos, err := c.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestGetLanguages_SkipsFailingRepositories(t *testing.T) {
	c, mux := newTestClient(t, "")
	mux.HandleFunc("GET /repos/octocat/a/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"Go": 5000, "Shell": 100}`)
	})
	mux.HandleFunc("GET /repos/octocat/b/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message": "boom"}`)
	})
	mux.HandleFunc("GET /repos/octocat/c/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"Go": 1000}`)
	})

	repos := []domain.Repository{
		{Name: "a", FullName: "octocat/a"},
		{Name: "b", FullName: "octocat/b"},
		{Name: "c"},
	}
	langs, err := c.GetLanguages(context.Background(), "octocat", repos)
	require.NoError(t, err)
	assert.Equal(t, domain.RepositoryLanguages{
		"octocat/a": {"Go": 5000, "Shell": 100},
		"octocat/c": {"Go": 1000},
	}, langs)
}

func TestGetLanguages_AllFailing(t *testing.T) {
	c, mux := newTestClient(t, "")
	mux.HandleFunc("GET /repos/octocat/a/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"message": "slow down"}`)
	})

	_, err := c.GetLanguages(context.Background(), "octocat", []domain.Repository{{Name: "a", FullName: "octocat/a"}})
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestListRecentActivity(t *testing.T) {
	c, mux := newTestClient(t, "")
	mux.HandleFunc("GET /users/octocat/events/public", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Header().Set("Link", fmt.Sprintf(`<http://%s/users/octocat/events/public?page=3&per_page=5>; rel="next"`, r.Host))
		writeJSON(w, http.StatusOK, `[
			{"id": "1", "type": "PushEvent", "repo": {"name": "octocat/a"}, "created_at": "2024-06-01T10:00:00Z",
			 "payload": {"commits": [{"message": "fix parser\n\nlong body"}, {"message": "second"}]}},
			{"id": "2", "type": "CreateEvent", "repo": {"name": "octocat/b"}, "created_at": "2024-06-01T09:00:00Z",
			 "payload": {"ref_type": "branch", "ref": "feature"}},
			{"id": "3", "type": "GollumEvent", "repo": {"name": "octocat/c"}, "created_at": "2024-06-01T08:00:00Z", "payload": {}}
		]`)
	})

	activity, err := c.ListRecentActivity(context.Background(), "octocat", 2, 5)
	require.NoError(t, err)
	assert.True(t, activity.HasMore)
	require.Len(t, activity.Events, 3)
	assert.Equal(t, "pushed 2 commits", activity.Events[0].Action)
	assert.Equal(t, "fix parser", activity.Events[0].Detail)
	assert.Equal(t, "created branch", activity.Events[1].Action)
	assert.Equal(t, "feature", activity.Events[1].Detail)
	assert.Equal(t, "Gollum", activity.Events[2].Action)
}

func TestListRecentActivity_Bounds(t *testing.T) {
	c, _ := newTestClient(t, "")
	ctx := context.Background()

	_, err := c.ListRecentActivity(ctx, "octocat", 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = c.ListRecentActivity(ctx, "octocat", 11, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = c.ListRecentActivity(ctx, "octocat", 1, 31)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

const calendarPayload = `{"data": {"user": {
	"login": "octocat", "name": "The Octocat", "avatarUrl": "https://avatars/1",
	"contributionsCollection": {"contributionCalendar": {
		"totalContributions": 5,
		"weeks": [
			{"contributionDays": [
				{"date": "2023-01-01", "contributionCount": 2, "contributionLevel": "FIRST_QUARTILE"},
				{"date": "2023-01-02", "contributionCount": 0, "contributionLevel": "NONE"}
			]},
			{"contributionDays": [
				{"date": "2023-01-08", "contributionCount": "3", "contributionLevel": "SECOND_QUARTILE"},
				{"date": "2023-01-09", "contributionCount": "lots", "contributionLevel": "NONE"}
			]}
		]
	}}
}}}`

func TestGetContributionCalendar(t *testing.T) {
	c, mux := newTestClient(t, "token")
	var calls int32
	mux.HandleFunc("POST /graphql", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "octocat", req.Variables["login"])
		assert.Equal(t, "2023-01-01T00:00:00Z", req.Variables["from"])
		assert.Equal(t, "2023-12-31T23:59:59Z", req.Variables["to"])
		writeJSON(w, http.StatusOK, calendarPayload)
	})

	cal, err := c.GetContributionCalendar(context.Background(), "octocat", 2023)
	require.NoError(t, err)
	assert.Equal(t, 2023, cal.QueryYear)
	assert.Equal(t, 5, cal.TotalContributions)
	assert.Equal(t, "The Octocat", cal.User.Name)
	require.Len(t, cal.Weeks, 2)
	assert.Equal(t, domain.ContributionDay{Date: "2023-01-01", Count: 2, Level: 1}, cal.Weeks[0].Days[0])
	assert.Equal(t, 3, cal.Weeks[1].Days[0].Count)
	assert.Equal(t, -1, cal.Weeks[1].Days[1].Count, "unreadable counts are flagged for placeholder handling")

	_, err = c.GetContributionCalendar(context.Background(), "octocat", 2023)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetContributionCalendar_DefaultWindow(t *testing.T) {
	c, mux := newTestClient(t, "token")
	mux.HandleFunc("POST /graphql", func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotContains(t, req.Variables, "from")
		assert.NotContains(t, req.Variables, "to")
		writeJSON(w, http.StatusOK, calendarPayload)
	})

	cal, err := c.GetContributionCalendar(context.Background(), "octocat", 0)
	require.NoError(t, err)
	assert.Zero(t, cal.QueryYear)
}

func TestGetContributionCalendar_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"null user", http.StatusOK, `{"data": {"user": null}}`, domain.ErrUserNotFound},
		{"not found error", http.StatusOK, `{"data": {"user": null}, "errors": [{"type": "NOT_FOUND", "message": "no user"}]}`, domain.ErrUserNotFound},
		{"rate limited", http.StatusOK, `{"errors": [{"type": "RATE_LIMITED", "message": "limit"}]}`, domain.ErrRateLimited},
		{"other graphql error", http.StatusOK, `{"errors": [{"type": "INTERNAL", "message": "oops"}]}`, domain.ErrUpstreamUnavailable},
		{"schema violation", http.StatusOK, `{"data": {"user": {"login": "octocat", "contributionsCollection": {"contributionCalendar": {"totalContributions": -1, "weeks": []}}}}}`, domain.ErrMalformedCalendar},
		{"not json", http.StatusOK, `<html>`, domain.ErrMalformedCalendar},
		{"bad gateway", http.StatusBadGateway, `{"message": "down"}`, domain.ErrUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mux := newTestClient(t, "token")
			mux.HandleFunc("POST /graphql", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := c.GetContributionCalendar(context.Background(), "octocat", 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetContributionCalendar_RequiresToken(t *testing.T) {
	c, _ := newTestClient(t, "")

	_, err := c.GetContributionCalendar(context.Background(), "octocat", 0)
	assert.ErrorIs(t, err, domain.ErrTokenRequired)
}

func TestGetContributionCalendar_YearBounds(t *testing.T) {
	c, _ := newTestClient(t, "token")
	ctx := context.Background()

	_, err := c.GetContributionCalendar(ctx, "octocat", 2007)
	assert.ErrorIs(t, err, domain.ErrInvalidYear)
	_, err = c.GetContributionCalendar(ctx, "octocat", testNow.Year()+2)
	assert.ErrorIs(t, err, domain.ErrInvalidYear)
}
