package githubapi

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v62/github"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/worker"
)

// GetUser fetches the public profile of login.
func (c *Client) GetUser(ctx context.Context, login string) (domain.UserProfile, error) {
	if err := checkUsername(login); err != nil {
		return domain.UserProfile{}, err
	}

	log := logger.FromContext(ctx)
	key := cacheKey(login)
	if profile, ok := c.users.Get(key); ok {
		log.Debug(LogMsgCacheHit, "kind", cacheKindUser, "login", login)
		return profile, nil
	}

	log.Debug(LogMsgFetchingUser, "login", login)
	user, _, err := c.gh.Users.Get(ctx, login)
	record(EndpointUser, err)
	if err != nil {
		return domain.UserProfile{}, mapError(err, login)
	}

	profile := toUserProfile(user)
	c.users.Set(key, profile)
	return profile, nil
}

// ListRepositories returns every public repository owned by login, most
// recently updated first.
func (c *Client) ListRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	if err := checkUsername(login); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	key := cacheKey(login)
	if repos, ok := c.repos.Get(key); ok {
		log.Debug(LogMsgCacheHit, "kind", cacheKindRepos, "login", login)
		return repos, nil
	}

	opts := &gh.RepositoryListByUserOptions{
		Sort:        ReposSort,
		ListOptions: gh.ListOptions{PerPage: ReposPerPage, Page: 1},
	}
	repos := make([]domain.Repository, 0)
	for {
		log.Debug(LogMsgFetchingRepos, "login", login, "page", opts.Page)
		page, resp, err := c.gh.Repositories.ListByUser(ctx, login, opts)
		record(EndpointRepos, err)
		if err != nil {
			return nil, mapError(err, login)
		}
		for _, r := range page {
			repos = append(repos, toRepository(r))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.repos.Set(key, repos)
	return repos, nil
}

// GetLanguages fetches the language byte counts of each repository with
// bounded concurrency. Repositories that fail individually are logged and
// skipped; an error is returned only when the context ends or every
// repository failed.
func (c *Client) GetLanguages(ctx context.Context, login string, repos []domain.Repository) (domain.RepositoryLanguages, error) {
	if err := checkUsername(login); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	results := worker.Run(ctx, repos, c.concurrency, func(ctx context.Context, repo domain.Repository) (map[string]int64, error) {
		return c.repoLanguages(ctx, login, repo)
	})

	out := make(domain.RepositoryLanguages, len(results))
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			log.Warn(LogMsgLanguageFetchFailed, "repo", repoKey(login, r.Item), "error", r.Err)
			continue
		}
		out[repoKey(login, r.Item)] = r.Value
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(out) == 0 && firstErr != nil {
		return nil, firstErr
	}

	log.Debug(LogMsgLanguagesFetched, "login", login, "repos", len(repos), "fetched", len(out))
	return out, nil
}

func (c *Client) repoLanguages(ctx context.Context, login string, repo domain.Repository) (map[string]int64, error) {
	fullName := repoKey(login, repo)
	key := cacheKey(fullName)
	if langs, ok := c.languages.Get(key); ok {
		return langs, nil
	}

	owner, name, _ := strings.Cut(fullName, "/")
	raw, _, err := c.gh.Repositories.ListLanguages(ctx, owner, name)
	record(EndpointLanguages, err)
	if err != nil {
		return nil, mapError(err, login)
	}

	langs := make(map[string]int64, len(raw))
	for lang, bytes := range raw {
		langs[lang] = int64(bytes)
	}
	c.languages.Set(key, langs)
	return langs, nil
}

// repoKey is owner/name, falling back to login as owner.
func repoKey(login string, repo domain.Repository) string {
	if repo.FullName != "" {
		return repo.FullName
	}
	return login + "/" + repo.Name
}

// ListRecentActivity returns one page of login's public events.
func (c *Client) ListRecentActivity(ctx context.Context, login string, page, perPage int) (domain.RecentActivity, error) {
	if err := checkUsername(login); err != nil {
		return domain.RecentActivity{}, err
	}
	if page < MinActivityPage || page > MaxActivityPage {
		return domain.RecentActivity{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgActivityPage)
	}
	if perPage < MinActivityPerPage || perPage > MaxActivityPerPage {
		return domain.RecentActivity{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgActivityPerPage)
	}

	logger.FromContext(ctx).Debug(LogMsgFetchingEvents, "login", login, "page", page, "per_page", perPage)
	events, resp, err := c.gh.Activity.ListEventsPerformedByUser(ctx, login, true, &gh.ListOptions{Page: page, PerPage: perPage})
	record(EndpointEvents, err)
	if err != nil {
		return domain.RecentActivity{}, mapError(err, login)
	}

	out := domain.RecentActivity{
		Events:  make([]domain.ActivityEvent, 0, len(events)),
		Page:    page,
		PerPage: perPage,
		HasMore: resp != nil && resp.NextPage != 0 && resp.NextPage <= MaxActivityPage,
	}
	for _, e := range events {
		out.Events = append(out.Events, toActivityEvent(e))
	}
	return out, nil
}
