// Package analytics fetches a user's GitHub data and runs it through
// validation, statistics, achievements and language ranking.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/gitfolio/internal/achievement"
	"github.com/osse101/gitfolio/internal/calendar"
	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/githubapi"
	"github.com/osse101/gitfolio/internal/language"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/metrics"
	"github.com/osse101/gitfolio/internal/stats"
)

// Source provides the raw GitHub data.
type Source interface {
	GetUser(ctx context.Context, login string) (domain.UserProfile, error)
	ListRepositories(ctx context.Context, login string) ([]domain.Repository, error)
	GetLanguages(ctx context.Context, login string, repos []domain.Repository) (domain.RepositoryLanguages, error)
	GetContributionCalendar(ctx context.Context, login string, year int) (domain.ContributionCalendar, error)
	ListRecentActivity(ctx context.Context, login string, page, perPage int) (domain.RecentActivity, error)
}

// AutoSaver persists a snapshot of every successful lookup in the background.
type AutoSaver interface {
	Enqueue(ctx context.Context, snapshot domain.SavedProfile) bool
}

// Service defines the analytics operations
type Service interface {
	GetAnalytics(ctx context.Context, username string, year int) (domain.Analytics, error)
	GetContributions(ctx context.Context, username string, year int) (domain.ContributionReport, error)
	GetLanguages(ctx context.Context, username string, topN int) ([]domain.LanguageShare, error)
	GetRecentActivity(ctx context.Context, username string, page, perPage int) (domain.RecentActivity, error)
}

type service struct {
	source Source
	saver  AutoSaver
	now    func() time.Time
}

// NewService creates a new analytics service. saver may be nil.
func NewService(source Source, saver AutoSaver) Service {
	return &service{
		source: source,
		saver:  saver,
		now:    time.Now,
	}
}

// GetAnalytics builds the full dashboard payload. The profile, repository
// list and calendar are fetched in parallel; the first failure cancels the
// rest and is returned.
func (s *service) GetAnalytics(ctx context.Context, username string, year int) (result domain.Analytics, err error) {
	start := time.Now()
	defer func() { observe(start, err) }()

	if !githubapi.ValidUsername(username) {
		return domain.Analytics{}, fmt.Errorf("%w: %q", domain.ErrInvalidUsername, username)
	}
	log := logger.FromContext(ctx)

	var (
		user  domain.UserProfile
		repos []domain.Repository
		cal   domain.ContributionCalendar
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.source.GetUser(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.source.ListRepositories(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		cal, err = s.source.GetContributionCalendar(gctx, username, year)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn(LogMsgAnalyticsFailed, "username", username, "year", year, "error", err)
		return domain.Analytics{}, err
	}

	now := s.now()
	report, err := s.contributions(ctx, cal, year, now)
	if err != nil {
		log.Warn(LogMsgAnalyticsFailed, "username", username, "year", year, "error", err)
		return domain.Analytics{}, err
	}

	languages, fallback, err := s.languages(ctx, username, repos, DefaultTopLanguages)
	if err != nil {
		return domain.Analytics{}, err
	}
	warnings := report.Warnings
	if fallback {
		warnings = append(warnings, WarnMsgLanguageFallback)
	}

	result = domain.Analytics{
		User:         user,
		Repositories: repos,
		Calendar:     report.Calendar,
		Stats:        report.Stats,
		Breakdown:    report.Breakdown,
		Languages:    languages,
		Achievements: achievement.Evaluate(user, report.Stats, repos, now),
		Warnings:     warnings,
		GeneratedAt:  now.UTC(),
	}

	if s.saver != nil {
		s.saver.Enqueue(ctx, domain.NewSavedProfile(user, report.Stats))
	}

	log.Info(LogMsgAnalyticsComputed,
		"username", username,
		"year", year,
		"repos", len(repos),
		"total_contributions", report.Stats.TotalContributions,
		"warnings", len(warnings))
	return result, nil
}

// GetContributions returns the validated calendar with its statistics.
func (s *service) GetContributions(ctx context.Context, username string, year int) (result domain.ContributionReport, err error) {
	start := time.Now()
	defer func() { observe(start, err) }()

	if !githubapi.ValidUsername(username) {
		return domain.ContributionReport{}, fmt.Errorf("%w: %q", domain.ErrInvalidUsername, username)
	}

	cal, err := s.source.GetContributionCalendar(ctx, username, year)
	if err != nil {
		return domain.ContributionReport{}, err
	}
	return s.contributions(ctx, cal, year, s.now())
}

// GetLanguages returns the ranked language distribution across the user's
// repositories. topN <= 0 uses DefaultTopLanguages.
func (s *service) GetLanguages(ctx context.Context, username string, topN int) ([]domain.LanguageShare, error) {
	if !githubapi.ValidUsername(username) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidUsername, username)
	}
	if topN <= 0 {
		topN = DefaultTopLanguages
	}

	repos, err := s.source.ListRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	ranked, _, err := s.languages(ctx, username, repos, topN)
	return ranked, err
}

func (s *service) GetRecentActivity(ctx context.Context, username string, page, perPage int) (domain.RecentActivity, error) {
	if !githubapi.ValidUsername(username) {
		return domain.RecentActivity{}, fmt.Errorf("%w: %q", domain.ErrInvalidUsername, username)
	}
	return s.source.ListRecentActivity(ctx, username, page, perPage)
}

// contributions runs a fetched calendar through validation and the statistics engine.
func (s *service) contributions(ctx context.Context, cal domain.ContributionCalendar, year int, now time.Time) (domain.ContributionReport, error) {
	valid, report, err := calendar.Validate(ctx, cal)
	if err != nil {
		return domain.ContributionReport{}, err
	}

	activity, err := stats.Compute(valid, year, now)
	if err != nil {
		return domain.ContributionReport{}, fmt.Errorf("%w: %v", domain.ErrMalformedCalendar, err)
	}

	return domain.ContributionReport{
		Calendar:  valid,
		Stats:     activity,
		Breakdown: stats.Breakdown(valid, now),
		Warnings:  report.Messages(),
	}, nil
}

// languages ranks per-repository language data. When no breakdown can be
// fetched it approximates from repository sizes and reports fallback.
func (s *service) languages(ctx context.Context, username string, repos []domain.Repository, topN int) ([]domain.LanguageShare, bool, error) {
	perRepo, err := s.source.GetLanguages(ctx, username, repos)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return nil, false, err
	}

	totals := language.Aggregate(perRepo)
	if len(totals) > 0 {
		return language.Rank(totals, topN), false, nil
	}

	fallback := language.FromRepositories(repos)
	if len(fallback) == 0 {
		return language.Rank(totals, topN), false, nil
	}
	logger.FromContext(ctx).Info(LogMsgLanguageFallback, "username", username, "error", err)
	return language.Rank(fallback, topN), true, nil
}

func observe(start time.Time, err error) {
	metrics.AnalyticsDuration.Observe(time.Since(start).Seconds())
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.AnalyticsComputed.WithLabelValues(outcome).Inc()
}
