// Package bootstrap assembles the application from its configuration and
// tears it down again in order.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/gitfolio/internal/analytics"
	"github.com/osse101/gitfolio/internal/config"
	"github.com/osse101/gitfolio/internal/database"
	"github.com/osse101/gitfolio/internal/database/postgres"
	"github.com/osse101/gitfolio/internal/githubapi"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/profile"
	"github.com/osse101/gitfolio/internal/scheduler"
	"github.com/osse101/gitfolio/internal/server"
	"github.com/osse101/gitfolio/internal/validation"
	"github.com/osse101/gitfolio/internal/worker"
)

// Components holds everything main needs to run and later stop the service.
type Components struct {
	DBPool           *pgxpool.Pool
	GitHub           *githubapi.Client
	AutoSavePool     *worker.Pool
	Scheduler        *scheduler.Scheduler
	ProfileService   profile.Service
	AnalyticsService analytics.Service
	Server           *server.Server
}

// Initialize connects to the database, applies migrations and wires the
// services and HTTP server. The auto-save pool and scheduled jobs are
// started; the server is not.
func Initialize(ctx context.Context, cfg *config.Config) (*Components, error) {
	log := logger.FromContext(ctx)

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}

	schemas := validation.NewSchemaValidator()
	gh, err := githubapi.NewClient(githubapi.Options{
		Token:            cfg.GitHubToken,
		BaseURL:          cfg.GitHubAPIURL,
		Timeout:          cfg.GitHubTimeout,
		CacheSize:        cfg.GitHubCacheSize,
		CacheTTL:         cfg.GitHubCacheTTL,
		CalendarCacheTTL: cfg.CalendarCacheTTL,
		Concurrency:      cfg.LanguageConcurrency,
		Schemas:          schemas,
	})
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgGitHubClient, err)
	}
	if !gh.HasToken() {
		log.Warn(LogMsgAnonymousGitHub)
	}

	autoSavePool := worker.NewPool(cfg.AutoSaveWorkers, cfg.AutoSaveQueueSize)
	autoSavePool.Start()
	log.Info(LogMsgAutoSaveStarted, "workers", cfg.AutoSaveWorkers, "queue_size", cfg.AutoSaveQueueSize)

	profileService := profile.NewService(postgres.NewProfileRepository(dbPool))
	analyticsService := analytics.NewService(gh, profile.NewAutoSaver(profileService, autoSavePool))

	sched := scheduler.New(autoSavePool)
	if cfg.SnapshotRetention > 0 && cfg.SnapshotPruneInterval > 0 {
		sched.Schedule(JobNamePruneSnapshots, cfg.SnapshotPruneInterval,
			profile.NewPruneJob(profileService, cfg.SnapshotRetention))
	} else {
		log.Info(LogMsgPruneDisabled)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		analyticsService, profileService, schemas, gh.HasToken())

	log.Info(LogMsgComponentsReady, "port", cfg.Port, "github_base_url", gh.BaseURL())
	return &Components{
		DBPool:           dbPool,
		GitHub:           gh,
		AutoSavePool:     autoSavePool,
		Scheduler:        sched,
		ProfileService:   profileService,
		AnalyticsService: analyticsService,
		Server:           srv,
	}, nil
}
