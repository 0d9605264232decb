package config

import "time"

// Defaults applied when the matching environment variable is unset or invalid
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "gitfolio"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultGitHubTimeout       = 15 * time.Second
	DefaultGitHubCacheSize     = 512
	DefaultGitHubCacheTTL      = 10 * time.Minute
	DefaultCalendarCacheTTL    = 5 * time.Minute
	DefaultLanguageConcurrency = 5

	DefaultAutoSaveWorkers   = 2
	DefaultAutoSaveQueueSize = 100

	DefaultSnapshotRetention     = 90 * 24 * time.Hour
	DefaultSnapshotPruneInterval = 24 * time.Hour
)
