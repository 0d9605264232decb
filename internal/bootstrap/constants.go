package bootstrap

import "time"

// ShutdownTimeout bounds the graceful shutdown sequence.
const ShutdownTimeout = 30 * time.Second

// Startup log messages
const (
	LogMsgStarting        = "Starting gitfolio"
	LogMsgConfigLoaded    = "Configuration loaded"
	LogMsgEnvWarning      = "Environment warning"
	LogMsgAnonymousGitHub = "GITHUB_TOKEN is not set; contribution calendars are unavailable and REST calls share the anonymous rate limit"
	LogMsgComponentsReady = "Components initialized"
	LogMsgAutoSaveStarted = "Auto-save workers started"
	LogMsgPruneDisabled   = "Snapshot pruning disabled"
)

// Scheduled job names
const JobNamePruneSnapshots = "prune_snapshots"

// Startup error messages
const (
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgMigrate         = "failed to apply migrations"
	ErrMsgGitHubClient    = "failed to create GitHub client"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping scheduled jobs"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDrainingAutoSave     = "Draining auto-save queue..."
	LogMsgAutoSaveDrainFailed  = "Auto-save queue drain failed"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
