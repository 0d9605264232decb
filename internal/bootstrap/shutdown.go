package bootstrap

import (
	"context"

	"github.com/osse101/gitfolio/internal/logger"
)

// GracefulShutdown stops accepting requests, drains queued auto-saves while
// the database is still open, then closes the pool. Errors are logged and
// do not stop the sequence.
func GracefulShutdown(ctx context.Context, c *Components) {
	logger.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		logger.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.AutoSavePool != nil {
		logger.Info(LogMsgDrainingAutoSave)
		if err := c.AutoSavePool.Shutdown(ctx); err != nil {
			logger.Error(LogMsgAutoSaveDrainFailed, "error", err)
		}
	}

	if c.DBPool != nil {
		logger.Info(LogMsgClosingDatabase)
		c.DBPool.Close()
	}

	logger.Info(LogMsgServerStopped)
}
