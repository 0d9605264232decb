// @title gitfolio API
// @version 1.0
// @description GitHub activity analytics: contribution calendars, streaks, languages and achievements.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/gitfolio/docs"
	"github.com/osse101/gitfolio/internal/bootstrap"
	"github.com/osse101/gitfolio/internal/config"
	"github.com/osse101/gitfolio/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		logger.Warn(bootstrap.LogMsgEnvWarning, "error", err)
	}
	for _, w := range warnings {
		logger.Warn(bootstrap.LogMsgEnvWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.Initialize(ctx, cfg)
	if err != nil {
		logger.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := components.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
}
