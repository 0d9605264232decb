package main

import (
	"github.com/osse101/gitfolio/internal/bootstrap"
	"github.com/osse101/gitfolio/internal/config"
	"github.com/osse101/gitfolio/internal/logger"
)

// initLogger installs the default slog logger from configuration.
// Source locations are only attached in development.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	logger.Info(bootstrap.LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"log_level", cfg.LogLevel)
	logger.Info(bootstrap.LogMsgConfigLoaded,
		"port", cfg.Port,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"github_token", cfg.GitHubToken != "")
}
