package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/gitfolio/internal/config"
)

const (
	defaultDBRetries = 30
	dbRetryInterval  = 2 * time.Second
	dbPingTimeout    = 3 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the database to accept connections [retries]"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	retries := defaultDBRetries
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid retry count %q", args[0])
		}
		retries = n
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		if lastErr = pingOnce(cfg.GetDBConnString()); lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, retries, lastErr)
		time.Sleep(dbRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", retries, lastErr)
}

func pingOnce(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
