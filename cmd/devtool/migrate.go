package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/olekukonko/tablewriter"
	"github.com/pressly/goose/v3"

	"github.com/osse101/gitfolio/internal/config"
	"github.com/osse101/gitfolio/internal/database"
)

const migrateTimeout = 2 * time.Minute

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the embedded database migrations (up, status, version)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status, version")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	case "status":
		return printMigrationStatus(ctx, pool)
	case "version":
		provider, closeDB, err := newProvider(pool)
		if err != nil {
			return err
		}
		defer closeDB()
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func newProvider(pool *pgxpool.Pool) (*goose.Provider, func(), error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, database.Migrations())
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return provider, func() { _ = db.Close() }, nil
}

func printMigrationStatus(ctx context.Context, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Version", "State", "Applied At", "File"})
	table.SetAutoWrapText(false)
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		table.Append([]string{strconv.FormatInt(s.Source.Version, 10), string(s.State), applied, s.Source.Path})
	}
	table.Render()
	return nil
}
