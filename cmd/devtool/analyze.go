package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/osse101/gitfolio/internal/analytics"
	"github.com/osse101/gitfolio/internal/config"
	"github.com/osse101/gitfolio/internal/export"
	"github.com/osse101/gitfolio/internal/githubapi"
	"github.com/osse101/gitfolio/internal/validation"
)

const analyzeTimeout = time.Minute

// AnalyzeCommand runs the analytics pipeline locally without a database or
// server and prints the result in one of the export formats.
type AnalyzeCommand struct{}

func (c *AnalyzeCommand) Name() string {
	return "analyze"
}

func (c *AnalyzeCommand) Description() string {
	return "Print analytics for a GitHub user [-year N] [-format text|json|csv] [-lang tag] <username>"
}

func (c *AnalyzeCommand) Run(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	year := fs.Int("year", 0, "Calendar year (0 for the last 12 months)")
	format := fs.String("format", string(export.FormatText), "Output format")
	lang := fs.String("lang", "en", "Locale for number formatting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one username required")
	}
	username := fs.Arg(0)

	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gh, err := githubapi.NewClient(githubapi.Options{
		Token:   cfg.GitHubToken,
		BaseURL: cfg.GitHubAPIURL,
		Timeout: cfg.GitHubTimeout,
		Schemas: validation.NewSchemaValidator(),
	})
	if err != nil {
		return err
	}
	if !gh.HasToken() {
		PrintWarning("GITHUB_TOKEN not set; the contribution calendar requires one")
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	result, err := analytics.NewService(gh, nil).GetAnalytics(ctx, username, *year)
	if err != nil {
		return err
	}

	doc := export.NewDocument(result, *year, time.Now())
	switch f {
	case export.FormatText:
		return export.WriteText(os.Stdout, doc, export.MatchLanguage(*lang))
	case export.FormatCSV:
		return export.WriteCSV(os.Stdout, result.Calendar)
	default:
		return export.WriteJSON(os.Stdout, doc)
	}
}
