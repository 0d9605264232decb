package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/gitfolio/internal/handler"
)

const (
	healthTimeout      = 5 * time.Second
	slowHealthResponse = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Query /readyz on a running server [base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := getEnv(envBaseURL, defaultBaseURL)
	if len(args) > 0 {
		base = args[0]
	}
	base = strings.TrimRight(base, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	start := time.Now()
	health, err := fetchReadiness(base)
	duration := time.Since(start)
	if err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}

	PrintInfo("GitHub access: %s", health.GitHub)
	if duration > slowHealthResponse {
		PrintWarning("Slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}

func fetchReadiness(base string) (handler.HealthResponse, error) {
	var health handler.HealthResponse

	client := &http.Client{Timeout: healthTimeout}
	resp, err := client.Get(base + "/readyz")
	if err != nil {
		return health, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return health, fmt.Errorf("decode readiness response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return health, fmt.Errorf("status %d: %s", resp.StatusCode, health.Message)
	}
	return health, nil
}
