package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // API key for authentication
	TrustedProxies []string

	// GitHub access
	GitHubToken         string
	GitHubAPIURL        string
	GitHubTimeout       time.Duration
	GitHubCacheSize     int
	GitHubCacheTTL      time.Duration
	CalendarCacheTTL    time.Duration
	LanguageConcurrency int

	// Background auto-save of fetched profiles
	AutoSaveWorkers   int
	AutoSaveQueueSize int

	// Retention of ownerless snapshots; zero disables pruning
	SnapshotRetention     time.Duration
	SnapshotPruneInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "gitfolio"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		GitHubToken:         getEnv("GITHUB_TOKEN", ""),
		GitHubAPIURL:        getEnv("GITHUB_API_URL", ""),
		GitHubTimeout:       getEnvAsDuration("GITHUB_TIMEOUT", DefaultGitHubTimeout),
		GitHubCacheSize:     getEnvAsInt("GITHUB_CACHE_SIZE", DefaultGitHubCacheSize),
		GitHubCacheTTL:      getEnvAsDuration("GITHUB_CACHE_TTL", DefaultGitHubCacheTTL),
		CalendarCacheTTL:    getEnvAsDuration("CALENDAR_CACHE_TTL", DefaultCalendarCacheTTL),
		LanguageConcurrency: getEnvAsInt("LANGUAGE_FETCH_CONCURRENCY", DefaultLanguageConcurrency),

		AutoSaveWorkers:   getEnvAsInt("AUTOSAVE_WORKERS", DefaultAutoSaveWorkers),
		AutoSaveQueueSize: getEnvAsInt("AUTOSAVE_QUEUE_SIZE", DefaultAutoSaveQueueSize),

		SnapshotRetention:     getEnvAsDuration("SNAPSHOT_RETENTION", DefaultSnapshotRetention),
		SnapshotPruneInterval: getEnvAsDuration("SNAPSHOT_PRUNE_INTERVAL", DefaultSnapshotPruneInterval),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
