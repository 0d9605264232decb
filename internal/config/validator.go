package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty for the service to start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// RecommendedEnvVars maps optional variables to what is lost without them
var RecommendedEnvVars = map[string]string{
	"GITHUB_TOKEN": "contribution calendars cannot be fetched and REST calls share the anonymous rate limit",
}

// exampleValues are the placeholders shipped in .env.example
var exampleValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// ValidateEnv checks the schema version and that every required variable is set.
func ValidateEnv() error {
	version := os.Getenv("ENV_SCHEMA_VERSION")
	if version == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - add it to your .env file (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if version != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports, in a stable
// order, example placeholders left in place and recommended variables that
// are unset.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range sortedKeys(exampleValues) {
		if os.Getenv(key) == exampleValues[key] {
			warnings = append(warnings, key+" is still the example value - generate a real one (e.g. openssl rand -hex 32)")
		}
	}
	for _, key := range sortedKeys(RecommendedEnvVars) {
		if os.Getenv(key) == "" {
			warnings = append(warnings, key+" is not set - "+RecommendedEnvVars[key])
		}
	}
	return warnings, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
