//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestReadiness(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/readyz", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var health struct {
		Status string `json:"status"`
		GitHub string `json:"github"`
	}
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if health.GitHub != "token" {
		t.Errorf("Expected staging to run with a GitHub token, got %q", health.GitHub)
	}
}
