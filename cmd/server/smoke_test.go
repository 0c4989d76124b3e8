package main

import (
	"os"
	"testing"

	"github.com/go-resty/resty/v2"
)

// TestHealthEndpoint probes a running server. Set WORKFLOWHQ_BASE_URL to
// run it against a deployed instance.
func TestHealthEndpoint(t *testing.T) {
	baseURL := os.Getenv("WORKFLOWHQ_BASE_URL")
	if baseURL == "" {
		t.Skip("WORKFLOWHQ_BASE_URL not set")
	}

	client := resty.New()
	client.SetBaseURL(baseURL)

	resp, err := client.R().Get("/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode())
	}
}
