package config_test

import (
	"testing"
	"time"

	"github.com/estimmo/estimmo/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.APIPrefix != "/api/v1" {
		t.Errorf("APIPrefix = %q, want /api/v1", cfg.APIPrefix)
	}
	if cfg.EstimateBaseURL != "https://estimation-immo.ams-investissements.fr" {
		t.Errorf("EstimateBaseURL = %q", cfg.EstimateBaseURL)
	}
	if cfg.EstimateTimeout() != 30*time.Second {
		t.Errorf("EstimateTimeout = %v, want 30s", cfg.EstimateTimeout())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ESTIMMO_PORT", "9090")
	t.Setenv("ESTIMMO_LOG_LEVEL", "debug")
	t.Setenv("ESTIMATE_API_BASE_URL", "http://localhost:4000")
	t.Setenv("ESTIMATE_TIMEOUT_SECONDS", "5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.EstimateBaseURL != "http://localhost:4000" {
		t.Errorf("EstimateBaseURL = %q, want http://localhost:4000", cfg.EstimateBaseURL)
	}
	if cfg.EstimateTimeout() != 5*time.Second {
		t.Errorf("EstimateTimeout = %v, want 5s", cfg.EstimateTimeout())
	}
}

func TestEstimateTimeoutFallback(t *testing.T) {
	cfg := &config.Config{EstimateTimeoutSeconds: 0}
	if cfg.EstimateTimeout() != 30*time.Second {
		t.Errorf("EstimateTimeout = %v, want the 30s default", cfg.EstimateTimeout())
	}
}
