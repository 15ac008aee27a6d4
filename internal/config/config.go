package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	APIPrefix   string `json:"api_prefix"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Upstream estimation API
	EstimateBaseURL        string `json:"estimate_base_url"`
	EstimateTimeoutSeconds int    `json:"estimate_timeout_seconds"`

	// AI / LLM
	AnthropicAPIKey  string `json:"anthropic_api_key"`
	AnthropicBaseURL string `json:"anthropic_base_url"` // override for custom proxy
	AnthropicModel   string `json:"anthropic_model"`
	AgentTimeout     int    `json:"agent_timeout"`
}

// EstimateTimeout returns the upstream call timeout as a duration.
func (c *Config) EstimateTimeout() time.Duration {
	if c.EstimateTimeoutSeconds <= 0 {
		return DefaultEstimateTimeout
	}
	return time.Duration(c.EstimateTimeoutSeconds) * time.Second
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:                   DefaultHost,
		Port:                   DefaultPort,
		Environment:            DefaultEnvironment,
		APIPrefix:              DefaultAPIPrefix,
		LogLevel:               DefaultLogLevel,
		CORSOrigins:            DefaultCORSOrigins,
		EstimateBaseURL:        DefaultEstimateBaseURL,
		EstimateTimeoutSeconds: int(DefaultEstimateTimeout / time.Second),
		AgentTimeout:           DefaultAgentTimeout,
	}

	// Load from JSON config file if specified
	if path := getEnv("ESTIMMO_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("ESTIMMO_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("ESTIMMO_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("ESTIMMO_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("ESTIMMO_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("ESTIMMO_CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := getEnv("ESTIMATE_API_BASE_URL", ""); v != "" {
		cfg.EstimateBaseURL = v
	}
	if v := getEnv("ESTIMATE_TIMEOUT_SECONDS", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.EstimateTimeoutSeconds = t
		}
	}
	if v := getEnv("ANTHROPIC_API_KEY", ""); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := getEnv("ANTHROPIC_BASE_URL", ""); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := getEnv("ANTHROPIC_MODEL", ""); v != "" {
		cfg.AnthropicModel = v
	}
	if v := getEnv("ESTIMMO_AGENT_TIMEOUT", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.AgentTimeout = t
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
