// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr              string `yaml:"addr"`
	CORSAllowedOrigin string `yaml:"cors_allowed_origin"`
	MaxUploadBytes    int64  `yaml:"max_upload_bytes"`
	MetricsEnabled    bool   `yaml:"metrics_enabled"`
}

func Default() Config {
	return Config{
		Addr:              ":8080",
		CORSAllowedOrigin: "*",
		MaxUploadBytes:    256 << 20,
		MetricsEnabled:    true,
	}
}

// Load reads the YAML file at path when it is non-empty, then applies
// environment overrides. A missing path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Addr = getEnv("NEUROSCOPE_ADDR", cfg.Addr)
	cfg.CORSAllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", cfg.CORSAllowedOrigin)

	if raw := os.Getenv("NEUROSCOPE_MAX_UPLOAD"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
