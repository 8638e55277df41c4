package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// CORSOrigins lists the origins allowed to call the API. Empty
	// means allow any origin, which is only sensible in development.
	CORSOrigins []string

	// ReportMarkup is the revenue multiplier assumed for recipes that
	// have no recorded selling price. It used to be a hard-coded 3x
	// inside the report queries.
	ReportMarkup float64
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to Docker secret files and then to
// development defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getValue("SERVER_PORT", "server_port", "8080"),
		ServerHost: getValue("SERVER_HOST", "server_host", "0.0.0.0"),

		DBHost:     getValue("DB_HOST", "db_host", "localhost"),
		DBPort:     getValue("DB_PORT", "db_port", "5432"),
		DBUser:     getValue("DB_USER", "db_user", "postgres"),
		DBPassword: getValue("DB_PASSWORD", "db_password", ""),
		DBName:     getValue("DB_NAME", "db_name", "costbook"),
		DBSSLMode:  getValue("DB_SSL_MODE", "db_ssl_mode", "disable"),

		RedisHost:     getValue("REDIS_HOST", "redis_host", "localhost"),
		RedisPort:     getValue("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: getValue("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getValue("REDIS_URL", "redis_url", ""),
		RedisDB:       0,
	}

	if origins := getValue("CORS_ORIGINS", "cors_origins", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	markup := getValue("REPORT_MARKUP", "report_markup", "3")
	parsed, err := strconv.ParseFloat(markup, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_MARKUP %q: %w", markup, err)
	}
	cfg.ReportMarkup = parsed

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getValue resolves a config value from an environment variable, then a
// Docker secret file, then a default.
func getValue(envVar, secretName, fallback string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	if value := readSecret(secretName); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
