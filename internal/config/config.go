package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the poller and API services
type Config struct {
	// Upstream
	BaseURL     string
	HTTPTimeout time.Duration

	// Database
	DatabasePath string

	// Real-time polling
	PollInterval      time.Duration
	RetentionDuration time.Duration

	// Serving
	MetricsAddr string
	Port        string
	CORSOrigins []string
}

// fileConfig is the optional YAML file named by SEPTA_CONFIG_FILE. Its
// values replace the built-in defaults; environment variables still win.
type fileConfig struct {
	BaseURL            string `yaml:"base_url"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	DatabasePath       string `yaml:"database"`
	PollSeconds        int    `yaml:"poll_interval_seconds"`
	RetentionHours     int    `yaml:"retention_hours"`
	MetricsAddr        string `yaml:"metrics_addr"`
	Port               string `yaml:"port"`
	CORSOrigins        string `yaml:"cors_origins"`
}

func defaults() fileConfig {
	return fileConfig{
		BaseURL:            "https://www3.septa.org/api",
		HTTPTimeoutSeconds: 15,
		DatabasePath:       "/data/septa.db",
		PollSeconds:        30,
		RetentionHours:     6,
		MetricsAddr:        ":9102",
		Port:               "8081",
		CORSOrigins:        "http://localhost:5173",
	}
}

// LoadDotEnv loads .env-style files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadDotEnv(paths ...string) {
	for i, path := range paths {
		if i == 0 {
			_ = godotenv.Load(path)
			continue
		}
		_ = godotenv.Overload(path) // Overload forces override of existing values
	}
}

// Load reads configuration from the optional YAML file and environment
// variables with sensible defaults
func Load() (*Config, error) {
	def := defaults()
	fc := def

	if path := os.Getenv("SEPTA_CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		// Upstream
		BaseURL:     getEnv("SEPTA_BASE_URL", fc.BaseURL),
		HTTPTimeout: time.Duration(getEnvPositive("HTTP_TIMEOUT", fc.HTTPTimeoutSeconds, def.HTTPTimeoutSeconds)) * time.Second,

		// Database
		DatabasePath: getEnv("SQLITE_DATABASE", fc.DatabasePath),

		// Real-time polling
		PollInterval:      time.Duration(getEnvPositive("POLL_INTERVAL", fc.PollSeconds, def.PollSeconds)) * time.Second,
		RetentionDuration: time.Duration(getEnvPositive("RETENTION_HOURS", fc.RetentionHours, def.RetentionHours)) * time.Hour,

		// Serving
		MetricsAddr: getEnv("METRICS_ADDR", fc.MetricsAddr),
		Port:        getEnv("PORT", fc.Port),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", fc.CORSOrigins)),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvPositive is getEnvInt for settings that must be above zero, such as
// the ticker interval. A non-positive value at either layer is ignored.
func getEnvPositive(key string, fileValue, defaultValue int) int {
	if fileValue <= 0 {
		fileValue = defaultValue
	}
	if value := getEnvInt(key, fileValue); value > 0 {
		return value
	}
	return fileValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
