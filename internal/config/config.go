// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL *url.URL

	// Logging
	GinMode   string
	LogFormat string

	// Database
	DatabasePath string

	// Router
	CORSAllowOrigins []string
	EnablePprof      bool

	// Optional YAML file with the classification hierarchy to create on startup
	SeedFile string
}

// Load reads the configuration. Variables from a .env file in the working
// directory are used if they are not set in the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080"))
	if err != nil {
		return nil, fmt.Errorf("could not parse API_URL: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		APIURL:           apiURL,
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		DatabasePath:     getEnv("DATABASE_PATH", filepath.Join("data", "dds.db")),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
		SeedFile:         os.Getenv("SEED_FILE"),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL.Scheme != "http" && c.APIURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API_URL scheme '%s': must be 'http' or 'https'", c.APIURL.Scheme))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DatabasePath == "" {
		errors = append(errors, "DATABASE_PATH cannot be empty")
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			errors = append(errors, fmt.Sprintf("seed file '%s' cannot be read: %v", c.SeedFile, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// HumanLogs reports if logs are written for humans instead of as JSON.
// Without explicit LOG_FORMAT, debug mode logs for humans.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
