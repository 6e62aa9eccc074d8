// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings for the certrun server.
type Config struct {
	// Addr is the listen address for the HTTP server. Default: ":8080".
	Addr string

	// DBPath overrides the SQLite database location. Empty means the
	// store resolves its own default.
	DBPath string

	// CORSOrigins lists the origins allowed to call the API.
	// Default: all origins.
	CORSOrigins []string

	// SessionSize is the number of questions in a practice session.
	// Zero means the practice service default.
	SessionSize int

	// LogLevel selects logging verbosity.
	// Values: "debug", "info", "warn", "error". Default: "info".
	LogLevel string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Addr:        ":8080",
		CORSOrigins: []string{"*"},
		LogLevel:    "info",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Default()

	if a := os.Getenv("CERTRUN_ADDR"); a != "" {
		cfg.Addr = a
	}
	if p := os.Getenv("CERTRUN_DB"); p != "" {
		cfg.DBPath = p
	}
	if o := os.Getenv("CERTRUN_CORS_ORIGINS"); o != "" {
		if origins := splitOrigins(o); len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}
	if s := os.Getenv("CERTRUN_SESSION_SIZE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("CERTRUN_SESSION_SIZE must be a positive integer, got %q", s)
		}
		cfg.SessionSize = n
	}
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		cfg.LogLevel = l
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, trimming
// whitespace and dropping empty entries.
func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
