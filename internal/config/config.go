// Package config loads and validates the travel planner configuration from
// environment variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Guide sources selectable through GUIDE_SOURCE.
const (
	GuideSourceMemory   = "memory"
	GuideSourceFile     = "file"
	GuideSourcePostgres = "postgres"
)

// DefaultPlannerTimeout bounds one call to the planning endpoint. Itinerary
// generation upstream is slow, so this is generous.
const DefaultPlannerTimeout = 60 * time.Second

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel is one of debug, info, warn, error. Defaults to "info".
	LogLevel string

	// CORSOrigins lists allowed cross-origin page origins (CORS_ORIGINS,
	// comma-separated). Defaults to the local dev page.
	CORSOrigins []string

	// PlannerURL is the base URL of the remote trip-planning service. Required.
	PlannerURL string

	// PlannerTimeout bounds one planning call (PLANNER_TIMEOUT, Go duration).
	PlannerTimeout time.Duration

	// GuideSource picks where destination guides come from:
	// memory (built-in tables), file (GUIDE_FILE) or postgres (DATABASE_URL).
	GuideSource string
	GuideFile   string
	DatabaseURL string

	// MaxBodyBytes caps request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// LoadDotEnv reads .env from the working directory into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config.LoadDotEnv: %w", err)
	}
	return nil
}

// Load reads .env (if present) and the environment and returns a Config.
// The error lists every required variable that is missing and every value
// that failed to parse.
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		PlannerURL:  strings.TrimRight(os.Getenv("PLANNER_URL"), "/"),
		GuideSource: strings.ToLower(getEnv("GUIDE_SOURCE", GuideSourceMemory)),
		GuideFile:   os.Getenv("GUIDE_FILE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var missing, invalid []string

	if cfg.PlannerURL == "" {
		missing = append(missing, "PLANNER_URL")
	}

	switch cfg.GuideSource {
	case GuideSourceMemory:
	case GuideSourceFile:
		if cfg.GuideFile == "" {
			missing = append(missing, "GUIDE_FILE")
		}
	case GuideSourcePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		invalid = append(invalid, fmt.Sprintf("GUIDE_SOURCE=%q (want memory, file or postgres)", cfg.GuideSource))
	}

	timeout, err := time.ParseDuration(getEnv("PLANNER_TIMEOUT", DefaultPlannerTimeout.String()))
	if err != nil || timeout <= 0 {
		invalid = append(invalid, "PLANNER_TIMEOUT")
	}
	cfg.PlannerTimeout = timeout

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "65536"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
