// Package config loads paceboard settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/pacing"
)

// Config holds process-wide settings. CLI flags override these per command.
type Config struct {
	DBPath     string
	SchoolYear string
	LogEvents  bool
	MinZonePct float64
	// Today pins the evaluation date; zero means the wall clock.
	Today time.Time
}

// DefaultConfig returns a Config with sensible defaults. DBPath is left
// empty; DefaultDBPath resolves it lazily since it needs the home directory.
func DefaultConfig() Config {
	return Config{
		SchoolYear: "2025-2026",
		MinZonePct: pacing.DefaultMinZonePct,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or invalid values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PACEBOARD_DB"); v != "" {
		cfg.DBPath = v
	} else {
		p, err := DefaultDBPath()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = p
	}
	if v := os.Getenv("PACEBOARD_SCHOOL_YEAR"); v != "" {
		cfg.SchoolYear = v
	}
	if v := os.Getenv("PACEBOARD_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PACEBOARD_MIN_ZONE_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f < 50 {
			cfg.MinZonePct = f
		}
	}
	if v := os.Getenv("PACEBOARD_TODAY"); v != "" {
		if d, err := domain.ParseDate(v); err == nil {
			cfg.Today = d
		}
	}
	return cfg, nil
}

// DefaultDBPath is ~/.paceboard/paceboard.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".paceboard", "paceboard.db"), nil
}

// Now returns the pinned date when set, otherwise the current UTC date.
func (c Config) Now() time.Time {
	if !c.Today.IsZero() {
		return c.Today
	}
	return domain.DateOf(time.Now().UTC())
}
