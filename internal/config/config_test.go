package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PACEBOARD_DB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "2025-2026", cfg.SchoolYear)
	assert.Equal(t, 8.0, cfg.MinZonePct)
	assert.False(t, cfg.LogEvents)
	assert.True(t, cfg.Today.IsZero())
	assert.Contains(t, cfg.DBPath, ".paceboard")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PACEBOARD_DB", "/tmp/pb.db")
	t.Setenv("PACEBOARD_SCHOOL_YEAR", "2026-2027")
	t.Setenv("PACEBOARD_LOG_EVENTS", "true")
	t.Setenv("PACEBOARD_MIN_ZONE_PCT", "5.5")
	t.Setenv("PACEBOARD_TODAY", "2026-01-15")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pb.db", cfg.DBPath)
	assert.Equal(t, "2026-2027", cfg.SchoolYear)
	assert.True(t, cfg.LogEvents)
	assert.Equal(t, 5.5, cfg.MinZonePct)
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), cfg.Now())
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PACEBOARD_DB", "/tmp/pb.db")
	t.Setenv("PACEBOARD_MIN_ZONE_PCT", "lots")
	t.Setenv("PACEBOARD_TODAY", "15/01/2026")
	t.Setenv("PACEBOARD_LOG_EVENTS", "maybe")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.MinZonePct)
	assert.True(t, cfg.Today.IsZero())
	assert.False(t, cfg.LogEvents)
}

func TestLoadConfig_MinZonePctOutOfRangeIgnored(t *testing.T) {
	t.Setenv("PACEBOARD_DB", "/tmp/pb.db")
	t.Setenv("PACEBOARD_MIN_ZONE_PCT", "75")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.MinZonePct)
}
