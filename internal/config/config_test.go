package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MAHC_SEAT", "MAHC_PREV", "MAHC_LOG_LEVEL", "MAHC_LOG_FILE", "MAHC_CACHE_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "e", cfg.SeatWind)
	assert.Equal(t, "e", cfg.PrevalentWind)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 256, cfg.CacheSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MAHC_SEAT", "s")
	t.Setenv("MAHC_PREV", "w")
	t.Setenv("MAHC_LOG_LEVEL", "debug")
	t.Setenv("MAHC_LOG_FILE", "logs/mahc.log")
	t.Setenv("MAHC_CACHE_SIZE", "16")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s", cfg.SeatWind)
	assert.Equal(t, "w", cfg.PrevalentWind)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "logs/mahc.log", cfg.LogFile)
	assert.Equal(t, 16, cfg.CacheSize)
}

func TestLoad_BadCacheSize(t *testing.T) {
	t.Setenv("MAHC_CACHE_SIZE", "lots")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MAHC_CACHE_SIZE", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "  ", "b", "c"))
	assert.Empty(t, firstNonEmpty("", " "))
}
