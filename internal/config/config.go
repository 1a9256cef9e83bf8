package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds defaults for the command line front end. Flags override every field.
type Config struct {
	SeatWind      string
	PrevalentWind string
	LogLevel      string
	LogFile       string
	CacheSize     int
}

const (
	defaultWind      = "e"
	defaultLogLevel  = "info"
	defaultCacheSize = 256
)

// Load reads an optional .env file, then the MAHC_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cacheSize := defaultCacheSize
	if raw := strings.TrimSpace(os.Getenv("MAHC_CACHE_SIZE")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("MAHC_CACHE_SIZE must be a positive integer, got %q", raw)
		}
		cacheSize = v
	}

	return &Config{
		SeatWind:      firstNonEmpty(strings.TrimSpace(os.Getenv("MAHC_SEAT")), defaultWind),
		PrevalentWind: firstNonEmpty(strings.TrimSpace(os.Getenv("MAHC_PREV")), defaultWind),
		LogLevel:      firstNonEmpty(strings.TrimSpace(os.Getenv("MAHC_LOG_LEVEL")), defaultLogLevel),
		LogFile:       strings.TrimSpace(os.Getenv("MAHC_LOG_FILE")),
		CacheSize:     cacheSize,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
