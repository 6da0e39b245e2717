package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	UpstreamBaseURL string
	SessionSecret   string
	RedisURL        string
	DraftDBPath     string
	PageSize        int
	RequestTimeout  time.Duration
	UpstreamTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:3000"),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		DraftDBPath:     getEnv("DRAFT_DB_PATH", "opsdash.sqlite"),
		PageSize:        getInt("PAGE_SIZE", 10),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 15*time.Second),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
