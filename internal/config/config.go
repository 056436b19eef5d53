package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	Env      string // dev|prod

	DBDriver string // sqlite|postgres
	DBDSN    string

	LogLevel string
	LogFile  string // optional; rotated JSON log next to stdout

	SentryDSN string

	RateLimitPerMin int // POST submissions per client; 0 disables
	RecentLimitMax  int // cap for ?limit= on list/export endpoints

	CORSOrigins []string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		Env:             envOr("ENV", "dev"),
		DBDriver:        envOr("DB_DRIVER", "sqlite"),
		DBDSN:           envOr("DB_DSN", ""),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		SentryDSN:       os.Getenv("SENTRY_DSN"),
		RateLimitPerMin: envInt("RATE_LIMIT_PER_MIN", 30),
		RecentLimitMax:  envInt("RECENT_LIMIT_MAX", 100),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
