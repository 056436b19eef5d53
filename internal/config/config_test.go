package config

import (
	"reflect"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "ENV", "DB_DRIVER", "DB_DSN", "LOG_LEVEL", "LOG_FILE",
		"SENTRY_DSN", "RATE_LIMIT_PER_MIN", "RECENT_LIMIT_MAX", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.RateLimitPerMin != 30 || cfg.RecentLimitMax != 100 {
		t.Fatalf("limits = %d/%d", cfg.RateLimitPerMin, cfg.RecentLimitMax)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://localhost:3000"}) {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("RATE_LIMIT_PER_MIN", "0")
	t.Setenv("RECENT_LIMIT_MAX", "oops")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg := FromEnv()
	if cfg.DBDriver != "postgres" {
		t.Fatalf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.RateLimitPerMin != 0 {
		t.Fatalf("RateLimitPerMin = %d, want 0", cfg.RateLimitPerMin)
	}
	if cfg.RecentLimitMax != 100 {
		t.Fatalf("bad int should fall back to default, got %d", cfg.RecentLimitMax)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}
