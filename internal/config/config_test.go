package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CFG_INT", "42")
	if got := getEnvInt("CFG_INT", 7); got != 42 {
		t.Fatalf("getEnvInt returned %d, want 42", got)
	}

	t.Setenv("CFG_INT_BAD", "nope")
	if got := getEnvInt("CFG_INT_BAD", 7); got != 7 {
		t.Fatalf("getEnvInt returned %d, want fallback 7", got)
	}

	t.Setenv("CFG_INT_EMPTY", "")
	if got := getEnvInt("CFG_INT_EMPTY", 9); got != 9 {
		t.Fatalf("getEnvInt returned %d, want fallback 9", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("MIN_DATA_POINTS", "")
	t.Setenv("ANALYSIS_PERIOD_DAYS", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.CacheTTLSeconds != 3600 || cfg.MinDataPoints != 3 || cfg.AnalysisPeriodDays != 30 {
		t.Fatalf("insights defaults not applied: %+v", cfg)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("CACHE_TTL_SECONDS", "600")
	t.Setenv("MIN_DATA_POINTS", "5")
	t.Setenv("ANALYSIS_PERIOD_DAYS", "14")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.CacheTTLSeconds != 600 || cfg.MinDataPoints != 5 || cfg.AnalysisPeriodDays != 14 {
		t.Fatalf("insights env overrides missing: %+v", cfg)
	}
}
