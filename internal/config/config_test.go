package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "ENV", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "SEED_CATEGORIES"} {
			t.Setenv(k, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
		}
		if !cfg.SeedCategories {
			t.Error("expected seeding to default on")
		}
		if cfg.Addr() != ":8080" {
			t.Errorf("expected :8080, got %s", cfg.Addr())
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("ENV", "production")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("SEED_CATEGORIES", "false")

		cfg, _ := Load()
		if cfg.Port != "9000" || cfg.Env != "production" {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if cfg.ShutdownTimeout != 3*time.Second {
			t.Errorf("expected 3s, got %s", cfg.ShutdownTimeout)
		}
		if cfg.SeedCategories {
			t.Error("expected seeding to be off")
		}
	})

	t.Run("invalid_values_fall_back", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		t.Setenv("SEED_CATEGORIES", "maybe")

		cfg, _ := Load()
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected fallback to 10s, got %s", cfg.ShutdownTimeout)
		}
		if !cfg.SeedCategories {
			t.Error("expected fallback to true")
		}
	})
}
