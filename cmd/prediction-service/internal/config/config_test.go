package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMustLoadByPath_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("env: test\nmodel:\n  base_url: http://model:8000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := MustLoadByPath(path)
	if cfg.Env != "test" || cfg.Model.BaseURL != "http://model:8000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.CruiseSpeedKmh != 880 || cfg.PredictionCacheTTL != 30*time.Minute {
		t.Fatalf("unexpected defaults: cruise=%v ttl=%v", cfg.CruiseSpeedKmh, cfg.PredictionCacheTTL)
	}
	if cfg.AirportDirectory.Address() != "localhost:44045" {
		t.Fatalf("unexpected airport-directory address: %s", cfg.AirportDirectory.Address())
	}
}

func TestDSN(t *testing.T) {
	if got := (DBConfig{}).DSN(); got != "" {
		t.Fatalf("expected empty dsn, got %q", got)
	}

	got := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "ff", SSLMode: "disable"}.DSN()
	if got != "postgres://u:p@db:5432/ff?sslmode=disable" {
		t.Fatalf("unexpected dsn: %s", got)
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "UTC"}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("unexpected location: %v %v", loc, err)
	}

	cfg.Timezone = "Mars/Olympus"
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
