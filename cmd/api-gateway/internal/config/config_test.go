package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMustLoadByPath_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("env: test\nhttp:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := MustLoadByPath(path)
	if cfg.HTTP.Port != 9090 || cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected http config: %+v", cfg.HTTP)
	}
	if cfg.Clients.Prediction.Address != "localhost:44046" || cfg.Clients.Airport.SyncTimeout != time.Minute {
		t.Fatalf("unexpected clients config: %+v", cfg.Clients)
	}
	if cfg.Tracing.Disabled || cfg.Tracing.SampleRatio != 1 {
		t.Fatalf("unexpected tracing config: %+v", cfg.Tracing)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}
