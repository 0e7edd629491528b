package config

import (
	"testing"
	"time"

	"clientlogin/internal/clientlogin"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLIENTLOGIN_ENDPOINT", "")
	t.Setenv("CLIENTLOGIN_SOURCE", "")
	t.Setenv("CLIENTLOGIN_TIMEOUT", "")

	cfg := Load()

	if cfg.Endpoint != clientlogin.Endpoint {
		t.Fatalf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Source != clientlogin.DefaultSource {
		t.Fatalf("expected default source, got %q", cfg.Source)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.Timeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLIENTLOGIN_ENDPOINT", "http://127.0.0.1:8080/ClientLogin")
	t.Setenv("CLIENTLOGIN_SOURCE", "example-app-1")
	t.Setenv("CLIENTLOGIN_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Endpoint != "http://127.0.0.1:8080/ClientLogin" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.Source != "example-app-1" {
		t.Fatalf("unexpected source %q", cfg.Source)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Timeout)
	}
}

func TestLoadTimeoutAsSeconds(t *testing.T) {
	t.Setenv("CLIENTLOGIN_TIMEOUT", "10")

	if cfg := Load(); cfg.Timeout != 10*time.Second {
		t.Fatalf("expected bare integer to mean seconds, got %s", cfg.Timeout)
	}
}
