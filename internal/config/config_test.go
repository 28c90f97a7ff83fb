package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	c := Load()
	if c.Port != 8000 || c.HTTPAddr != ":8000" {
		t.Fatalf("port default: %d %q", c.Port, c.HTTPAddr)
	}
	if c.ServiceName != "bookshop-service" {
		t.Fatalf("ServiceName default: %q", c.ServiceName)
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.LogLevel != "info" {
		t.Fatalf("LogLevel default: %q", c.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVICE_NAME", "catalog")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("LOG_LEVEL", "DEBUG")
	c := Load()
	if c.Port != 9090 || c.HTTPAddr != ":9090" {
		t.Fatalf("port env: %d %q", c.Port, c.HTTPAddr)
	}
	if c.ServiceName != "catalog" {
		t.Fatalf("ServiceName env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.LogLevel != "debug" {
		t.Fatalf("LogLevel env: %q", c.LogLevel)
	}
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT", "-5")
	c := Load()
	if c.Port != 8000 {
		t.Fatalf("expected default port, got %d", c.Port)
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout, got %v", c.ShutdownTimeout)
	}
}

func TestLoadPortOutOfRange(t *testing.T) {
	for _, p := range []string{"0", "65536", "99999", "-1"} {
		t.Setenv("PORT", p)
		c := Load()
		if c.Port != 8000 || c.HTTPAddr != ":8000" {
			t.Fatalf("PORT=%s: expected default, got %d %q", p, c.Port, c.HTTPAddr)
		}
	}
	t.Setenv("PORT", "65535")
	if c := Load(); c.Port != 65535 {
		t.Fatalf("PORT=65535 should be accepted, got %d", c.Port)
	}
}
