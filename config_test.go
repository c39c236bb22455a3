package goRedirect

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Resolve.MaxAttempts != 15 {
		t.Fatalf("expected 15 max attempts, got %d", cfg.Resolve.MaxAttempts)
	}
	if cfg.Resolve.InitialInterval != 200*time.Millisecond {
		t.Fatalf("expected 200ms interval, got %v", cfg.Resolve.InitialInterval)
	}
	if cfg.Resolve.BackoffRampAfter != 5 {
		t.Fatalf("expected ramp after 5, got %d", cfg.Resolve.BackoffRampAfter)
	}
	if cfg.Resolve.BackoffMaxFactor != 3 {
		t.Fatalf("expected max factor 3, got %d", cfg.Resolve.BackoffMaxFactor)
	}
	if cfg.Destinations.Fallback != "/dashboard" {
		t.Fatalf("expected /dashboard fallback, got %q", cfg.Destinations.Fallback)
	}

	expected := map[string]string{
		"SUPER_ADMIN": "/admin",
		"ADMIN":       "/admin",
		"TECHNICIAN":  "/technician",
		"CUSTOMER":    "/dashboard",
	}
	for name, path := range expected {
		if got := cfg.Destinations.Routes[name]; got != path {
			t.Fatalf("route %s: expected %q, got %q", name, path, got)
		}
	}
	if len(cfg.Destinations.Routes) != len(expected) {
		t.Fatalf("unexpected extra routes: %v", cfg.Destinations.Routes)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"zero attempts", func(c *Config) { c.Resolve.MaxAttempts = 0 }, "MaxAttempts"},
		{"zero interval", func(c *Config) { c.Resolve.InitialInterval = 0 }, "InitialInterval"},
		{"zero ramp", func(c *Config) { c.Resolve.BackoffRampAfter = 0 }, "BackoffRampAfter"},
		{"zero factor", func(c *Config) { c.Resolve.BackoffMaxFactor = 0 }, "BackoffMaxFactor"},
		{"no routes", func(c *Config) { c.Destinations.Routes = nil }, "Routes"},
		{"relative fallback", func(c *Config) { c.Destinations.Fallback = "dashboard" }, "Fallback"},
		{"relative route", func(c *Config) { c.Destinations.Routes["ADMIN"] = "admin" }, "absolute"},
		{"empty role name", func(c *Config) { c.Destinations.Routes[" "] = "/x" }, "empty role"},
		{"empty prefix", func(c *Config) { c.Session.RedisPrefix = "" }, "RedisPrefix"},
		{"zero ttl", func(c *Config) { c.Session.SessionTTL = 0 }, "SessionTTL"},
		{"bad audit buffer", func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = 0 }, "BufferSize"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected message containing %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestCloneConfigDeepCopiesRoutes(t *testing.T) {
	cfg := DefaultConfig()
	clone := cloneConfig(cfg)

	clone.Destinations.Routes["ADMIN"] = "/elsewhere"
	if cfg.Destinations.Routes["ADMIN"] != "/admin" {
		t.Fatal("cloneConfig must deep-copy the route map")
	}
}

func TestBuilderRejectsReuse(t *testing.T) {
	b := New().WithRoleSource(&scriptedSource{})
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second build must fail")
	}
}

func TestBuilderRequiresBackend(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected error without redis or role source")
	}
}
