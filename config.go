package goRedirect

import (
	"errors"
	"strings"
	"time"
)

// Config carries every tunable of the redirect engine. Instances are
// intended to be configured during initialization and then treated as
// immutable.
type Config struct {
	Resolve      ResolveConfig
	Destinations DestinationConfig
	Session      SessionConfig
	Audit        AuditConfig
	Metrics      MetricsConfig
}

/*
====================================
RESOLVE CONFIG
====================================
*/

// ResolveConfig bounds the role polling loop. Attempts 1 through
// BackoffRampAfter sleep InitialInterval after a miss; later attempts
// multiply the interval, capped at BackoffMaxFactor times the base.
type ResolveConfig struct {
	MaxAttempts      int
	InitialInterval  time.Duration
	BackoffRampAfter int
	BackoffMaxFactor int
}

/*
====================================
DESTINATION CONFIG
====================================
*/

// DestinationConfig maps role names to post-login paths. Fallback is the
// lowest-privilege destination used for unresolved and unknown roles.
type DestinationConfig struct {
	Routes   map[string]string
	Fallback string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls the Redis-backed session record layout.
type SessionConfig struct {
	RedisPrefix string
	SessionTTL  time.Duration
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process atomic metrics.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration preloaded by [New].
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Resolve: ResolveConfig{
			MaxAttempts:      15,
			InitialInterval:  200 * time.Millisecond,
			BackoffRampAfter: 5,
			BackoffMaxFactor: 3,
		},
		Destinations: DestinationConfig{
			Routes: map[string]string{
				"SUPER_ADMIN": "/admin",
				"ADMIN":       "/admin",
				"TECHNICIAN":  "/technician",
				"CUSTOMER":    "/dashboard",
			},
			Fallback: "/dashboard",
		},
		Session: SessionConfig{
			RedisPrefix: "rr",
			SessionTTL:  24 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Destinations.Routes != nil {
		out.Destinations.Routes = make(map[string]string, len(cfg.Destinations.Routes))
		for k, v := range cfg.Destinations.Routes {
			out.Destinations.Routes[k] = v
		}
	}
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks the configuration for internal consistency. It is called
// by [Builder.Build] and may be called directly by embedders.
func (c *Config) Validate() error {
	// Resolve
	if c.Resolve.MaxAttempts <= 0 {
		return errors.New("Resolve MaxAttempts must be > 0")
	}
	if c.Resolve.InitialInterval <= 0 {
		return errors.New("Resolve InitialInterval must be > 0")
	}
	if c.Resolve.BackoffRampAfter <= 0 {
		return errors.New("Resolve BackoffRampAfter must be > 0")
	}
	if c.Resolve.BackoffMaxFactor < 1 {
		return errors.New("Resolve BackoffMaxFactor must be >= 1")
	}

	// Destinations
	if len(c.Destinations.Routes) == 0 {
		return errors.New("Destinations Routes must not be empty")
	}
	if !strings.HasPrefix(c.Destinations.Fallback, "/") {
		return errors.New("Destinations Fallback must be an absolute path")
	}
	for name, path := range c.Destinations.Routes {
		if strings.TrimSpace(name) == "" {
			return errors.New("Destinations Routes contains an empty role name")
		}
		if !strings.HasPrefix(path, "/") {
			return errors.New("Destinations Routes paths must be absolute")
		}
	}

	// Session
	if c.Session.RedisPrefix == "" {
		return errors.New("Session RedisPrefix must not be empty")
	}
	if c.Session.SessionTTL <= 0 {
		return errors.New("Session SessionTTL must be > 0")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
