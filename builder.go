package goRedirect

import (
	"errors"

	"github.com/MrEthical07/goRedirect/role"
	"github.com/MrEthical07/goRedirect/session"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. Configure it with the With* methods and
// call Build exactly once.
type Builder struct {
	config Config
	redis  *redis.Client

	roleSource RoleSource
	router     Router
	auditSink  AuditSink

	built bool
}

// New returns a Builder preloaded with [defaultConfig] values.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the entire configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis sets the Redis client backing the session store.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithRoleSource overrides the Redis-backed session store with a custom
// role source. When set, a Redis client is not required.
func (b *Builder) WithRoleSource(src RoleSource) *Builder {
	b.roleSource = src
	return b
}

// WithRouter sets the default navigation collaborator used by
// [Engine.ResolveAndRedirect].
func (b *Builder) WithRouter(r Router) *Builder {
	b.router = r
	return b
}

// WithAuditSink sets the destination for audit events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process metrics system.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the resolution latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and assembles the Engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.redis == nil && b.roleSource == nil {
		return nil, errors.New("redis client or role source required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- ROLE REGISTRY --------
	registry, err := role.NewRegistry(cfg.Destinations.Fallback)
	if err != nil {
		return nil, err
	}

	for name, path := range cfg.Destinations.Routes {
		if err := registry.Register(role.Normalize(name), path); err != nil {
			return nil, err
		}
	}

	registry.Freeze()

	engine := &Engine{
		config:   cloneConfig(cfg),
		registry: registry,
		router:   b.router,
	}

	// -------- ROLE SOURCE --------
	if b.roleSource != nil {
		engine.roleSource = b.roleSource
	} else {
		store := session.NewStore(b.redis, cfg.Session.RedisPrefix)
		engine.sessionStore = store
		engine.roleSource = session.NewStoreSource(store)
	}

	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return engine, nil
}
