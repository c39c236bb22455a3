package goRedirect

import (
	"context"

	"github.com/MrEthical07/goRedirect/role"
	"github.com/MrEthical07/goRedirect/session"
)

// Engine resolves the post-login role for a principal and issues exactly
// one redirect per login attempt. Construct it with [Builder]; a built
// Engine is immutable and safe for concurrent use.
type Engine struct {
	config       Config
	registry     *role.Registry
	sessionStore *session.Store
	roleSource   RoleSource
	router       Router
	audit        *auditDispatcher
	metrics      *Metrics
}

// Close stops the audit dispatcher after draining queued events.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// dispatch buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all metrics.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// Registry exposes the frozen role-to-destination mapping.
func (e *Engine) Registry() *role.Registry {
	if e == nil {
		return nil
	}
	return e.registry
}

// SessionStore exposes the Redis session store, or nil when the Engine was
// built with a custom role source.
func (e *Engine) SessionStore() *session.Store {
	if e == nil {
		return nil
	}
	return e.sessionStore
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// ResolveRole polls for the principal's role and returns the finalized
// [RedirectDecision] without navigating. An unresolved role is not an
// error; the decision carries the fallback path.
func (e *Engine) ResolveRole(ctx context.Context, principal Principal) (*RedirectDecision, error) {
	if e == nil || e.roleSource == nil {
		return nil, ErrEngineNotReady
	}
	if principal.SessionID == "" {
		return nil, ErrInvalidPrincipal
	}
	return e.resolveDecision(ctx, principal)
}

// ResolveAndRedirect resolves the role and navigates the configured Router
// to the decided path. The Router is invoked exactly once, and never when
// ctx is torn down before the decision lands.
func (e *Engine) ResolveAndRedirect(ctx context.Context, principal Principal) (*RedirectDecision, error) {
	if e == nil || e.roleSource == nil {
		return nil, ErrEngineNotReady
	}
	if e.router == nil {
		return nil, ErrRouterRequired
	}
	return e.resolveAndRedirect(ctx, principal, e.router)
}

// ResolveAndRedirectUsing is [Engine.ResolveAndRedirect] with a
// per-call Router, for hosts that bind navigation to a request.
func (e *Engine) ResolveAndRedirectUsing(ctx context.Context, principal Principal, router Router) (*RedirectDecision, error) {
	if e == nil || e.roleSource == nil {
		return nil, ErrEngineNotReady
	}
	if router == nil {
		return nil, ErrRouterRequired
	}
	return e.resolveAndRedirect(ctx, principal, router)
}
