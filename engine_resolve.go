package goRedirect

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MrEthical07/goRedirect/internal"
	"github.com/MrEthical07/goRedirect/internal/flows"
	"github.com/MrEthical07/goRedirect/role"
)

func (e *Engine) resolveDecision(ctx context.Context, principal Principal) (*RedirectDecision, error) {
	tenantID := principal.TenantID
	if tenantID == "" {
		tenantID = tenantIDFromContext(ctx)
	}

	resolutionID := ""
	if rid, err := internal.NewResolveID(); err == nil {
		resolutionID = rid.String()
	}

	deps := flows.ResolveDeps{
		MaxAttempts:      e.config.Resolve.MaxAttempts,
		InitialInterval:  e.config.Resolve.InitialInterval,
		BackoffRampAfter: e.config.Resolve.BackoffRampAfter,
		BackoffMaxFactor: e.config.Resolve.BackoffMaxFactor,

		ReadSessionRole: func(ctx context.Context) (string, error) {
			raw, err := e.roleSource.ReadRole(ctx, tenantID, principal.SessionID)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
			}
			return raw, nil
		},
		PrincipalRole: func() string { return principal.Role },
		NormalizeRole: func(raw string) string { return role.Normalize(raw).String() },

		MetricInc: func(id int) { e.metricInc(MetricID(id)) },
		Observe: func(d time.Duration) {
			if e.metrics != nil {
				e.metrics.Observe(MetricResolveLatency, d)
			}
		},
		EmitAudit: func(ctx context.Context, eventType string, success bool, err error, md func() map[string]string) {
			e.emitAudit(ctx, eventType, success, resolutionID, principal.UserID, tenantID, principal.SessionID, err, md)
		},

		Metrics: flows.ResolveMetrics{
			Attempt:      int(MetricResolveAttempt),
			SessionHit:   int(MetricResolveSessionHit),
			PrincipalHit: int(MetricResolvePrincipalHit),
			Unresolved:   int(MetricResolveUnresolved),
			Cancelled:    int(MetricResolveCancelled),
			StoreError:   int(MetricResolveStoreError),
		},
		Events: flows.ResolveEvents{
			Started:           auditEventResolveStarted,
			Attempt:           auditEventPollAttempt,
			Success:           auditEventResolveSuccess,
			Unresolved:        auditEventResolveUnresolved,
			Cancelled:         auditEventResolveCancelled,
			SessionReadFailed: auditEventSessionReadFailed,
		},
		Errors: flows.ResolveErrors{
			EngineNotReady: ErrEngineNotReady,
			RoleUnresolved: ErrRoleUnresolved,
		},
	}

	res, err := flows.RunResolveRole(ctx, deps)
	if err != nil {
		return nil, err
	}

	decision := &RedirectDecision{
		ResolutionID: resolutionID,
		Source:       Source(res.Source),
		Attempts:     res.Attempts,
		Resolved:     res.Resolved,
		Elapsed:      res.Elapsed,
	}

	if res.Cancelled {
		decision.Source = SourceNone
		return decision, ctx.Err()
	}

	if !res.Resolved {
		decision.Path = e.registry.Fallback()
		return decision, nil
	}

	decision.Role = role.Role(res.Role)
	path, ok := e.registry.Destination(decision.Role)
	if !ok {
		// Resolved to a value outside the closed set. Treated as the
		// lowest-privilege outcome rather than an error.
		e.metricInc(MetricRoleUnknown)
		e.emitAudit(ctx, auditEventResolveSuccess, false, resolutionID, principal.UserID, tenantID, principal.SessionID, ErrRoleUnknown, func() map[string]string {
			return map[string]string{
				"role": res.Role,
			}
		})
		path = e.registry.Fallback()
	}
	decision.Path = path

	return decision, nil
}

func (e *Engine) resolveAndRedirect(ctx context.Context, principal Principal, router Router) (*RedirectDecision, error) {
	if principal.SessionID == "" {
		return nil, ErrInvalidPrincipal
	}

	decision, err := e.resolveDecision(ctx, principal)
	if err != nil {
		return decision, err
	}

	if navErr := router.Navigate(ctx, decision.Path); navErr != nil {
		e.metricInc(MetricRedirectFailed)
		e.emitAudit(ctx, auditEventRedirectFailed, false, decision.ResolutionID, principal.UserID, principal.TenantID, principal.SessionID, ErrNavigationFailed, func() map[string]string {
			return map[string]string{
				"path": decision.Path,
			}
		})
		return decision, fmt.Errorf("%w: %v", ErrNavigationFailed, navErr)
	}

	decision.Redirected = true
	e.metricInc(MetricRedirectIssued)
	e.emitAudit(ctx, auditEventRedirectIssued, true, decision.ResolutionID, principal.UserID, principal.TenantID, principal.SessionID, nil, func() map[string]string {
		return map[string]string{
			"path":     decision.Path,
			"source":   string(decision.Source),
			"attempts": strconv.Itoa(decision.Attempts),
		}
	})

	return decision, nil
}
