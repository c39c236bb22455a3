package flows

import (
	"context"
	"strconv"
	"time"
)

// Flow-local source labels for where the resolved role came from.
const (
	SourceSession   = "session"
	SourcePrincipal = "principal"
	SourceNone      = "none"
)

// Resolution is the flow-local outcome of one polling run.
type Resolution struct {
	Role      string
	Source    string
	Attempts  int
	Elapsed   time.Duration
	Resolved  bool
	Cancelled bool
}

// ResolveMetrics carries metric IDs needed by the resolve flow.
type ResolveMetrics struct {
	Attempt      int
	SessionHit   int
	PrincipalHit int
	Unresolved   int
	Cancelled    int
	StoreError   int
}

// ResolveEvents carries audit event names used by the resolve flow.
type ResolveEvents struct {
	Started           string
	Attempt           string
	Success           string
	Unresolved        string
	Cancelled         string
	SessionReadFailed string
}

// ResolveErrors carries host-level sentinel errors used by the resolve flow.
type ResolveErrors struct {
	EngineNotReady error
	RoleUnresolved error
}

// ResolveDeps captures role polling dependencies.
type ResolveDeps struct {
	MaxAttempts      int
	InitialInterval  time.Duration
	BackoffRampAfter int
	BackoffMaxFactor int

	Now   func() time.Time
	Sleep func(context.Context, time.Duration) error

	ReadSessionRole func(context.Context) (string, error)
	PrincipalRole   func() string
	NormalizeRole   func(string) string

	MetricInc func(int)
	Observe   func(time.Duration)
	EmitAudit func(context.Context, string, bool, error, func() map[string]string)

	Metrics ResolveMetrics
	Events  ResolveEvents
	Errors  ResolveErrors
}

// RunResolveRole polls the session role until it lands, falling back to the
// principal role on each attempt, and gives up after the attempt budget.
// The returned Resolution is never nil unless the deps are unusable.
func RunResolveRole(ctx context.Context, deps ResolveDeps) (*Resolution, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Sleep == nil {
		deps.Sleep = sleepContext
	}
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.Observe == nil {
		deps.Observe = func(time.Duration) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, error, func() map[string]string) {}
	}
	if deps.NormalizeRole == nil {
		deps.NormalizeRole = func(raw string) string { return raw }
	}
	if deps.ReadSessionRole == nil || deps.PrincipalRole == nil {
		return nil, deps.Errors.EngineNotReady
	}
	if deps.MaxAttempts <= 0 {
		deps.MaxAttempts = 15
	}
	if deps.InitialInterval <= 0 {
		deps.InitialInterval = 200 * time.Millisecond
	}
	if deps.BackoffRampAfter <= 0 {
		deps.BackoffRampAfter = 5
	}
	if deps.BackoffMaxFactor <= 0 {
		deps.BackoffMaxFactor = 3
	}

	start := deps.Now()

	deps.EmitAudit(ctx, deps.Events.Started, true, nil, func() map[string]string {
		return map[string]string{
			"max_attempts": strconv.Itoa(deps.MaxAttempts),
			"interval_ms":  strconv.FormatInt(deps.InitialInterval.Milliseconds(), 10),
		}
	})

	for attempt := 1; attempt <= deps.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return runCancelResolve(ctx, start, attempt-1, deps), nil
		}

		sessionRole, readErr := deps.ReadSessionRole(ctx)
		if readErr != nil {
			if ctx.Err() != nil {
				return runCancelResolve(ctx, start, attempt-1, deps), nil
			}
			deps.MetricInc(deps.Metrics.StoreError)
			capturedAttempt := attempt
			deps.EmitAudit(ctx, deps.Events.SessionReadFailed, false, readErr, func() map[string]string {
				return map[string]string{
					"attempt": strconv.Itoa(capturedAttempt),
				}
			})
			sessionRole = ""
		}

		role := deps.NormalizeRole(sessionRole)
		source := SourceSession
		if role == "" {
			role = deps.NormalizeRole(deps.PrincipalRole())
			source = SourcePrincipal
		}
		found := role != ""

		deps.MetricInc(deps.Metrics.Attempt)
		capturedAttempt := attempt
		capturedSource := source
		deps.EmitAudit(ctx, deps.Events.Attempt, found, nil, func() map[string]string {
			md := map[string]string{
				"attempt": strconv.Itoa(capturedAttempt),
			}
			if found {
				md["source"] = capturedSource
			}
			return md
		})

		if found {
			elapsed := deps.Now().Sub(start)
			if source == SourceSession {
				deps.MetricInc(deps.Metrics.SessionHit)
			} else {
				deps.MetricInc(deps.Metrics.PrincipalHit)
			}
			deps.Observe(elapsed)
			capturedRole := role
			deps.EmitAudit(ctx, deps.Events.Success, true, nil, func() map[string]string {
				return map[string]string{
					"attempt": strconv.Itoa(capturedAttempt),
					"source":  capturedSource,
					"role":    capturedRole,
				}
			})
			return &Resolution{
				Role:     role,
				Source:   source,
				Attempts: attempt,
				Elapsed:  elapsed,
				Resolved: true,
			}, nil
		}

		if attempt < deps.MaxAttempts {
			if err := deps.Sleep(ctx, intervalFor(attempt, deps)); err != nil {
				return runCancelResolve(ctx, start, attempt, deps), nil
			}
		}
	}

	elapsed := deps.Now().Sub(start)
	deps.MetricInc(deps.Metrics.Unresolved)
	deps.Observe(elapsed)
	deps.EmitAudit(ctx, deps.Events.Unresolved, false, deps.Errors.RoleUnresolved, func() map[string]string {
		return map[string]string{
			"attempts": strconv.Itoa(deps.MaxAttempts),
		}
	})

	return &Resolution{
		Source:   SourceNone,
		Attempts: deps.MaxAttempts,
		Elapsed:  elapsed,
	}, nil
}

func runCancelResolve(ctx context.Context, start time.Time, attempts int, deps ResolveDeps) *Resolution {
	deps.MetricInc(deps.Metrics.Cancelled)
	deps.EmitAudit(ctx, deps.Events.Cancelled, false, nil, func() map[string]string {
		return map[string]string{
			"attempts": strconv.Itoa(attempts),
		}
	})

	return &Resolution{
		Source:    SourceNone,
		Attempts:  attempts,
		Elapsed:   deps.Now().Sub(start),
		Cancelled: true,
	}
}

// intervalFor returns the pause after a failed attempt. The first
// BackoffRampAfter attempts wait the base interval; each later attempt
// stretches the wait by one more interval up to BackoffMaxFactor.
func intervalFor(attempt int, deps ResolveDeps) time.Duration {
	factor := attempt - deps.BackoffRampAfter + 1
	if factor < 1 {
		factor = 1
	}
	if factor > deps.BackoffMaxFactor {
		factor = deps.BackoffMaxFactor
	}
	return deps.InitialInterval * time.Duration(factor)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
