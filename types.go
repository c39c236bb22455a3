package goRedirect

import (
	"context"
	"time"

	"github.com/MrEthical07/goRedirect/role"
)

// Principal is the authenticated identity returned by a login call. Role
// may be empty immediately after login because session establishment is
// asynchronous; the Engine polls the session store and uses Principal.Role
// only as the fallback source.
type Principal struct {
	UserID    string
	SessionID string
	TenantID  string
	Role      string
}

// Source identifies where a resolved role came from.
type Source string

const (
	// SourceSession means the role was read from the session store.
	SourceSession Source = "session"
	// SourcePrincipal means the role came from the Principal fallback.
	SourcePrincipal Source = "principal"
	// SourceNone means no role was resolved within the attempt budget.
	SourceNone Source = "none"
)

// RedirectDecision is the finalized outcome of one role resolution. Once
// produced it is final for that login attempt; the Engine never revisits a
// decision or navigates twice.
type RedirectDecision struct {
	ResolutionID string
	Path         string
	Role         role.Role
	Source       Source
	Attempts     int
	Resolved     bool
	Redirected   bool
	Elapsed      time.Duration
}

// RoleSource reads the current role for a session. Implementations must
// return an empty role with a nil error when the session exists but carries
// no role yet, and ("", nil) when the session has not been written at all.
// Absence is a normal outcome during propagation, not an error. Errors are
// reserved for backend failures.
type RoleSource interface {
	ReadRole(ctx context.Context, tenantID, sessionID string) (string, error)
}

// Router is the navigation collaborator. Navigate is invoked exactly once
// per login attempt, after the RedirectDecision is final. Implementations
// never receive resolution errors; they only ever see a valid path.
type Router interface {
	Navigate(ctx context.Context, path string) error
}

// RouterFunc adapts a function to the [Router] interface.
type RouterFunc func(ctx context.Context, path string) error

// Navigate calls f.
func (f RouterFunc) Navigate(ctx context.Context, path string) error {
	return f(ctx, path)
}
