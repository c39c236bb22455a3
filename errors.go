package goRedirect

import "errors"

var (
	// ErrEngineNotReady is returned when an Engine method is called before Build completed.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrRouterRequired is returned by redirect operations when no Router is configured.
	ErrRouterRequired = errors.New("router required")
	// ErrInvalidPrincipal is returned when the principal carries no session identifier.
	ErrInvalidPrincipal = errors.New("invalid principal")
	// ErrSessionUnavailable is returned when the session backend cannot be reached.
	ErrSessionUnavailable = errors.New("session backend unavailable")
	// ErrRoleUnknown marks a role value outside the registered closed set.
	ErrRoleUnknown = errors.New("unknown role")
	// ErrRoleUnresolved marks an exhausted attempt budget with no role found.
	ErrRoleUnresolved = errors.New("role unresolved")
	// ErrNavigationFailed is returned when the Router rejects the final path.
	ErrNavigationFailed = errors.New("navigation failed")
	// ErrTokenInvalid is returned when a principal token cannot be parsed or verified.
	ErrTokenInvalid = errors.New("invalid token")
)
