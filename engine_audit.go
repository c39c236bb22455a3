package goRedirect

import (
	"context"
	"errors"
	"time"
)

const (
	auditEventResolveStarted    = "role_resolve_started"
	auditEventPollAttempt       = "role_poll_attempt"
	auditEventResolveSuccess    = "role_resolve_success"
	auditEventResolveUnresolved = "role_resolve_unresolved"
	auditEventResolveCancelled  = "role_resolve_cancelled"
	auditEventSessionReadFailed = "session_read_failed"
	auditEventRedirectIssued    = "redirect_issued"
	auditEventRedirectFailed    = "redirect_failed"
)

// AuditErrorCode is the stable machine-readable error label written into
// audit events in place of raw error strings.
type AuditErrorCode string

const (
	auditErrInvalidPrincipal   AuditErrorCode = "invalid_principal"
	auditErrSessionUnavailable AuditErrorCode = "session_unavailable"
	auditErrRoleUnknown        AuditErrorCode = "role_unknown"
	auditErrRoleUnresolved     AuditErrorCode = "role_unresolved"
	auditErrNavigationFailed   AuditErrorCode = "navigation_failed"
	auditErrInvalidToken       AuditErrorCode = "invalid_token"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	resolutionID string,
	userID string,
	tenantID string,
	sessionID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}
	if tenantID == "" {
		tenantID = tenantIDFromContext(ctx)
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp:    time.Now().UTC(),
		EventType:    eventType,
		ResolutionID: resolutionID,
		UserID:       userID,
		TenantID:     tenantID,
		SessionID:    sessionID,
		IP:           clientIPFromContext(ctx),
		Success:      success,
		Metadata:     metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidPrincipal):
		return auditErrInvalidPrincipal
	case errors.Is(err, ErrSessionUnavailable):
		return auditErrSessionUnavailable
	case errors.Is(err, ErrRoleUnknown):
		return auditErrRoleUnknown
	case errors.Is(err, ErrRoleUnresolved):
		return auditErrRoleUnresolved
	case errors.Is(err, ErrNavigationFailed):
		return auditErrNavigationFailed
	case errors.Is(err, ErrTokenInvalid):
		return auditErrInvalidToken
	default:
		return auditErrInternal
	}
}
