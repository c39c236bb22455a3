package session

// Session is the store-confirmed authentication record. Role is populated
// asynchronously by the authentication backend and may be empty for a
// window after the session row first appears.
type Session struct {
	SessionID string
	UserID    string
	TenantID  string

	Role string

	CreatedAt int64
	ExpiresAt int64
}
