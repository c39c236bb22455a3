package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	goRedirect "github.com/MrEthical07/goRedirect"
	"github.com/MrEthical07/goRedirect/token"
)

// PostLoginRedirect answers the post-login landing request: it verifies the
// principal token, resolves the role, and replies with a 303 redirect to
// the decided destination. Requests without a valid token get 401. When the
// client disconnects mid-resolution nothing is written.
func PostLoginRedirect(engine *goRedirect.Engine, tokens *token.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if engine == nil || tokens == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.ParsePrincipal(raw)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		principal := goRedirect.Principal{
			UserID:    claims.UID,
			SessionID: claims.SID,
			TenantID:  claims.TID,
			Role:      claims.Role,
		}

		ctx := goRedirect.WithClientIP(r.Context(), clientIP(r))
		if claims.TID != "" {
			ctx = goRedirect.WithTenantID(ctx, claims.TID)
		}

		router := goRedirect.RouterFunc(func(ctx context.Context, path string) error {
			http.Redirect(w, r, path, http.StatusSeeOther)
			return nil
		})

		if _, err := engine.ResolveAndRedirectUsing(ctx, principal, router); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	})
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
