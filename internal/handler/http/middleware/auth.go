package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hrlite/crm-backend-go/internal/domain/user"
	"github.com/hrlite/crm-backend-go/internal/handler/http/response"
	"github.com/hrlite/crm-backend-go/internal/pkg/session"
)

type currentUserKey struct{}

// AuthRequired rejects requests that do not carry a live session token in the
// Authorization header ("Bearer <token>"). The signed-in user rides on the
// request context for handlers that need it.
func AuthRequired(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" {
				response.Unauthorized(w, "Missing session token")
				return
			}

			sess, ok := sessions.Get(token)
			if !ok {
				response.Unauthorized(w, "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey{}, sess.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// CurrentUser returns the signed-in user placed on the context by
// AuthRequired.
func CurrentUser(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(currentUserKey{}).(user.User)
	return u, ok
}
