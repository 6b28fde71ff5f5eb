package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/communitywatch/backend/internal/api/httpx"
	"github.com/communitywatch/backend/internal/auth"
)

type ctxKey string

const ctxUserIDKey ctxKey = "uid"

func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(string)
	return v, ok
}

// RequireAuth verifies the bearer token and stores the user id in the
// request context.
func RequireAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				httpx.WriteMessage(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			token := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := tm.Parse(token)
			if err != nil {
				httpx.WriteMessage(w, http.StatusUnauthorized, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserIDKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
