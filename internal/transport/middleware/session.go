package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/session"
	"github.com/heartmarshall/mealtrack-backend/pkg/ctxutil"
)

// sessionReader reads the caller's session from a request.
type sessionReader interface {
	Read(r *http.Request) (domain.SessionID, error)
}

// Session returns middleware that attaches the caller's session (if the
// request carries one) to the request context. Requests without a session
// cookie pass through unchanged; routes that need one wrap themselves in
// RequireSession. A session cookie that is present but unusable is rejected
// with 401 on every route, so create never mints over it.
func Session(cookies sessionReader) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := cookies.Read(r)
			switch {
			case err == nil:
				r = r.WithContext(ctxutil.WithSessionID(r.Context(), id))
			case errors.Is(err, session.ErrNoSession):
			default:
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests without a session in context with 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.SessionIDFromCtx(r.Context()); !ok {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"}) //nolint:errcheck
}
