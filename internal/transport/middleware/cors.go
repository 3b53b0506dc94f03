package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/mealtrack-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// An allowed origin is echoed back instead of "*" so browsers send the
// session cookie when credentials are allowed. Only an OPTIONS request that
// carries Access-Control-Request-Method is treated as a preflight and
// answered here; any other OPTIONS request reaches the router.
func CORS(cfg config.CORSConfig) Middleware {
	anyOrigin, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := origins[origin]; ok || anyOrigin {
					h.Set("Access-Control-Allow-Origin", origin)
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// parseOrigins splits the comma-separated allow list. "*" anywhere in the
// list allows every origin.
func parseOrigins(list string) (bool, map[string]struct{}) {
	origins := make(map[string]struct{})
	anyOrigin := false
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			anyOrigin = true
		default:
			origins[o] = struct{}{}
		}
	}
	return anyOrigin, origins
}
