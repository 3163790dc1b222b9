package api

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/log"
)

// LogContext copies the server logger carried by ctx into every request
// context, tagged with the request id. Without it handlers and services fall
// back to the process default logger and ignore the configured level and
// format.
func LogContext(ctx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxReq := log.CopyFromContext(ctx, r.Context())
			ctxReq = log.With(ctxReq, "req-id", middleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctxReq))
		})
	}
}

// BasicAuth protects the agent facing endpoints. When no credentials are
// configured the endpoints are open, which is only sensible behind an
// authenticating reverse proxy.
func BasicAuth(cfg config.HTTPBasicAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.User == "" && cfg.Password == "" {
				next.ServeHTTP(w, r)
				return
			}
			user, pass, ok := r.BasicAuth()
			if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(cfg.User)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="secureid"`)
				writeError(w, http.StatusUnauthorized, "Unauthorized. Please refresh the page to login.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// VerifierAPIKey authenticates verifier callbacks with the shared secret the
// presentation request asked the verifier to echo back. The always-200
// acknowledgment contract starts after this check: unauthenticated posts are
// rejected.
func VerifierAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get("api-key")), []byte(key)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
