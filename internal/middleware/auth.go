package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Auth validates the caller's bearer token against the configured API
// key. When auth is disabled in the configuration the check is skipped
// entirely (local development, trusted networks).
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.cfg.Auth.RequireAuth {
			next.ServeHTTP(w, r)
			return
		}

		var token string
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}

		if token == "" || m.cfg.Auth.APIKey == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(m.cfg.Auth.APIKey)) != 1 {
			m.log.Warn().Str("path", r.URL.Path).Msg("unauthorized request")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
