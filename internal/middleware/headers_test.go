package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stockfolio/email-service/internal/config"
	"github.com/stockfolio/email-service/internal/logger"
	"github.com/stockfolio/email-service/internal/middleware"
)

func newCORSMiddleware(origins ...string) *middleware.Middleware {
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: origins},
	}
	log := &logger.Logger{Logger: zerolog.Nop()}
	return middleware.New(log, cfg)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("preflight from an allowed origin is answered", func(t *testing.T) {
		t.Parallel()

		mw := newCORSMiddleware("https://app.example.com")
		req := httptest.NewRequest(http.MethodOptions, "/send", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		mw.CORS(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("preflight from a disallowed origin is not short-circuited", func(t *testing.T) {
		t.Parallel()

		mw := newCORSMiddleware("https://app.example.com")
		req := httptest.NewRequest(http.MethodOptions, "/send", nil)
		req.Header.Set("Origin", "https://evil.example.net")
		rec := httptest.NewRecorder()
		mw.CORS(next).ServeHTTP(rec, req)

		// Falls through to the next handler with no CORS headers.
		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("non-CORS OPTIONS falls through to the mux", func(t *testing.T) {
		t.Parallel()

		mw := newCORSMiddleware("*")
		req := httptest.NewRequest(http.MethodOptions, "/send", nil)
		rec := httptest.NewRecorder()
		mw.CORS(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("wildcard allows any origin on normal requests", func(t *testing.T) {
		t.Parallel()

		mw := newCORSMiddleware("*")
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://anywhere.example.org")
		rec := httptest.NewRecorder()
		mw.CORS(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
