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

func newAuthMiddleware(apiKey string, required bool) *middleware.Middleware {
	cfg := &config.Config{
		Auth: config.AuthConfig{APIKey: apiKey, RequireAuth: required},
	}
	log := &logger.Logger{Logger: zerolog.Nop()}
	return middleware.New(log, cfg)
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/send", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuth(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes", func(t *testing.T) {
		t.Parallel()

		mw := newAuthMiddleware("secret", true)
		rec := httptest.NewRecorder()
		mw.Auth(okHandler).ServeHTTP(rec, authedRequest("secret"))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header fails", func(t *testing.T) {
		t.Parallel()

		mw := newAuthMiddleware("secret", true)
		rec := httptest.NewRecorder()
		mw.Auth(okHandler).ServeHTTP(rec, authedRequest(""))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("wrong token fails", func(t *testing.T) {
		t.Parallel()

		mw := newAuthMiddleware("secret", true)
		rec := httptest.NewRecorder()
		mw.Auth(okHandler).ServeHTTP(rec, authedRequest("nope"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme fails", func(t *testing.T) {
		t.Parallel()

		mw := newAuthMiddleware("secret", true)
		req := httptest.NewRequest(http.MethodPost, "/send", nil)
		req.Header.Set("Authorization", "Basic secret")
		rec := httptest.NewRecorder()
		mw.Auth(okHandler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty configured key rejects everything", func(t *testing.T) {
		t.Parallel()

		mw := newAuthMiddleware("", true)
		rec := httptest.NewRecorder()
		mw.Auth(okHandler).ServeHTTP(rec, authedRequest("anything"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("auth disabled skips the check", func(t *testing.T) {
		t.Parallel()

		mw := newAuthMiddleware("secret", false)
		rec := httptest.NewRecorder()
		mw.Auth(okHandler).ServeHTTP(rec, authedRequest(""))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
