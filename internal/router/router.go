package router

import (
	"net/http"

	"github.com/stockfolio/email-service/internal/handler"
	"github.com/stockfolio/email-service/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no auth required)
	mux.HandleFunc("GET /health", h.Health)

	// Sending routes (bearer token required when auth is enabled)
	mux.Handle("POST /send", mw.Auth(http.HandlerFunc(h.Send)))
	mux.Handle("POST /send-verification", mw.Auth(http.HandlerFunc(h.SendVerification)))
	mux.Handle("POST /send-password-reset", mw.Auth(http.HandlerFunc(h.SendPasswordReset)))
	mux.Handle("POST /send-dividend-alert", mw.Auth(http.HandlerFunc(h.SendDividendAlert)))

	// Apply middleware stack
	var hdl http.Handler = mux

	// CORS (callers are browser-facing web backends and SPAs)
	hdl = mw.CORS(hdl)

	// Security headers
	hdl = mw.SecurityHeaders(hdl)

	// Request logging
	hdl = mw.Logger(hdl)

	// Request ID
	hdl = mw.RequestID(hdl)

	// Panic recovery (outermost)
	hdl = mw.Recover(hdl)

	return hdl
}
