package handler

import (
	"github.com/stockfolio/email-service/internal/config"
	"github.com/stockfolio/email-service/internal/email"
	"github.com/stockfolio/email-service/internal/logger"
)

// Handler holds all HTTP handlers
type Handler struct {
	log    *logger.Logger
	cfg    *config.Config
	sender email.Sender
}

// New creates a new Handler instance
func New(cfg *config.Config, log *logger.Logger, sender email.Sender) *Handler {
	return &Handler{
		log:    log,
		cfg:    cfg,
		sender: sender,
	}
}
