package email

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

// Sender is the interface the HTTP layer delivers messages through.
// The production implementation talks SMTP; tests substitute a recording
// fake so handler behavior can be asserted without a mail server.
type Sender interface {
	// Send sends an email to the specified recipient.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// Validation errors returned by Message.Validate.
var (
	ErrNoRecipient  = errors.New("recipient address is required")
	ErrBadRecipient = errors.New("recipient is not a valid email address")
	ErrNoBody       = errors.New("at least one of html or text body is required")
)

// Validate checks the invariant every outbound message must hold:
// a well-formed recipient and at least one body representation.
func (m Message) Validate() error {
	if m.To == "" {
		return ErrNoRecipient
	}
	if !ValidAddress(m.To) {
		return ErrBadRecipient
	}
	if m.HTMLBody == "" && m.TextBody == "" {
		return ErrNoBody
	}
	return nil
}

// ValidAddress reports whether s is a single bare email address
// (no display name, no address list).
func ValidAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject "Name <user@host>" forms and anything that parsed to a
	// different address than what the caller sent.
	return addr.Address == strings.TrimSpace(s)
}
