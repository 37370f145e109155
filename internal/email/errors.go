package email

import (
	"errors"
	"fmt"
	"net"
	"net/textproto"
)

// FailureKind classifies why a send failed.
type FailureKind string

const (
	// FailureNotConfigured means the relay credentials are incomplete.
	FailureNotConfigured FailureKind = "not_configured"
	// FailureAuth means the relay rejected our credentials.
	FailureAuth FailureKind = "auth_failed"
	// FailureConnection means the relay could not be reached.
	FailureConnection FailureKind = "connection_failed"
	// FailureSMTP covers any other error in the SMTP dialogue.
	FailureSMTP FailureKind = "smtp_error"
)

// ErrNotConfigured is returned when SMTP credentials or the from-address
// are missing from the configuration.
var ErrNotConfigured = errors.New("smtp is not configured")

// SendError wraps a transport failure with its classification so the
// HTTP layer can report a specific, human-readable cause.
type SendError struct {
	Kind FailureKind
	Err  error
}

func (e *SendError) Error() string {
	switch e.Kind {
	case FailureNotConfigured:
		return "SMTP not configured"
	case FailureAuth:
		return fmt.Sprintf("SMTP authentication failed: %v", e.Err)
	case FailureConnection:
		return fmt.Sprintf("SMTP connection failed: %v", e.Err)
	default:
		return fmt.Sprintf("SMTP error: %v", e.Err)
	}
}

func (e *SendError) Unwrap() error { return e.Err }

// classifySendError maps an error from the SMTP session onto a
// FailureKind. Server replies surface as *textproto.Error (the x5x
// auth-class codes mean our credentials were rejected); dial and
// handshake failures surface as net errors.
func classifySendError(err error) *SendError {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return &SendError{Kind: FailureAuth, Err: err}
		}
		return &SendError{Kind: FailureSMTP, Err: err}
	}

	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &opErr) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &SendError{Kind: FailureConnection, Err: err}
	}

	return &SendError{Kind: FailureSMTP, Err: err}
}
