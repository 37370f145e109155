package email

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/stockfolio/email-service/internal/config"
	"github.com/stockfolio/email-service/internal/logger"
)

// SMTPSender implements Sender over an authenticated SMTP session.
// Each Send dials its own connection, transmits one message and closes;
// there is no pooling and no retry.
type SMTPSender struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPSender creates a new SMTPSender for the configured relay.
func NewSMTPSender(cfg config.SMTPConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		cfg: cfg,
		log: log.WithComponent("smtp"),
	}
}

// buildMessage assembles the MIME message. With both bodies present the
// message is multipart/alternative with text/plain first and text/html
// last, so conforming clients prefer the HTML representation
// (RFC 2046: the last alternative part wins).
func (s *SMTPSender) buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromEmail, s.cfg.FromName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}
	return m
}

// Send builds a MIME message and transmits it to the relay. When both
// bodies are present the message is multipart/alternative with the HTML
// part preferred. The send itself cannot be interrupted mid-dialogue;
// ctx bounds how long the caller waits for the session to finish.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.cfg.Configured() {
		return &SendError{Kind: FailureNotConfigured, Err: ErrNotConfigured}
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	m := s.buildMessage(msg)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	// use_tls selects STARTTLS on a plain connection; otherwise the
	// dialer opens an implicit TLS connection.
	d.SSL = !s.cfg.UseTLS

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			sendErr := classifySendError(err)
			s.log.Error().
				Err(err).
				Str("kind", string(sendErr.Kind)).
				Str("to", msg.To).
				Msg("send failed")
			return sendErr
		}
	case <-ctx.Done():
		return &SendError{Kind: FailureConnection, Err: ctx.Err()}
	}

	s.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return nil
}
