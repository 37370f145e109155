package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/stockfolio/email-service/internal/email"
)

// sendRequest is the payload for POST /send.
type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// verificationRequest is the payload for POST /send-verification.
type verificationRequest struct {
	To              string `json:"to"`
	VerificationURL string `json:"verification_url"`
	Username        string `json:"username"`
}

// passwordResetRequest is the payload for POST /send-password-reset.
type passwordResetRequest struct {
	To       string `json:"to"`
	ResetURL string `json:"reset_url"`
	Username string `json:"username"`
}

// dividendAlertRequest is the payload for POST /send-dividend-alert.
type dividendAlertRequest struct {
	To             string      `json:"to"`
	StockSymbol    string      `json:"stock_symbol"`
	DividendDate   string      `json:"dividend_date"`
	DividendAmount json.Number `json:"dividend_amount"`
	Currency       string      `json:"currency"`
	DaysAdvance    int         `json:"days_advance"`
	Frequency      string      `json:"frequency"`
}

// Send handles POST /send, the generic sending endpoint.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := readJSON(r, &req); err != nil {
		writeSendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	if missing := missingFields(map[string]bool{
		"to":      req.To == "",
		"subject": req.Subject == "",
	}); missing != "" {
		writeSendError(w, http.StatusBadRequest, "Missing required fields: "+missing, req.To)
		return
	}

	h.deliver(w, r, email.Message{
		To:       req.To,
		Subject:  req.Subject,
		HTMLBody: req.HTML,
		TextBody: req.Text,
	}, "Email sent successfully")
}

// SendVerification handles POST /send-verification.
func (h *Handler) SendVerification(w http.ResponseWriter, r *http.Request) {
	var req verificationRequest
	if err := readJSON(r, &req); err != nil {
		writeSendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	if missing := missingFields(map[string]bool{
		"to":               req.To == "",
		"verification_url": req.VerificationURL == "",
	}); missing != "" {
		writeSendError(w, http.StatusBadRequest, "Missing required fields: "+missing, req.To)
		return
	}

	subject, html, text := email.VerificationEmail(req.Username, req.VerificationURL)
	h.deliver(w, r, email.Message{
		To:       req.To,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}, "Verification email sent")
}

// SendPasswordReset handles POST /send-password-reset.
func (h *Handler) SendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := readJSON(r, &req); err != nil {
		writeSendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	if missing := missingFields(map[string]bool{
		"to":        req.To == "",
		"reset_url": req.ResetURL == "",
	}); missing != "" {
		writeSendError(w, http.StatusBadRequest, "Missing required fields: "+missing, req.To)
		return
	}

	subject, html, text := email.PasswordResetEmail(req.Username, req.ResetURL)
	h.deliver(w, r, email.Message{
		To:       req.To,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}, "Password reset email sent")
}

// SendDividendAlert handles POST /send-dividend-alert.
func (h *Handler) SendDividendAlert(w http.ResponseWriter, r *http.Request) {
	var req dividendAlertRequest
	if err := readJSON(r, &req); err != nil {
		writeSendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	if missing := missingFields(map[string]bool{
		"to":              req.To == "",
		"stock_symbol":    req.StockSymbol == "",
		"dividend_date":   req.DividendDate == "",
		"dividend_amount": req.DividendAmount == "",
	}); missing != "" {
		writeSendError(w, http.StatusBadRequest, "Missing required fields: "+missing, req.To)
		return
	}

	subject, html, text := email.DividendAlertEmail(email.DividendAlertParams{
		Symbol:      req.StockSymbol,
		PayDate:     req.DividendDate,
		Amount:      req.DividendAmount.String(),
		Currency:    req.Currency,
		DaysAdvance: req.DaysAdvance,
		Frequency:   req.Frequency,
	})
	h.deliver(w, r, email.Message{
		To:       req.To,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}, "Dividend alert sent")
}

// deliver validates the composed message, performs the single synchronous
// send and writes the JSON verdict. No retries: a failure is reported
// straight back to the caller.
func (h *Handler) deliver(w http.ResponseWriter, r *http.Request, msg email.Message, successMsg string) {
	if err := msg.Validate(); err != nil {
		writeSendError(w, http.StatusBadRequest, validationMessage(err), msg.To)
		return
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		h.log.Error().Err(err).Str("to", msg.To).Str("path", r.URL.Path).Msg("send failed")
		writeSendError(w, http.StatusInternalServerError, err.Error(), msg.To)
		return
	}

	writeJSON(w, http.StatusOK, sendResponse{
		Success:     true,
		Message:     successMsg,
		ServiceUsed: "smtp",
		To:          msg.To,
	})
}

// validationMessage converts a Message validation error into the
// client-facing wording.
func validationMessage(err error) string {
	switch err {
	case email.ErrNoRecipient:
		return "Missing required fields: to"
	case email.ErrBadRecipient:
		return "Invalid recipient email address"
	case email.ErrNoBody:
		return "Missing email body: provide html or text"
	}
	return err.Error()
}

// missingFields returns a comma-separated list of the field names whose
// value in the map is true, in a stable order.
func missingFields(fields map[string]bool) string {
	order := []string{"to", "subject", "verification_url", "reset_url", "stock_symbol", "dividend_date", "dividend_amount"}
	var missing []string
	for _, name := range order {
		if fields[name] {
			missing = append(missing, name)
		}
	}
	return strings.Join(missing, ", ")
}
