package email

import "fmt"

// Template renderers are pure functions: the same inputs always produce
// byte-identical (subject, html, text) output.

// defaultUsername is used when the caller does not supply a name.
const defaultUsername = "User"

// VerificationEmail renders the account verification email.
func VerificationEmail(username, verificationURL string) (subject, html, text string) {
	if username == "" {
		username = defaultUsername
	}

	subject = "Verify Your StockFolio Account"

	html = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Verify Your StockFolio Account</h2>
  <p>Hello %s,</p>
  <p>Thank you for signing up! Please verify your email address by clicking the button below:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4CAF50; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">
      Verify Email Address
    </a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p>This link will expire in 24 hours.</p>
  <p>If you didn't create an account, please ignore this email.</p>
  <p>Best regards,<br>StockFolio Team</p>
</body>
</html>`, username, verificationURL, verificationURL)

	text = fmt.Sprintf(`Verify Your StockFolio Account

Hello %s,

Thank you for signing up! Please verify your email address by visiting:
%s

This link will expire in 24 hours.

If you didn't create an account, please ignore this email.

Best regards,
StockFolio Team`, username, verificationURL)

	return subject, html, text
}

// PasswordResetEmail renders the password reset email.
func PasswordResetEmail(username, resetURL string) (subject, html, text string) {
	if username == "" {
		username = defaultUsername
	}

	subject = "Reset Your StockFolio Password"

	html = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Reset Your Password</h2>
  <p>Hello %s,</p>
  <p>You requested to reset your password. Click the button below to create a new password:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #2196F3; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">
      Reset Password
    </a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p>This link will expire in 24 hours.</p>
  <p>If you didn't request this, please ignore this email. Your password will remain unchanged.</p>
  <p>Best regards,<br>StockFolio Team</p>
</body>
</html>`, username, resetURL, resetURL)

	text = fmt.Sprintf(`Reset Your Password

Hello %s,

You requested to reset your password. Visit this link to create a new password:
%s

This link will expire in 24 hours.

If you didn't request this, please ignore this email.

Best regards,
StockFolio Team`, username, resetURL)

	return subject, html, text
}

// DividendAlertParams holds the fields substituted into the dividend
// alert templates.
type DividendAlertParams struct {
	Symbol      string
	PayDate     string
	Amount      string
	Currency    string // currency symbol, defaults to "$"
	DaysAdvance int
	Frequency   string // e.g. "quarterly"; omitted when empty
}

// DividendAlertEmail renders the dividend alert email.
func DividendAlertEmail(p DividendAlertParams) (subject, html, text string) {
	currency := p.Currency
	if currency == "" {
		currency = "$"
	}

	subject = fmt.Sprintf("%s Dividend Alert (%d days early)", p.Symbol, p.DaysAdvance)

	frequencyHTML := ""
	frequencyText := ""
	if p.Frequency != "" {
		frequencyHTML = fmt.Sprintf("\n  <p>Payout frequency: <strong>%s</strong>.</p>", p.Frequency)
		frequencyText = fmt.Sprintf("\nPayout frequency: %s.\n", p.Frequency)
	}

	html = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>💰 Dividend Alert: %s</h2>
  <p><strong>%s</strong> is paying a dividend of <strong>%s%s</strong> on <strong>%s</strong>.</p>%s
  <p>This alert was sent %d days in advance.</p>
  <p>Best regards,<br>StockFolio</p>
</body>
</html>`, p.Symbol, p.Symbol, currency, p.Amount, p.PayDate, frequencyHTML, p.DaysAdvance)

	text = fmt.Sprintf(`Dividend Alert: %s

%s is paying a dividend of %s%s on %s.
%s
This alert was sent %d days in advance.

Best regards,
StockFolio`, p.Symbol, p.Symbol, currency, p.Amount, p.PayDate, frequencyText, p.DaysAdvance)

	return subject, html, text
}
