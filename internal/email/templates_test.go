package email_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockfolio/email-service/internal/email"
)

func TestVerificationEmail(t *testing.T) {
	t.Parallel()

	t.Run("contains the URL and the username", func(t *testing.T) {
		t.Parallel()

		subject, html, text := email.VerificationEmail("Jo", "https://x/v/1")

		require.Equal(t, "Verify Your StockFolio Account", subject)
		require.Contains(t, html, "https://x/v/1")
		require.Contains(t, html, "Hello Jo,")
		require.Contains(t, text, "https://x/v/1")
		require.Contains(t, text, "Hello Jo,")
	})

	t.Run("defaults the username", func(t *testing.T) {
		t.Parallel()

		_, html, text := email.VerificationEmail("", "https://x/v/1")

		require.Contains(t, html, "Hello User,")
		require.Contains(t, text, "Hello User,")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		s1, h1, x1 := email.VerificationEmail("Jo", "https://x/v/1")
		s2, h2, x2 := email.VerificationEmail("Jo", "https://x/v/1")

		require.Equal(t, s1, s2)
		require.Equal(t, h1, h2)
		require.Equal(t, x1, x2)
	})
}

func TestPasswordResetEmail(t *testing.T) {
	t.Parallel()

	subject, html, text := email.PasswordResetEmail("Jo", "https://x/r/9")

	require.Equal(t, "Reset Your StockFolio Password", subject)
	require.Contains(t, html, "https://x/r/9")
	require.Contains(t, html, "Hello Jo,")
	require.Contains(t, text, "https://x/r/9")
	require.Contains(t, html, "Your password will remain unchanged")
}

func TestDividendAlertEmail(t *testing.T) {
	t.Parallel()

	t.Run("renders all fields", func(t *testing.T) {
		t.Parallel()

		subject, html, text := email.DividendAlertEmail(email.DividendAlertParams{
			Symbol:      "AAPL",
			PayDate:     "2026-09-15",
			Amount:      "0.25",
			Currency:    "€",
			DaysAdvance: 7,
			Frequency:   "quarterly",
		})

		require.Equal(t, "AAPL Dividend Alert (7 days early)", subject)
		require.Contains(t, html, "AAPL")
		require.Contains(t, html, "€0.25")
		require.Contains(t, html, "2026-09-15")
		require.Contains(t, html, "quarterly")
		require.Contains(t, text, "€0.25 on 2026-09-15")
		require.Contains(t, text, "sent 7 days in advance")
	})

	t.Run("defaults the currency and omits the frequency line", func(t *testing.T) {
		t.Parallel()

		_, html, text := email.DividendAlertEmail(email.DividendAlertParams{
			Symbol:  "MSFT",
			PayDate: "2026-10-01",
			Amount:  "0.75",
		})

		require.Contains(t, html, "$0.75")
		require.NotContains(t, html, "Payout frequency")
		require.NotContains(t, text, "Payout frequency")
	})
}
