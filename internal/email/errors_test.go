package email

import (
	"errors"
	"net"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySendError(t *testing.T) {
	t.Parallel()

	t.Run("auth-class reply", func(t *testing.T) {
		t.Parallel()

		err := classifySendError(&textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"})
		require.Equal(t, FailureAuth, err.Kind)
		require.Contains(t, err.Error(), "SMTP authentication failed")
	})

	t.Run("other server reply", func(t *testing.T) {
		t.Parallel()

		err := classifySendError(&textproto.Error{Code: 550, Msg: "mailbox unavailable"})
		require.Equal(t, FailureSMTP, err.Kind)
	})

	t.Run("dial failure", func(t *testing.T) {
		t.Parallel()

		err := classifySendError(&net.OpError{Op: "dial", Err: errors.New("connection refused")})
		require.Equal(t, FailureConnection, err.Kind)
		require.Contains(t, err.Error(), "SMTP connection failed")
	})

	t.Run("anything else", func(t *testing.T) {
		t.Parallel()

		err := classifySendError(errors.New("short response"))
		require.Equal(t, FailureSMTP, err.Kind)
	})
}
