package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendEMail(t *testing.T) {
	t.Run(`not configured check`, func(t *testing.T) {
		err := impl{}.SendEMail("jamie@example.com", "Hello", "body")
		require.NotNil(t, err)
	})
	t.Run(`message headers check`, func(t *testing.T) {
		msg := buildMessage("hr@example.com", "jamie@example.com", "Offer", "line one\nline two")
		require.True(t, strings.HasPrefix(msg, "From: hr@example.com\r\nTo: jamie@example.com\r\nSubject: Offer\r\n"))
		require.Contains(t, msg, "\r\n\r\nline one\r\nline two\r\n")
	})
	t.Run(`connect defaults sender check`, func(t *testing.T) {
		require.Nil(t, Connect("bot@example.com", "secret", "smtp.example.com", "465", "", true))
		require.Equal(t, "bot@example.com", Instance.(*impl).from)
	})
}
