package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "event-1-0-42", StringTrim(`  "event-1-0-42" `))
	assert.Equal(t, "abc", StringTrim("'abc'"))
	assert.Equal(t, "", StringTrim("   "))
}

func TestTicketIssuer_IssueAndVerify(t *testing.T) {
	ti := NewTicketIssuer("test-secret")

	id, qr, err := ti.Issue("event-3-1-1700000000000")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "ticket-event-3-1-1700000000000-"))
	assert.True(t, strings.HasPrefix(qr, "QR-event-3-1-1700000000000-"))
	assert.Contains(t, qr, "event-3-1-1700000000000")
	assert.NoError(t, ti.Verify(id, "event-3-1-1700000000000", qr))
}

func TestTicketIssuer_Unique(t *testing.T) {
	ti := NewTicketIssuer("s")
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id, qr, err := ti.Issue("E1")
		require.NoError(t, err)
		require.False(t, seen[id])
		require.False(t, seen[qr])
		seen[id], seen[qr] = true, true
	}
}

func TestTicketIssuer_RejectsTampering(t *testing.T) {
	ti := NewTicketIssuer("secret")
	id, qr, err := ti.Issue("E1")
	require.NoError(t, err)

	assert.ErrorIs(t, ti.Verify(id, "E2", qr), ErrInvalidQR)
	assert.ErrorIs(t, ti.Verify("ticket-E1-other", "E1", qr), ErrInvalidQR)
	assert.ErrorIs(t, ti.Verify(id, "E1", qr+"0"), ErrInvalidQR)
	assert.ErrorIs(t, ti.Verify(id, "E1", strings.Split(qr, ".")[0]), ErrInvalidQR)

	other := NewTicketIssuer("different")
	assert.ErrorIs(t, other.Verify(id, "E1", qr), ErrInvalidQR)
}
