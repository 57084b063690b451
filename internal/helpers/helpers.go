package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// StringTrim normalizes path parameters: surrounding spaces and quotes are
// dropped, which happens when clients pass values as JSON strings or templates.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

const (
	ticketPrefix = "ticket"
	qrPrefix     = "QR"
	sigLength    = 16
)

var ErrInvalidQR = errors.New("invalid QR payload")

// TicketIssuer mints ticket ids and signed QR payloads.
//
//	ticket id:  ticket-<eventID>-<uuid>
//	QR payload: QR-<eventID>-<uuid>.<sig>
//
// sig is a truncated HMAC-SHA256 of the ticket id and event id, so a payload
// can be checked against the purchase it came from.
type TicketIssuer struct {
	secret    []byte
	newSuffix func() (string, error)
}

func NewTicketIssuer(secret string) *TicketIssuer {
	return &TicketIssuer{
		secret: []byte(secret),
		newSuffix: func() (string, error) {
			id, err := uuid.NewRandom()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
	}
}

func (ti *TicketIssuer) Issue(eventID string) (ticketID string, qr string, err error) {
	suffix, err := ti.newSuffix()
	if err != nil {
		return "", "", fmt.Errorf("generate ticket suffix: %w", err)
	}
	ticketID = fmt.Sprintf("%s-%s-%s", ticketPrefix, eventID, suffix)
	qr = fmt.Sprintf("%s-%s-%s.%s", qrPrefix, eventID, suffix, ti.sign(ticketID, eventID))
	return ticketID, qr, nil
}

// Verify checks that qr was issued for this ticket and event.
func (ti *TicketIssuer) Verify(ticketID, eventID, qr string) error {
	body, sig, ok := strings.Cut(qr, ".")
	if !ok || !strings.HasPrefix(body, qrPrefix+"-"+eventID+"-") {
		return ErrInvalidQR
	}
	suffix := strings.TrimPrefix(body, qrPrefix+"-"+eventID+"-")
	if ticketID != fmt.Sprintf("%s-%s-%s", ticketPrefix, eventID, suffix) {
		return ErrInvalidQR
	}
	if !hmac.Equal([]byte(sig), []byte(ti.sign(ticketID, eventID))) {
		return ErrInvalidQR
	}
	return nil
}

func (ti *TicketIssuer) sign(ticketID, eventID string) string {
	mac := hmac.New(sha256.New, ti.secret)
	mac.Write([]byte(ticketID + "|" + eventID))
	return hex.EncodeToString(mac.Sum(nil))[:sigLength]
}
