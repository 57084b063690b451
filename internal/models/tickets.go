package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketUpcoming TicketStatus = "upcoming"
	TicketPast     TicketStatus = "past"
)

// PurchasedTicket does not store a status; it is derived from the event date on read.
type PurchasedTicket struct {
	ID           string          `json:"id"`
	EventID      string          `json:"eventId"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	QRCode       string          `json:"qrCode"`
	Section      string          `json:"section"`
	Row          string          `json:"row"`
	Seats        []string        `json:"seats"`
}

// StatusAt reports upcoming for events at or after now.
func StatusAt(eventDate, now time.Time) TicketStatus {
	if eventDate.Before(now) {
		return TicketPast
	}
	return TicketUpcoming
}

// TicketView is a ticket joined with its event and the status computed at read time.
type TicketView struct {
	PurchasedTicket
	Status TicketStatus `json:"status"`
	Event  Event        `json:"event"`
}
