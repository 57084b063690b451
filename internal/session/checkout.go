package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/joshua-takyi/live/internal/models"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingEvent = errors.New("event not found")
)

const defaultRow = "A"

// Issuer mints a ticket id and QR payload for an event.
type Issuer interface {
	Issue(eventID string) (ticketID string, qr string, err error)
}

// Settlement is the outcome of one checkout: the cart lines as they stood
// when the lock was taken and the tickets minted for them.
type Settlement struct {
	Lines   []models.CartItem
	Tickets []models.PurchasedTicket
}

// Settle turns every cart line into a purchased ticket and empties the cart.
// Either all lines settle or none do: a missing event or an issuer failure
// leaves the state untouched. Price the returned Lines, not an earlier read of
// the cart.
func (s *State) Settle(now time.Time, issuer Issuer) (Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return Settlement{}, ErrEmptyCart
	}

	staged := make([]models.PurchasedTicket, 0, len(s.cart))
	for _, it := range s.cart {
		if models.FindEvent(s.events, it.EventID) == nil {
			return Settlement{}, fmt.Errorf("settle %s: %w", it.EventID, ErrMissingEvent)
		}
		id, qr, err := issuer.Issue(it.EventID)
		if err != nil {
			return Settlement{}, fmt.Errorf("settle %s: %w", it.EventID, err)
		}
		staged = append(staged, models.PurchasedTicket{
			ID:           id,
			EventID:      it.EventID,
			Quantity:     it.Quantity,
			TotalPrice:   it.LineTotal(),
			PurchaseDate: now,
			QRCode:       qr,
			Section:      it.Section,
			Row:          defaultRow,
			Seats:        slices.Clone(it.SelectedSeats),
		})
	}

	lines := cloneCart(s.cart)
	s.tickets = append(s.tickets, staged...)
	s.user.PurchasedTickets = append(s.user.PurchasedTickets, cloneTickets(staged)...)
	s.cart = []models.CartItem{}
	s.commitLocked(ScopeCart, ScopeTickets, ScopeUser)

	return Settlement{Lines: lines, Tickets: cloneTickets(staged)}, nil
}
