package session

import (
	"slices"

	"github.com/joshua-takyi/live/internal/models"
)

func (s *State) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.cart)
}

// AddToCart replaces the line for the same event in place, or appends.
func (s *State) AddToCart(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.SelectedSeats = slices.Clone(item.SelectedSeats)
	if i := s.cartIndex(item.EventID); i >= 0 {
		s.cart[i] = item
	} else {
		s.cart = append(s.cart, item)
	}
	s.commitLocked(ScopeCart)
}

// RemoveFromCart reports whether a line was removed.
func (s *State) RemoveFromCart(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cartIndex(eventID)
	if i < 0 {
		return false
	}
	s.cart = slices.Delete(s.cart, i, i+1)
	s.commitLocked(ScopeCart)
	return true
}

// UpdateCartItem merges patch into the line for eventID. It returns false and
// changes nothing when there is no such line.
func (s *State) UpdateCartItem(eventID string, patch models.CartItemPatch) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cartIndex(eventID)
	if i < 0 {
		return models.CartItem{}, false
	}
	s.cart[i] = patch.Apply(s.cart[i])
	s.commitLocked(ScopeCart)

	out := s.cart[i]
	out.SelectedSeats = slices.Clone(out.SelectedSeats)
	return out, true
}

func (s *State) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []models.CartItem{}
	s.commitLocked(ScopeCart)
}

// CartWithEvents joins cart lines with their events. Lines whose event is
// missing from the catalog are skipped.
func (s *State) CartWithEvents() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, 0, len(s.cart))
	for _, it := range s.cart {
		ev := models.FindEvent(s.events, it.EventID)
		if ev == nil {
			continue
		}
		it.SelectedSeats = slices.Clone(it.SelectedSeats)
		out = append(out, models.CartLine{CartItem: it, Event: *ev})
	}
	return out
}

func (s *State) cartIndex(eventID string) int {
	return slices.IndexFunc(s.cart, func(it models.CartItem) bool {
		return it.EventID == eventID
	})
}
