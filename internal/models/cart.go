package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CartItem is keyed by EventID; PricePerTicket is already discount-adjusted.
type CartItem struct {
	EventID        string          `json:"eventId" validate:"required"`
	Quantity       int             `json:"quantity" validate:"min=1,max=10"`
	Section        string          `json:"section"`
	SelectedSeats  []string        `json:"selectedSeats"`
	PricePerTicket decimal.Decimal `json:"pricePerTicket"`
}

func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.PricePerTicket.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// CartItemPatch carries the fields of a shallow update; nil fields are left alone.
type CartItemPatch struct {
	Quantity       *int             `json:"quantity,omitempty" validate:"omitempty,min=1,max=10"`
	Section        *string          `json:"section,omitempty"`
	SelectedSeats  []string         `json:"selectedSeats,omitempty"`
	PricePerTicket *decimal.Decimal `json:"pricePerTicket,omitempty"`
}

func (p CartItemPatch) Apply(ci CartItem) CartItem {
	if p.Quantity != nil {
		ci.Quantity = *p.Quantity
	}
	if p.Section != nil {
		ci.Section = *p.Section
	}
	if p.SelectedSeats != nil {
		ci.SelectedSeats = slices.Clone(p.SelectedSeats)
	}
	if p.PricePerTicket != nil {
		ci.PricePerTicket = *p.PricePerTicket
	}
	return ci
}

// CartLine pairs a cart item with the event it refers to.
type CartLine struct {
	CartItem
	Event Event `json:"event"`
}
