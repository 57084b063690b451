package pricing

import (
	"strings"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/shopspring/decimal"
)

var promoCodes = map[string]int{
	"LIVE20":    20,
	"WELCOME10": 10,
	"FANFAVE15": 15,
}

// LookupPromo is case-insensitive. An unknown code is a rejection, not an error.
func LookupPromo(code string) (int, bool) {
	pct, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	return pct, ok
}

type TotalsOptions struct {
	ServiceFee decimal.Decimal
	PremiumFee decimal.Decimal
	AddPremium bool
	PromoCode  string
}

type Breakdown struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	PromoCode     string          `json:"promoCode,omitempty"`
	PromoPercent  int             `json:"promoPercent"`
	PromoRejected bool            `json:"promoRejected"`
	Discount      decimal.Decimal `json:"discount"`
	ServiceFee    decimal.Decimal `json:"serviceFee"`
	PremiumFee    decimal.Decimal `json:"premiumFee"`
	Total         decimal.Decimal `json:"total"`
}

// Totals prices a cart. Adding the premium subscription waives the service fee
// and charges the premium fee in its place.
func Totals(lines []models.CartItem, opts TotalsOptions) Breakdown {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	b := Breakdown{
		Subtotal:   subtotal,
		Discount:   decimal.Zero,
		ServiceFee: opts.ServiceFee,
		PremiumFee: decimal.Zero,
	}
	if opts.AddPremium {
		b.ServiceFee = decimal.Zero
		b.PremiumFee = opts.PremiumFee
	}

	if code := strings.TrimSpace(opts.PromoCode); code != "" {
		b.PromoCode = strings.ToUpper(code)
		if pct, ok := LookupPromo(code); ok {
			b.PromoPercent = pct
			b.Discount = subtotal.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)
		} else {
			b.PromoRejected = true
		}
	}

	b.Total = subtotal.Sub(b.Discount).Add(b.ServiceFee).Add(b.PremiumFee)
	return b
}
