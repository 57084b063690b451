// Package pricing holds the fan discount rule, the promo code table and the
// checkout total breakdown. All money is decimal.
package pricing

import (
	"math"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DiscountThreshold  = 70
	MaxDiscountPercent = 20
	maxFanScore        = 100
)

var hundred = decimal.NewFromInt(100)

type Quote struct {
	BasePrice       decimal.Decimal `json:"basePrice"`
	DiscountPercent int             `json:"discountPercent"`
	EffectivePrice  decimal.Decimal `json:"effectivePrice"`
}

func (q Quote) HasDiscount() bool {
	return q.DiscountPercent > 0
}

// DiscountPercent ramps linearly from 0% at a fan score of 70 to 20% at 100.
func DiscountPercent(fanScore int) int {
	if fanScore < DiscountThreshold {
		return 0
	}
	if fanScore > maxFanScore {
		fanScore = maxFanScore
	}
	pct := int(math.Round(float64(fanScore-DiscountThreshold) / float64(maxFanScore-DiscountThreshold) * MaxDiscountPercent))
	return min(max(pct, 0), MaxDiscountPercent)
}

func Discount(basePrice int, fanScore int) Quote {
	base := decimal.NewFromInt(int64(basePrice))
	pct := DiscountPercent(fanScore)
	return Quote{
		BasePrice:       base,
		DiscountPercent: pct,
		EffectivePrice:  ApplyPercentOff(base, pct),
	}
}

func ForEvent(ev *models.Event) Quote {
	return Discount(ev.BasePrice, ev.FanScore)
}

// ApplyPercentOff returns amount * (1 - pct/100).
func ApplyPercentOff(amount decimal.Decimal, pct int) decimal.Decimal {
	if pct <= 0 {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(int64(100 - pct))).Div(hundred)
}
