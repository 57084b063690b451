package pricing

import (
	"testing"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{49, 0},
		{69, 0},
		{70, 0},
		{71, 1},
		{85, 10},
		{99, 19},
		{100, 20},
		{130, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountPercent(tt.score), "score %d", tt.score)
	}
}

func TestDiscountPercent_Monotonic(t *testing.T) {
	prev := DiscountPercent(0)
	for score := 1; score <= 100; score++ {
		got := DiscountPercent(score)
		assert.GreaterOrEqual(t, got, prev, "score %d", score)
		prev = got
	}
}

func TestDiscount_EffectivePrice(t *testing.T) {
	q := Discount(100, 100)
	assert.Equal(t, 20, q.DiscountPercent)
	assert.True(t, q.EffectivePrice.Equal(decimal.NewFromInt(80)), q.EffectivePrice.String())
	assert.True(t, q.HasDiscount())

	q = Discount(150, 40)
	assert.Equal(t, 0, q.DiscountPercent)
	assert.True(t, q.EffectivePrice.Equal(decimal.NewFromInt(150)))
	assert.False(t, q.HasDiscount())

	q = Discount(45, 85)
	assert.True(t, q.EffectivePrice.Equal(decimal.RequireFromString("40.5")), q.EffectivePrice.String())
}

func TestForEvent(t *testing.T) {
	ev := &models.Event{BasePrice: 200, FanScore: 91}
	q := ForEvent(ev)
	assert.Equal(t, 14, q.DiscountPercent)
	assert.True(t, q.EffectivePrice.Equal(decimal.NewFromInt(172)))
}

func TestLookupPromo(t *testing.T) {
	pct, ok := LookupPromo(" live20 ")
	assert.True(t, ok)
	assert.Equal(t, 20, pct)

	_, ok = LookupPromo("FREE100")
	assert.False(t, ok)
}

func TestTotals_SettlementScenario(t *testing.T) {
	lines := []models.CartItem{{EventID: "E1", Quantity: 2, PricePerTicket: decimal.NewFromInt(40)}}
	b := Totals(lines, TotalsOptions{ServiceFee: decimal.NewFromInt(5), PremiumFee: decimal.NewFromInt(5)})

	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(80)))
	assert.True(t, b.ServiceFee.Equal(decimal.NewFromInt(5)))
	assert.True(t, b.Total.Equal(decimal.NewFromInt(85)), b.Total.String())
}

func TestTotals_PromoScenario(t *testing.T) {
	lines := []models.CartItem{{EventID: "E1", Quantity: 1, PricePerTicket: decimal.NewFromInt(100)}}
	b := Totals(lines, TotalsOptions{PromoCode: "live20"})

	assert.Equal(t, "LIVE20", b.PromoCode)
	assert.Equal(t, 20, b.PromoPercent)
	assert.False(t, b.PromoRejected)
	assert.True(t, b.Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, b.PremiumFee.IsZero())
	assert.True(t, b.Total.Equal(decimal.NewFromInt(80)), b.Total.String())
}

func TestTotals_PremiumWaivesServiceFee(t *testing.T) {
	lines := []models.CartItem{{EventID: "E1", Quantity: 3, PricePerTicket: decimal.NewFromInt(50)}}
	b := Totals(lines, TotalsOptions{
		ServiceFee: decimal.NewFromInt(5),
		PremiumFee: decimal.RequireFromString("9.99"),
		AddPremium: true,
	})

	assert.True(t, b.ServiceFee.IsZero())
	assert.True(t, b.Total.Equal(decimal.RequireFromString("159.99")), b.Total.String())
}

func TestTotals_RejectedPromo(t *testing.T) {
	lines := []models.CartItem{{EventID: "E1", Quantity: 1, PricePerTicket: decimal.NewFromInt(60)}}
	b := Totals(lines, TotalsOptions{PromoCode: "nope"})

	assert.True(t, b.PromoRejected)
	assert.True(t, b.Discount.IsZero())
	assert.True(t, b.Total.Equal(decimal.NewFromInt(60)))
}

func TestTotals_EmptyCart(t *testing.T) {
	b := Totals(nil, TotalsOptions{ServiceFee: decimal.NewFromInt(5)})
	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Total.Equal(decimal.NewFromInt(5)))
}
