package pricing

import (
	"strings"

	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Quote struct {
	SelectedCount int
	RawTotal      decimal.Decimal
	DisplayTotal  decimal.Decimal
	CouponApplied bool
}

func (q Quote) Total() decimal.Decimal {
	return q.DisplayTotal
}

type PriceCalculator interface {
	Quote(spots []spot.SelectableSpot, validation *coupon.Validation) Quote
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Quote computes the displayed total for the current selection.
//
// A fixed coupon replaces every selected spot's price with a flat per-spot rate once the
// selection reaches the coupon's minimum; below it the raw sum stands. A percent coupon
// scales the raw sum and is not gated by the minimum.
func (pc *DefaultPriceCalculator) Quote(spots []spot.SelectableSpot, validation *coupon.Validation) Quote {
	q := Quote{RawTotal: decimal.Zero}
	for _, s := range spots {
		if !s.Selected {
			continue
		}
		q.SelectedCount++
		q.RawTotal = q.RawTotal.Add(ParseAmount(s.Price))
	}
	q.DisplayTotal = q.RawTotal

	if validation == nil || !validation.Valid {
		return q
	}

	value := ParseAmount(validation.ValueString())
	switch validation.Type() {
	case coupon.DiscountFixed:
		if q.SelectedCount >= validation.MinSpotsOrZero() {
			q.DisplayTotal = decimal.NewFromInt(int64(q.SelectedCount)).Mul(value)
			q.CouponApplied = true
		}
	case coupon.DiscountPercent:
		q.DisplayTotal = q.RawTotal.Mul(decimal.NewFromInt(1).Sub(value.Div(hundred)))
		q.CouponApplied = true
	}
	return q
}

// ParseAmount reads a decimal string. Anything unparseable counts as zero so a total can always be shown.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
