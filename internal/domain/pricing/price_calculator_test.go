//go:build unit

package pricing_test

import (
	"testing"

	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/pricing"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/pkg/ptr"
	"miccheck-web/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func selectable(prices []string, selected ...bool) []spot.SelectableSpot {
	out := make([]spot.SelectableSpot, len(prices))
	for i, p := range prices {
		sel := true
		if i < len(selected) {
			sel = selected[i]
		}
		out[i] = builder.NewSpotBuilder().WithID(int64(i + 1)).WithPrice(p).BuildSelectable(sel)
	}
	return out
}

func repeat(price string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = price
	}
	return out
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestDefaultPriceCalculator_Quote(t *testing.T) {
	calc := pricing.NewDefaultPriceCalculator()

	tests := []struct {
		name        string
		spots       []spot.SelectableSpot
		validation  *coupon.Validation
		wantCount   int
		wantRaw     string
		wantTotal   string
		wantApplied bool
	}{
		{
			name:      "no coupon sums selected prices",
			spots:     selectable([]string{"150.00", "200.00", "99.50"}, true, false, true),
			wantCount: 2,
			wantRaw:   "249.50",
			wantTotal: "249.50",
		},
		{
			name:      "nothing selected",
			spots:     selectable([]string{"150.00", "200.00"}, false, false),
			wantCount: 0,
			wantRaw:   "0",
			wantTotal: "0",
		},
		{
			name:        "fixed coupon at the minimum replaces the per-spot price",
			spots:       selectable(repeat("150.00", 6)),
			validation:  builder.FixedCoupon("100", 6),
			wantCount:   6,
			wantRaw:     "900",
			wantTotal:   "600",
			wantApplied: true,
		},
		{
			name:       "fixed coupon below the minimum leaves the raw sum",
			spots:      selectable(repeat("150.00", 3)),
			validation: builder.FixedCoupon("100", 6),
			wantCount:  3,
			wantRaw:    "450",
			wantTotal:  "450",
		},
		{
			name:  "fixed coupon without a minimum always applies",
			spots: selectable(repeat("150.00", 2)),
			validation: &coupon.Validation{
				Valid:         true,
				DiscountType:  ptr.Of("fixed"),
				DiscountValue: ptr.Of("100"),
			},
			wantCount:   2,
			wantRaw:     "300",
			wantTotal:   "200",
			wantApplied: true,
		},
		{
			name:        "percent coupon scales the raw sum",
			spots:       selectable(repeat("250.00", 4)),
			validation:  builder.PercentCoupon("20"),
			wantCount:   4,
			wantRaw:     "1000",
			wantTotal:   "800",
			wantApplied: true,
		},
		{
			name:  "percent coupon ignores the minimum",
			spots: selectable([]string{"1000.00"}),
			validation: &coupon.Validation{
				Valid:         true,
				MinSpots:      ptr.Of(6),
				DiscountType:  ptr.Of("percent"),
				DiscountValue: ptr.Of("20"),
			},
			wantCount:   1,
			wantRaw:     "1000",
			wantTotal:   "800",
			wantApplied: true,
		},
		{
			name:  "invalid coupon is ignored",
			spots: selectable(repeat("150.00", 6)),
			validation: &coupon.Validation{
				Valid:         false,
				Message:       ptr.Of("Invalid coupon code."),
				DiscountType:  ptr.Of("fixed"),
				DiscountValue: ptr.Of("100"),
			},
			wantCount: 6,
			wantRaw:   "900",
			wantTotal: "900",
		},
		{
			name:  "unknown discount kind is ignored",
			spots: selectable(repeat("150.00", 2)),
			validation: &coupon.Validation{
				Valid:         true,
				DiscountType:  ptr.Of("bogo"),
				DiscountValue: ptr.Of("50"),
			},
			wantCount: 2,
			wantRaw:   "300",
			wantTotal: "300",
		},
		{
			name:      "malformed price counts as zero",
			spots:     selectable([]string{"abc", "150.00", ""}),
			wantCount: 3,
			wantRaw:   "150",
			wantTotal: "150",
		},
		{
			name:  "malformed discount value counts as zero",
			spots: selectable(repeat("150.00", 2)),
			validation: &coupon.Validation{
				Valid:         true,
				DiscountType:  ptr.Of("percent"),
				DiscountValue: ptr.Of("twenty"),
			},
			wantCount:   2,
			wantRaw:     "300",
			wantTotal:   "300",
			wantApplied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := calc.Quote(tt.spots, tt.validation)

			assert.Equal(t, tt.wantCount, q.SelectedCount)
			assertDecimal(t, tt.wantRaw, q.RawTotal)
			assertDecimal(t, tt.wantTotal, q.Total())
			assert.Equal(t, tt.wantApplied, q.CouponApplied)
		})
	}
}

func TestQuote_FormatTotal(t *testing.T) {
	calc := pricing.NewDefaultPriceCalculator()

	t.Run("rounds to whole rupees", func(t *testing.T) {
		q := calc.Quote(selectable([]string{"99.50", "100.00"}), nil)
		assert.Equal(t, "₹200", q.FormatTotal())
	})

	t.Run("zero total", func(t *testing.T) {
		q := calc.Quote(nil, nil)
		assert.Equal(t, "₹0", q.FormatTotal())
	})

	t.Run("percent discount with fractional result", func(t *testing.T) {
		q := calc.Quote(selectable([]string{"333.00"}), builder.PercentCoupon("15"))
		// 333 * 0.85 = 283.05
		assert.Equal(t, "₹283", q.FormatTotal())
	})
}

func TestParseAmount(t *testing.T) {
	assertDecimal(t, "150.5", pricing.ParseAmount(" 150.50 "))
	assertDecimal(t, "0", pricing.ParseAmount("not-a-number"))
	assertDecimal(t, "0", pricing.ParseAmount(""))
}
