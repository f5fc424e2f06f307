package request

import (
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"
)

// QuoteRequest asks for a price without touching any session state.
type QuoteRequest struct {
	Spots  []QuoteSpot  `json:"spots" binding:"dive"`
	Coupon *QuoteCoupon `json:"coupon,omitempty"`
}

type QuoteSpot struct {
	Price    string `json:"price"`
	Selected bool   `json:"selected"`
}

type QuoteCoupon struct {
	Valid         bool    `json:"valid"`
	MinSpots      *int    `json:"min_spots,omitempty"`
	DiscountType  *string `json:"discount_type,omitempty"`
	DiscountValue *string `json:"discount_value,omitempty"`
}

func (r QuoteRequest) ToDomain() ([]spot.SelectableSpot, *coupon.Validation) {
	spots := make([]spot.SelectableSpot, 0, len(r.Spots))
	for i, s := range r.Spots {
		spots = append(spots, spot.SelectableSpot{
			Spot:     spot.Spot{ID: int64(i + 1), Price: s.Price},
			Selected: s.Selected,
		})
	}
	if r.Coupon == nil {
		return spots, nil
	}
	return spots, &coupon.Validation{
		Valid:         r.Coupon.Valid,
		MinSpots:      r.Coupon.MinSpots,
		DiscountType:  r.Coupon.DiscountType,
		DiscountValue: r.Coupon.DiscountValue,
	}
}
