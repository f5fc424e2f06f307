//go:build unit || e2e

package builder

import (
	"miccheck-web/internal/domain/coupon"
	reqdto "miccheck-web/internal/handler/dto/request"
	"miccheck-web/internal/pkg/ptr"
)

type BookingBuilder struct {
	PerformerName string
	Email         string
	Phone         string
	CouponCode    *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		PerformerName: "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "+919876543210",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCoupon(code string) *BookingBuilder {
	b.CouponCode = ptr.Of(code)
	return b
}

func (b *BookingBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		PerformerName: b.PerformerName,
		Email:         b.Email,
		Phone:         b.Phone,
		CouponCode:    b.CouponCode,
	}
}

// FixedCoupon is a valid flat per-spot coupon, gated at minSpots.
func FixedCoupon(value string, minSpots int) *coupon.Validation {
	return &coupon.Validation{
		Valid:         true,
		MinSpots:      ptr.Of(minSpots),
		DiscountType:  ptr.Of(string(coupon.DiscountFixed)),
		DiscountValue: ptr.Of(value),
	}
}

func PercentCoupon(value string) *coupon.Validation {
	return &coupon.Validation{
		Valid:         true,
		DiscountType:  ptr.Of(string(coupon.DiscountPercent)),
		DiscountValue: ptr.Of(value),
	}
}
