package request

import (
	"strings"

	"miccheck-web/internal/domain/booking"
)

type SubmitBookingRequest struct {
	PerformerName string  `json:"performer_name" form:"performer_name" binding:"required,max=200"`
	Email         string  `json:"email" form:"email" binding:"required,email"`
	Phone         string  `json:"phone" form:"phone" binding:"required,max=20"`
	CouponCode    *string `json:"coupon_code,omitempty" form:"coupon_code" binding:"omitempty,max=50"`
}

func (r SubmitBookingRequest) ToPerformer() booking.Performer {
	return booking.NewPerformer(r.PerformerName, r.Email, r.Phone)
}

// GetCouponCode returns the trimmed code, or nil when the field was left empty.
func (r SubmitBookingRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ApplyCouponRequest struct {
	Code string `json:"code" form:"coupon_code" binding:"max=50"`
}

type ToggleSpotRequest struct {
	SpotID int64 `form:"spot_id" binding:"required,gt=0"`
}
