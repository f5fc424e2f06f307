package coupon

import (
	"miccheck-web/internal/pkg/patch"
)

const (
	MsgCouldNotValidate = "Could not validate coupon."
	MsgApplied          = "Coupon applied."
)

// Validation is the booking backend's verdict on a code for a given spot count.
// Optional fields stay nil when the backend omits them.
type Validation struct {
	Valid         bool
	Message       *string
	MinSpots      *int
	DiscountType  *string
	DiscountValue *string
	Description   *string
}

// Invalid builds a local negative verdict, used when the backend could not be reached.
func Invalid(message string) *Validation {
	return &Validation{Valid: false, Message: &message}
}

func (v *Validation) Type() DiscountType {
	if v == nil {
		return ""
	}
	return DiscountType(patch.Coalesce(v.DiscountType, ""))
}

// MinSpotsOrZero treats an absent threshold as no threshold.
func (v *Validation) MinSpotsOrZero() int {
	if v == nil {
		return 0
	}
	return patch.Coalesce(v.MinSpots, 0)
}

func (v *Validation) ValueString() string {
	if v == nil {
		return ""
	}
	return patch.Coalesce(v.DiscountValue, "")
}

// StatusMessage is what the form shows under the coupon input.
func (v *Validation) StatusMessage() string {
	if v == nil {
		return ""
	}
	if v.Valid {
		return MsgApplied
	}
	return patch.Coalesce(v.Message, "")
}
