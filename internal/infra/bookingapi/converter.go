package bookingapi

import (
	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var copyOpts = copier.Option{DeepCopy: true}

func toSpots(dtos []SpotDTO) ([]spot.Spot, error) {
	spots := make([]spot.Spot, 0, len(dtos))
	if err := copier.CopyWithOption(&spots, &dtos, copyOpts); err != nil {
		return nil, errs.Wrap(err, "failed to map spots")
	}
	return spots, nil
}

func toShows(dtos []ShowDTO) ([]spot.Show, error) {
	shows := make([]spot.Show, 0, len(dtos))
	if err := copier.CopyWithOption(&shows, &dtos, copyOpts); err != nil {
		return nil, errs.Wrap(err, "failed to map shows")
	}
	return shows, nil
}

func toValidation(dto CouponValidationDTO) (*coupon.Validation, error) {
	var v coupon.Validation
	if err := copier.CopyWithOption(&v, &dto, copyOpts); err != nil {
		return nil, errs.Wrap(err, "failed to map coupon validation")
	}
	return &v, nil
}

func toCreateBookingPayload(req booking.Request) CreateBookingPayload {
	return CreateBookingPayload{
		SpotIDs:       req.SpotIDs,
		PerformerName: req.PerformerName,
		Email:         req.Email,
		Phone:         req.Phone,
		CouponCode:    req.CouponCode,
	}
}

func toResult(res CreateBookingResponse) *booking.Result {
	return &booking.Result{
		Success: res.Success,
		Message: res.Message,
		Total:   res.Total,
	}
}
