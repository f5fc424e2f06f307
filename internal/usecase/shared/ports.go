package shared

import (
	"context"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"

	"github.com/google/uuid"
)

// BookingBackend is the external booking service. It owns capacity, coupon rules and persistence.
type BookingBackend interface {
	ListSpots(ctx context.Context) ([]spot.Spot, error)
	ListShows(ctx context.Context) ([]spot.Show, error)
	ValidateCoupon(ctx context.Context, code coupon.Code, spotCount int) (*coupon.Validation, error)
	CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error)
	Ping(ctx context.Context) error
}

// FormStore holds each session's in-progress booking form.
type FormStore interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Form, error)
	Put(ctx context.Context, id uuid.UUID, form *booking.Form) error
	Update(ctx context.Context, id uuid.UUID, fn func(*booking.Form) error) (*booking.Form, error)
}
