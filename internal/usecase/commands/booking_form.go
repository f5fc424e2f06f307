package commands

import (
	"context"
	"log/slog"
	"slices"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"
	reqdto "miccheck-web/internal/handler/dto/request"
	"miccheck-web/internal/infra"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpotNotFound       = errs.New("spot not found")
	ErrSpotFull           = errs.New("spot is full")
	ErrNoSpotsSelected    = errs.New("no spots selected")
	ErrInvalidPerformer   = errs.New("invalid performer details")
	ErrSpotsUnavailable   = errs.New("spots unavailable")
	ErrBookingRejected    = errs.New("booking rejected")
	ErrBackendUnavailable = errs.New("booking backend unavailable")
	ErrSessionExpired     = errs.New("booking session expired")
)

type BookingFormCommands interface {
	Load(ctx context.Context, sessionID uuid.UUID) error
	Reload(ctx context.Context, sessionID uuid.UUID) error
	ToggleSpot(ctx context.Context, sessionID uuid.UUID, spotID int64) error
	ApplyCoupon(ctx context.Context, sessionID uuid.UUID, code string) error
	Submit(ctx context.Context, sessionID uuid.UUID, req reqdto.SubmitBookingRequest) (*booking.Result, error)
	SaveDetails(ctx context.Context, sessionID uuid.UUID, req reqdto.SubmitBookingRequest) error
}

type bookingFormCommandsImpl struct {
	backend shared.BookingBackend
	store   shared.FormStore
	logger  *slog.Logger
}

func NewBookingFormCommands(backend shared.BookingBackend, store shared.FormStore, logger *slog.Logger) BookingFormCommands {
	return &bookingFormCommandsImpl{backend: backend, store: store, logger: logger}
}

// Load creates the session's form from the current spot list. An existing form is kept as is,
// except one whose spot fetch failed: a fresh page visit tries again.
func (b *bookingFormCommandsImpl) Load(ctx context.Context, sessionID uuid.UUID) error {
	form, err := b.store.Get(ctx, sessionID)
	if err == nil && form.LoadError() == "" {
		return nil
	}
	if err != nil && !isMissingSession(err) {
		return errs.Wrap(err, "bookingForm.Load")
	}

	spots, err := b.backend.ListSpots(ctx)
	if err != nil {
		b.logger.WarnContext(ctx, "failed to load spots", "session_id", sessionID, "error", err)
		if err := b.store.Put(ctx, sessionID, booking.NewFailedForm()); err != nil {
			return errs.Wrap(err, "bookingForm.Load")
		}
		return nil
	}
	return b.store.Put(ctx, sessionID, booking.NewForm(spots))
}

// Reload refetches spots on request, keeping what is still selectable.
func (b *bookingFormCommandsImpl) Reload(ctx context.Context, sessionID uuid.UUID) error {
	if err := b.Load(ctx, sessionID); err != nil {
		return err
	}

	spots, err := b.backend.ListSpots(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "bookingForm.Reload"), ErrSpotsUnavailable)
	}
	_, err = b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		f.Reload(spots)
		return nil
	})
	return b.mapStoreErr(err, "bookingForm.Reload")
}

func (b *bookingFormCommandsImpl) ToggleSpot(ctx context.Context, sessionID uuid.UUID, spotID int64) error {
	if err := b.Load(ctx, sessionID); err != nil {
		return err
	}

	_, err := b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		return f.Toggle(spotID)
	})
	switch {
	case errs.Is(err, spot.ErrSpotNotFound):
		return errs.Mark(err, ErrSpotNotFound)
	case errs.Is(err, spot.ErrSpotFull):
		return errs.Mark(err, ErrSpotFull)
	}
	return b.mapStoreErr(err, "bookingForm.ToggleSpot")
}

// ApplyCoupon validates code against the current selection. A blank code does nothing.
// The verdict is dropped if the selection changed while the backend was answering.
func (b *bookingFormCommandsImpl) ApplyCoupon(ctx context.Context, sessionID uuid.UUID, raw string) error {
	if err := b.Load(ctx, sessionID); err != nil {
		return err
	}

	code := coupon.NewCode(raw)
	form, err := b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		f.SetCouponCode(raw)
		if code.IsEmpty() {
			return nil
		}
		if f.SelectedCount() == 0 {
			f.ClearCoupon()
			return booking.ErrNoSpotsSelected
		}
		f.ClearCoupon()
		return nil
	})
	if errs.Is(err, booking.ErrNoSpotsSelected) {
		return errs.Mark(err, ErrNoSpotsSelected)
	}
	if err := b.mapStoreErr(err, "bookingForm.ApplyCoupon"); err != nil {
		return err
	}
	if code.IsEmpty() {
		return nil
	}

	ids := form.Selection().IDs()
	verdict, err := b.backend.ValidateCoupon(ctx, code, len(ids))
	if err != nil {
		b.logger.WarnContext(ctx, "coupon validation failed", "session_id", sessionID, "error", err)
		verdict = coupon.Invalid(coupon.MsgCouldNotValidate)
	}

	_, err = b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		if f.CouponCode() != code || !slices.Equal(f.Selection().IDs(), ids) {
			return nil
		}
		f.ApplyCouponResult(verdict)
		return nil
	})
	return b.mapStoreErr(err, "bookingForm.ApplyCoupon")
}

// Submit sends the selection and performer details to the backend. Failures are recorded on the form
// with the most specific message available.
func (b *bookingFormCommandsImpl) Submit(ctx context.Context, sessionID uuid.UUID, req reqdto.SubmitBookingRequest) (*booking.Result, error) {
	if err := b.Load(ctx, sessionID); err != nil {
		return nil, err
	}

	performer := req.ToPerformer()
	var payload booking.Request
	_, err := b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		f.BeginSubmit()
		f.SetPerformer(performer)
		if req.CouponCode != nil {
			f.SetCouponCode(*req.CouponCode)
		}

		var buildErr error
		payload, buildErr = f.BuildRequest()
		if buildErr != nil {
			return buildErr
		}
		if err := performer.Validate(); err != nil {
			var pe *booking.PerformerError
			if errs.As(err, &pe) {
				f.MarkFailed(pe.Message)
			}
			return err
		}
		return nil
	})
	switch {
	case errs.Is(err, booking.ErrNoSpotsSelected):
		return nil, errs.Mark(err, ErrNoSpotsSelected)
	case errs.Is(err, booking.ErrInvalidPerformer):
		return nil, errs.Mark(err, ErrInvalidPerformer)
	}
	if err := b.mapStoreErr(err, "bookingForm.Submit"); err != nil {
		return nil, err
	}

	result, err := b.backend.CreateBooking(ctx, payload)
	if err != nil {
		message := infra.UpstreamMessage(err)
		if message == "" {
			message = booking.MsgBookingFailed
		}
		if _, uerr := b.store.Update(ctx, sessionID, func(f *booking.Form) error {
			f.MarkFailed(message)
			return nil
		}); uerr != nil {
			b.logger.WarnContext(ctx, "failed to record booking failure", "session_id", sessionID, "error", uerr)
		}
		if infra.IsKind(err, infra.KindRejected) {
			return nil, errs.Mark(err, ErrBookingRejected)
		}
		return nil, errs.Mark(err, ErrBackendUnavailable)
	}

	_, err = b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		f.MarkSubmitted()
		return nil
	})
	if err := b.mapStoreErr(err, "bookingForm.Submit"); err != nil {
		return nil, err
	}
	b.logger.InfoContext(ctx, "booking created", "session_id", sessionID, "spots", len(payload.SpotIDs))
	return result, nil
}

// SaveDetails keeps what the visitor typed so far without validating it.
func (b *bookingFormCommandsImpl) SaveDetails(ctx context.Context, sessionID uuid.UUID, req reqdto.SubmitBookingRequest) error {
	if err := b.Load(ctx, sessionID); err != nil {
		return err
	}
	_, err := b.store.Update(ctx, sessionID, func(f *booking.Form) error {
		f.SetPerformer(req.ToPerformer())
		return nil
	})
	return b.mapStoreErr(err, "bookingForm.SaveDetails")
}

func (b *bookingFormCommandsImpl) mapStoreErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if isMissingSession(err) {
		return errs.Mark(err, ErrSessionExpired)
	}
	return errs.Wrap(err, op)
}

func isMissingSession(err error) bool {
	return errs.Is(err, errs.ErrSessionNotFound) || errs.Is(err, errs.ErrSessionExpired)
}
