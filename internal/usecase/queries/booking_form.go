package queries

import (
	"context"
	"fmt"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/pricing"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrFormNotFound = errs.New("booking form not found")

type BookingFormQueries interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*FormView, error)
}

type bookingFormQueriesImpl struct {
	store shared.FormStore
	calc  pricing.PriceCalculator
}

func NewBookingFormQueries(store shared.FormStore, calc pricing.PriceCalculator) BookingFormQueries {
	return &bookingFormQueriesImpl{store: store, calc: calc}
}

func (q *bookingFormQueriesImpl) Get(ctx context.Context, sessionID uuid.UUID) (*FormView, error) {
	form, err := q.store.Get(ctx, sessionID)
	if err != nil {
		if errs.Is(err, errs.ErrSessionNotFound) || errs.Is(err, errs.ErrSessionExpired) {
			return nil, errs.Mark(err, ErrFormNotFound)
		}
		return nil, errs.Wrap(err, "bookingFormQueries.Get")
	}
	return BuildFormView(form, q.calc), nil
}

// BuildFormView renders a form snapshot with its current price.
func BuildFormView(form *booking.Form, calc pricing.PriceCalculator) *FormView {
	quote := form.Quote(calc)
	performer := form.Performer()

	view := &FormView{
		LoadError:     form.LoadError(),
		Groups:        toShowGroups(form.Selection().GroupByShow()),
		SelectedCount: quote.SelectedCount,
		RawTotal:      quote.RawTotal.StringFixed(2),
		Total:         quote.Total().StringFixed(2),
		TotalText:     quote.FormatTotal(),
		CouponCode:    form.CouponCode().String(),
		CouponApplied: quote.CouponApplied,
		Performer: PerformerView{
			Name:  performer.Name,
			Email: performer.Email,
			Phone: performer.Phone,
		},
		SubmitSuccess: form.SubmitSuccess(),
		SubmitError:   form.SubmitError(),
	}

	if v := form.CouponApplied(); v != nil {
		valid := v.Valid
		view.CouponValid = &valid
		view.CouponStatus = v.StatusMessage()
		if v.Description != nil {
			view.CouponDescription = *v.Description
		}
	}

	view.CanApplyCoupon = view.LoadError == "" && quote.SelectedCount > 0
	view.CanSubmit = view.LoadError == "" && quote.SelectedCount > 0
	return view
}

func toShowGroups(groups []spot.Group) []ShowGroup {
	out := make([]ShowGroup, 0, len(groups))
	for _, g := range groups {
		views := make([]SpotView, 0, len(g.Spots))
		for _, s := range g.Spots {
			views = append(views, toSpotView(s))
		}
		out = append(out, ShowGroup{Label: g.Label, Spots: views})
	}
	return out
}

func toSpotView(s spot.SelectableSpot) SpotView {
	timeText := spot.FormatTime(s.Time)
	priceText := spot.FormatPrice(s.Price)
	label := fmt.Sprintf("%s, %d Mins Spot — %s", timeText, s.DurationMinutes, priceText)
	return SpotView{
		ID:              s.ID,
		ShowID:          s.ShowID,
		ShowDate:        s.ShowDate,
		Time:            s.Time,
		TimeText:        timeText,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		PriceText:       priceText,
		SpotType:        s.SpotType,
		Label:           label,
		IsFull:          s.IsFull,
		SpotsRemaining:  s.SpotsRemaining,
		Selected:        s.Selected,
	}
}
