package response

import (
	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/usecase/queries"
)

type FormResponse struct {
	LoadError      string              `json:"loadError,omitempty"`
	Groups         []ShowGroupResponse `json:"groups"`
	SelectedCount  int                 `json:"selectedCount"`
	RawTotal       string              `json:"rawTotal"`
	Total          string              `json:"total"`
	TotalText      string              `json:"totalText"`
	Coupon         CouponResponse      `json:"coupon"`
	Performer      PerformerResponse   `json:"performer"`
	SubmitSuccess  string              `json:"submitSuccess,omitempty"`
	SubmitError    string              `json:"submitError,omitempty"`
	CanApplyCoupon bool                `json:"canApplyCoupon"`
	CanSubmit      bool                `json:"canSubmit"`
}

type ShowGroupResponse struct {
	Label string             `json:"label"`
	Spots []FormSpotResponse `json:"spots"`
}

type FormSpotResponse struct {
	ID              int64  `json:"id"`
	Label           string `json:"label"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
	PriceText       string `json:"priceText"`
	SpotType        string `json:"spotType,omitempty"`
	IsFull          bool   `json:"isFull"`
	SpotsRemaining  int    `json:"spotsRemaining"`
	Selected        bool   `json:"selected"`
}

type CouponResponse struct {
	Code        string `json:"code"`
	Applied     bool   `json:"applied"`
	Valid       *bool  `json:"valid,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

type PerformerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Total   float64       `json:"total"`
	Form    *FormResponse `json:"form,omitempty"`
}

func FromFormView(v *queries.FormView) *FormResponse {
	groups := make([]ShowGroupResponse, 0, len(v.Groups))
	for _, g := range v.Groups {
		spots := make([]FormSpotResponse, 0, len(g.Spots))
		for _, s := range g.Spots {
			spots = append(spots, FormSpotResponse{
				ID:              s.ID,
				Label:           s.Label,
				Time:            s.TimeText,
				DurationMinutes: s.DurationMinutes,
				Price:           s.Price,
				PriceText:       s.PriceText,
				SpotType:        s.SpotType,
				IsFull:          s.IsFull,
				SpotsRemaining:  s.SpotsRemaining,
				Selected:        s.Selected,
			})
		}
		groups = append(groups, ShowGroupResponse{Label: g.Label, Spots: spots})
	}

	return &FormResponse{
		LoadError:     v.LoadError,
		Groups:        groups,
		SelectedCount: v.SelectedCount,
		RawTotal:      v.RawTotal,
		Total:         v.Total,
		TotalText:     v.TotalText,
		Coupon: CouponResponse{
			Code:        v.CouponCode,
			Applied:     v.CouponApplied,
			Valid:       v.CouponValid,
			Status:      v.CouponStatus,
			Description: v.CouponDescription,
		},
		Performer: PerformerResponse{
			Name:  v.Performer.Name,
			Email: v.Performer.Email,
			Phone: v.Performer.Phone,
		},
		SubmitSuccess:  v.SubmitSuccess,
		SubmitError:    v.SubmitError,
		CanApplyCoupon: v.CanApplyCoupon,
		CanSubmit:      v.CanSubmit,
	}
}

func FromBookingResult(r *booking.Result, form *queries.FormView) *BookingResponse {
	resp := &BookingResponse{
		Success: r.Success,
		Message: r.Message,
		Total:   r.Total,
	}
	if form != nil {
		resp.Form = FromFormView(form)
	}
	return resp
}
