package queries

// FormView is the read model of one visitor's booking form.
type FormView struct {
	LoadError         string        `json:"load_error,omitempty"`
	Groups            []ShowGroup   `json:"groups"`
	SelectedCount     int           `json:"selected_count"`
	RawTotal          string        `json:"raw_total"`
	Total             string        `json:"total"`
	TotalText         string        `json:"total_text"`
	CouponCode        string        `json:"coupon_code"`
	CouponApplied     bool          `json:"coupon_applied"`
	CouponValid       *bool         `json:"coupon_valid,omitempty"`
	CouponStatus      string        `json:"coupon_status,omitempty"`
	CouponDescription string        `json:"coupon_description,omitempty"`
	Performer         PerformerView `json:"performer"`
	SubmitSuccess     string        `json:"submit_success,omitempty"`
	SubmitError       string        `json:"submit_error,omitempty"`
	CanApplyCoupon    bool          `json:"can_apply_coupon"`
	CanSubmit         bool          `json:"can_submit"`
}

type ShowGroup struct {
	Label string     `json:"label"`
	Spots []SpotView `json:"spots"`
}

type SpotView struct {
	ID              int64  `json:"id"`
	ShowID          int64  `json:"show_id"`
	ShowDate        string `json:"show_date"`
	Time            string `json:"time"`
	TimeText        string `json:"time_text"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	PriceText       string `json:"price_text"`
	SpotType        string `json:"spot_type,omitempty"`
	Label           string `json:"label"`
	IsFull          bool   `json:"is_full"`
	SpotsRemaining  int    `json:"spots_remaining"`
	Selected        bool   `json:"selected"`
}

type PerformerView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
