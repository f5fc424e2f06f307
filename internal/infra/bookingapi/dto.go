package bookingapi

// Wire shapes of the booking backend. Field names match the domain types so copier can map them.

type SpotDTO struct {
	ID              int64  `json:"id"`
	ShowID          int64  `json:"show"`
	ShowDate        string `json:"show_date"`
	ShowLabel       string `json:"show_label"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	SpotType        string `json:"spot_type"`
	MaxSlots        int    `json:"max_slots"`
	IsFull          bool   `json:"is_full"`
	SpotsRemaining  int    `json:"spots_remaining"`
}

type ShowDTO struct {
	ID    int64     `json:"id"`
	Date  string    `json:"date"`
	Label string    `json:"label"`
	Spots []SpotDTO `json:"spots"`
}

type ValidateCouponPayload struct {
	Code      string `json:"code"`
	SpotCount int    `json:"spot_count"`
}

type CouponValidationDTO struct {
	Valid         bool    `json:"valid"`
	Message       *string `json:"message,omitempty"`
	MinSpots      *int    `json:"min_spots,omitempty"`
	DiscountType  *string `json:"discount_type,omitempty"`
	DiscountValue *string `json:"discount_value,omitempty"`
	Description   *string `json:"description,omitempty"`
}

type CreateBookingPayload struct {
	SpotIDs       []int64 `json:"spot_ids"`
	PerformerName string  `json:"performer_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	CouponCode    *string `json:"coupon_code,omitempty"`
}

type CreateBookingResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}
