package response

import (
	"miccheck-web/internal/usecase/commands"
)

type QuoteResponse struct {
	SelectedCount int    `json:"selectedCount"`
	RawTotal      string `json:"rawTotal"`
	Total         string `json:"total"`
	TotalText     string `json:"totalText"`
	CouponApplied bool   `json:"couponApplied"`
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		SelectedCount: r.SelectedCount,
		RawTotal:      r.RawTotal,
		Total:         r.Total,
		TotalText:     r.TotalText,
		CouponApplied: r.CouponApplied,
	}
}
