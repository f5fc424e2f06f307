package commands

import (
	"miccheck-web/internal/domain/pricing"
	reqdto "miccheck-web/internal/handler/dto/request"
)

type QuoteResult struct {
	SelectedCount int
	RawTotal      string
	Total         string
	TotalText     string
	CouponApplied bool
}

// QuoteCommands prices an arbitrary selection. Nothing is stored.
type QuoteCommands interface {
	Quote(req reqdto.QuoteRequest) *QuoteResult
}

type quoteCommandsImpl struct {
	calc pricing.PriceCalculator
}

func NewQuoteCommands(calc pricing.PriceCalculator) QuoteCommands {
	return &quoteCommandsImpl{calc: calc}
}

func (q *quoteCommandsImpl) Quote(req reqdto.QuoteRequest) *QuoteResult {
	spots, validation := req.ToDomain()
	quote := q.calc.Quote(spots, validation)
	return &QuoteResult{
		SelectedCount: quote.SelectedCount,
		RawTotal:      quote.RawTotal.StringFixed(2),
		Total:         quote.Total().StringFixed(2),
		TotalText:     quote.FormatTotal(),
		CouponApplied: quote.CouponApplied,
	}
}
