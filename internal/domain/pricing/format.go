package pricing

import (
	"miccheck-web/internal/domain/spot"
)

// FormatTotal renders the displayed total the way the booking page shows it.
func (q Quote) FormatTotal() string {
	return spot.FormatAmount(q.DisplayTotal.Round(2))
}
