package spot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const CurrencySymbol = "₹"

// FormatTime renders "HH:MM[:SS]" as a 12-hour clock, e.g. "14:20:00" -> "2:20 PM".
// Unparseable input is returned unchanged.
func FormatTime(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return t
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	hour := h % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, m, period)
}

// FormatPrice renders a decimal amount rounded to whole rupees. Malformed input renders as zero.
func FormatPrice(amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		d = decimal.Zero
	}
	return FormatAmount(d)
}

func FormatAmount(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(0)
}
