package bookingapi

import (
	"encoding/json"

	"miccheck-web/internal/domain/booking"
)

// ExtractErrorMessage picks the message to show for a rejected booking, checking
// "detail", then the first "coupon_code" error, then the first "spot_ids" error.
func ExtractErrorMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return booking.MsgBookingFailed
	}

	if msg := asString(payload["detail"]); msg != "" {
		return msg
	}
	for _, field := range []string{"coupon_code", "spot_ids"} {
		if msg := firstString(payload[field]); msg != "" {
			return msg
		}
	}
	return booking.MsgBookingFailed
}

func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func firstString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return asString(raw)
	}
	if len(list) == 0 {
		return ""
	}
	return asString(list[0])
}
