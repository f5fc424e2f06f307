//go:build unit

package bookingapi_test

import (
	"testing"

	"miccheck-web/internal/infra/bookingapi"

	"github.com/stretchr/testify/assert"
)

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail wins", body: `{"detail": "Not allowed.", "coupon_code": ["Expired."], "spot_ids": ["Full."]}`, want: "Not allowed."},
		{name: "coupon before spots", body: `{"coupon_code": ["Expired."], "spot_ids": ["Full."]}`, want: "Expired."},
		{name: "first spot error", body: `{"spot_ids": ["Spot 3 is full.", "Spot 4 is full."]}`, want: "Spot 3 is full."},
		{name: "plain string field", body: `{"coupon_code": "Expired."}`, want: "Expired."},
		{name: "empty detail skipped", body: `{"detail": "", "spot_ids": ["Full."]}`, want: "Full."},
		{name: "empty list skipped", body: `{"coupon_code": [], "spot_ids": ["Full."]}`, want: "Full."},
		{name: "no known field", body: `{"non_field_errors": ["Nope."]}`, want: "Booking failed"},
		{name: "empty object", body: `{}`, want: "Booking failed"},
		{name: "not json", body: `<h1>Server Error (500)</h1>`, want: "Booking failed"},
		{name: "empty body", body: ``, want: "Booking failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bookingapi.ExtractErrorMessage([]byte(tt.body)))
		})
	}
}
