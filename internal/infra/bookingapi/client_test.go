//go:build unit

package bookingapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/infra"
	"miccheck-web/internal/infra/bookingapi"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newClient(t *testing.T, handler http.HandlerFunc) *bookingapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return bookingapi.NewClient(config.BookingAPIConfig{BaseURL: srv.URL + "/api/", Timeout: 2 * time.Second}, discardLogger)
}

func TestClient_ListSpots(t *testing.T) {
	body := `[
		{"id": 7, "show": 3, "show_date": "2026-02-14", "show_label": "Valentine's Open Mic",
		 "time": "19:30:00", "duration_minutes": 5, "price": "150.00", "spot_type": "Standup",
		 "max_slots": 1, "is_full": false, "spots_remaining": 1},
		{"id": 8, "show": 3, "show_date": "2026-02-14", "show_label": "",
		 "time": "19:40:00", "duration_minutes": 10, "price": "250.00", "spot_type": "",
		 "max_slots": 1, "is_full": true, "spots_remaining": 0}
	]`

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/spots/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})

	got, err := client.ListSpots(context.Background())
	require.NoError(t, err)

	want := []spot.Spot{
		{ID: 7, ShowID: 3, ShowDate: "2026-02-14", ShowLabel: "Valentine's Open Mic", Time: "19:30:00",
			DurationMinutes: 5, Price: "150.00", SpotType: "Standup", MaxSlots: 1, SpotsRemaining: 1},
		{ID: 8, ShowID: 3, ShowDate: "2026-02-14", Time: "19:40:00", DurationMinutes: 10, Price: "250.00",
			MaxSlots: 1, IsFull: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spots mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_ListShows(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shows/", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id": 3, "date": "2026-02-14", "label": "Valentine's Open Mic",
			"spots": [{"id": 7, "show": 3, "time": "19:30:00", "duration_minutes": 5, "price": "150.00"}]}]`)
	})

	got, err := client.ListShows(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Valentine's Open Mic", got[0].Label)
	require.Len(t, got[0].Spots, 1)
	assert.Equal(t, int64(7), got[0].Spots[0].ID)
	assert.Equal(t, int64(3), got[0].Spots[0].ShowID)
}

func TestClient_ListSpotsErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.ListSpots(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRejected))
		assert.True(t, errs.Is(err, errs.ErrUpstreamRejected))
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"not": "a list"`)
		})
		_, err := client.ListSpots(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDecode))
	})

	t.Run("backend down", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := bookingapi.NewClient(config.BookingAPIConfig{BaseURL: srv.URL, Timeout: time.Second}, discardLogger)

		_, err := client.ListSpots(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})
}

func TestClient_ValidateCoupon(t *testing.T) {
	t.Run("sends trimmed code and spot count", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/coupon/validate/", r.URL.Path)
			var payload bookingapi.ValidateCouponPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, bookingapi.ValidateCouponPayload{Code: "iLoveVC2", SpotCount: 6}, payload)

			_, _ = io.WriteString(w, `{"valid": true, "min_spots": 6, "discount_type": "fixed",
				"discount_value": "100.00", "description": "Valentine's week"}`)
		})

		got, err := client.ValidateCoupon(context.Background(), coupon.NewCode(" iLoveVC2 "), 6)
		require.NoError(t, err)

		want := &coupon.Validation{
			Valid:         true,
			MinSpots:      ptr.Of(6),
			DiscountType:  ptr.Of("fixed"),
			DiscountValue: ptr.Of("100.00"),
			Description:   ptr.Of("Valentine's week"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("validation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("verdict is read whatever the status", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"valid": false, "message": "Minimum 6 spots required."}`)
		})

		got, err := client.ValidateCoupon(context.Background(), coupon.NewCode("iLoveVC2"), 2)
		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, "Minimum 6 spots required.", got.StatusMessage())
	})

	t.Run("undecodable verdict", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, `<html>bad gateway</html>`)
		})

		_, err := client.ValidateCoupon(context.Background(), coupon.NewCode("iLoveVC2"), 2)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDecode))
	})
}

func TestClient_CreateBooking(t *testing.T) {
	req := booking.Request{
		SpotIDs:       []int64{7, 9},
		PerformerName: "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "98765",
	}

	t.Run("success", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/bookings/", r.URL.Path)
			var raw map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.NotContains(t, raw, "coupon_code", "empty coupon is omitted")
			assert.Equal(t, []any{float64(7), float64(9)}, raw["spot_ids"])

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"success": true, "message": "Booked", "total": 300.0}`)
		})

		got, err := client.CreateBooking(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, &booking.Result{Success: true, Message: "Booked", Total: 300}, got)
	})

	t.Run("rejection carries the most specific message", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"spot_ids": ["Spot 7 is full."], "coupon_code": ["Coupon expired."]}`)
		})

		_, err := client.CreateBooking(context.Background(), req)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRejected))
		assert.Equal(t, "Coupon expired.", infra.UpstreamMessage(err))
	})

	t.Run("rejection without a known field falls back", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error": "conflict"}`)
		})

		_, err := client.CreateBooking(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, booking.MsgBookingFailed, infra.UpstreamMessage(err))
	})
}

func TestClient_Ping(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/", r.URL.Path)
			_, _ = io.WriteString(w, `{"status": "ok"}`)
		})
		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		err := client.Ping(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}
