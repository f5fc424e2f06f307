package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/coupon"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/infra"
	"miccheck-web/internal/pkg/config"
)

const (
	pathHealth         = "/"
	pathSpots          = "/spots/"
	pathShows          = "/shows/"
	pathValidateCoupon = "/coupon/validate/"
	pathBookings       = "/bookings/"

	maxBodyBytes = 1 << 20
)

// Client talks to the external booking backend. Calls are single-shot: no retries, no de-duplication.
type Client struct {
	cfg        config.BookingAPIConfig
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BookingAPIConfig, logger *slog.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) ListSpots(ctx context.Context) ([]spot.Spot, error) {
	var dtos []SpotDTO
	if err := c.getJSON(ctx, pathSpots, &dtos); err != nil {
		return nil, err
	}
	spots, err := toSpots(dtos)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to map spots", http.StatusOK, err)
	}
	return spots, nil
}

func (c *Client) ListShows(ctx context.Context) ([]spot.Show, error) {
	var dtos []ShowDTO
	if err := c.getJSON(ctx, pathShows, &dtos); err != nil {
		return nil, err
	}
	shows, err := toShows(dtos)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to map shows", http.StatusOK, err)
	}
	return shows, nil
}

// ValidateCoupon asks the backend whether code applies to spotCount spots.
// The verdict body is interpreted whatever the status code; only transport and decode failures are errors.
func (c *Client) ValidateCoupon(ctx context.Context, code coupon.Code, spotCount int) (*coupon.Validation, error) {
	payload := ValidateCouponPayload{Code: code.String(), SpotCount: spotCount}
	status, body, err := c.postJSON(ctx, pathValidateCoupon, payload)
	if err != nil {
		return nil, err
	}

	var dto CouponValidationDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to decode coupon validation", status, err)
	}
	v, err := toValidation(dto)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to map coupon validation", status, err)
	}
	return v, nil
}

// CreateBooking submits the booking. A non-2xx answer becomes a KindRejected error whose message is the
// most specific one the backend gave (see ExtractErrorMessage).
func (c *Client) CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	status, body, err := c.postJSON(ctx, pathBookings, toCreateBookingPayload(req))
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, infra.RejectedWithMessage(c.logger, "booking rejected", status, ExtractErrorMessage(body))
	}

	var res CreateBookingResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to decode booking response", status, err)
	}
	return toResult(res), nil
}

// Ping checks the backend health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL(pathHealth), nil)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "failed to build health request", 0, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "health request failed", 0, err)
	}
	defer c.drain(resp)

	if !isSuccess(resp.StatusCode) {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "health check failed", resp.StatusCode, nil)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL(path), nil)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "failed to build request "+path, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "request failed "+path, 0, err)
	}
	defer c.drain(resp)

	if !isSuccess(resp.StatusCode) {
		return infra.WrapUpstreamErr(c.logger, infra.KindRejected, "unexpected status "+path, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(target); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to decode "+path, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, "failed to encode payload "+path, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL(path), bytes.NewReader(buf))
	if err != nil {
		return 0, nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "failed to build request "+path, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "request failed "+path, 0, err)
	}
	defer c.drain(resp)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, "failed to read response "+path, resp.StatusCode, err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn("failed to close response body", "error", err)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
