package bootstrap

import (
	"context"
	"log/slog"

	"miccheck-web/internal/infra/bookingapi"
	"miccheck-web/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBookingAPIClient,
	),
)

// NewBookingAPIClient builds the backend client. An unreachable backend at startup is logged, not fatal:
// pages report the failure to visitors instead.
func NewBookingAPIClient(lc fx.Lifecycle, cfg config.BookingAPIConfig, logger *slog.Logger) *bookingapi.Client {
	client := bookingapi.NewClient(cfg, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx); err != nil {
				logger.Warn("booking backend not reachable at startup", "base_url", cfg.BaseURL, "error", err)
				return nil
			}
			logger.Info("booking backend reachable", "base_url", cfg.BaseURL)
			return nil
		},
	})

	return client
}
