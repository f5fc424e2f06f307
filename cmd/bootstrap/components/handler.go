package components

import (
	"context"
	"time"

	"miccheck-web/internal/handler"
	"miccheck-web/internal/handler/api"
	"miccheck-web/internal/handler/middleware"
	"miccheck-web/internal/handler/web"
	"miccheck-web/internal/pkg/clock"
	"miccheck-web/internal/pkg/config"

	"go.uber.org/fx"
)

const (
	rateLimitPruneEvery = 5 * time.Minute
	rateLimitMaxIdle    = 30 * time.Minute
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingFormHandler,
		api.NewCatalogHandler,
		api.NewPricingHandler,
		web.NewBookingPageHandler,
		middleware.NewSessionMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter forgets idle clients periodically while the app runs.
func NewRateLimiter(lc fx.Lifecycle, cfg config.RateLimitConfig, clk clock.Clock) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg, clk)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				t := time.NewTicker(rateLimitPruneEvery)
				defer t.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-t.C:
						limiter.Prune(rateLimitMaxIdle)
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return limiter
}
