package components

import (
	"context"
	"log/slog"

	"miccheck-web/internal/infra/bookingapi"
	"miccheck-web/internal/infra/sessionstore"
	"miccheck-web/internal/pkg/clock"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		NewSessionStore,
		fx.Annotate(
			func(s *sessionstore.Store) *sessionstore.Store { return s },
			fx.As(new(shared.FormStore)),
		),
		fx.Annotate(
			func(c *bookingapi.Client) *bookingapi.Client { return c },
			fx.As(new(shared.BookingBackend)),
		),
	),
)

// NewSessionStore runs the eviction janitor for the lifetime of the app.
func NewSessionStore(lc fx.Lifecycle, cfg config.SessionConfig, clk clock.Clock, logger *slog.Logger) *sessionstore.Store {
	store := sessionstore.NewStore(cfg, clk, logger)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunJanitor(ctx, cfg.JanitorEvery)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			logger.Info("session store stopped", "sessions", store.Len())
			return nil
		},
	})

	return store
}
