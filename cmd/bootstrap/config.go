package bootstrap

import (
	"miccheck-web/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingAPIConfig { return cfg.BookingAPI },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
	),
)
