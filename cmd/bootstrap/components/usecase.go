package components

import (
	"miccheck-web/internal/domain/pricing"
	"miccheck-web/internal/usecase"
	"miccheck-web/internal/usecase/commands"
	"miccheck-web/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseSessionModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		pricing.NewDefaultPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingFormCommands,
		commands.NewQuoteCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingFormQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		usecase.NewSessionTokens,
	),
)
