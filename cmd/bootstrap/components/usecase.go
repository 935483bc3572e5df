package components

import (
	"venue-ops/internal/domain/booking"
	"venue-ops/internal/domain/resale"
	"venue-ops/internal/pkg/clock"
	"venue-ops/internal/usecase"
	"venue-ops/internal/usecase/commands"
	"venue-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	func(clk clock.Clock) *resale.CapPolicy {
		// nil occupancy falls back to the fixed reference crowd
		return resale.NewCapPolicy(clk, nil)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewResaleCommands,
		commands.NewCheckInCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPricingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
