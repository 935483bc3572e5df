package components

import (
	"venue-ops/internal/infra/readstore"
	repo_impl "venue-ops/internal/infra/repository"
	"venue-ops/internal/usecase/commands"
	"venue-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewVenueRepository,
			fx.As(new(commands.VenueRepository)),
			fx.As(new(queries.VenueReader)),
		),
		fx.Annotate(
			repo_impl.NewRuleRepository,
			fx.As(new(commands.RuleRepository)),
			fx.As(new(queries.RuleReader)),
		),
		fx.Annotate(
			repo_impl.NewTicketRepository,
			fx.As(new(commands.TicketRepository)),
		),
		fx.Annotate(
			repo_impl.NewResaleOfferRepository,
			fx.As(new(commands.ResaleOfferRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
