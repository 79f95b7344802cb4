package components

import (
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityUseCase,
		func(store commands.DraftStore, cfg config.Config, logger *slog.Logger) commands.DraftCommands {
			return commands.NewDraftUseCase(store, cfg.Booking, logger)
		},
		func(store commands.BookingStore, cfg config.Config, logger *slog.Logger) commands.BookingCommands {
			return commands.NewBookingUseCase(store, cfg.Booking, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewServiceQueries,
		queries.NewBookingQueries,
		queries.NewDraftQueries,
		func(store queries.AvailabilityReadStore, cfg config.Config, logger *slog.Logger) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(store, cfg.Booking.RequireRangeMembership, logger)
		},
	),
)
