package components

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra/salonstore"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/idgen"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	storeBaseOption,
	fx.Provide(
		fx.Annotate(
			NewSalonStore,
			fx.As(new(commands.AvailabilityStore)),
			fx.As(new(commands.DraftStore)),
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.ServiceReadStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.AvailabilityReadStore)),
			fx.As(new(queries.DraftReadStore)),
		),
	),
)

var storeBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewUUIDGenerator,
	catalog.DefaultCatalog,
)

func NewSalonStore(
	lc fx.Lifecycle,
	cfg config.Config,
	cat *catalog.Catalog,
	clk clock.Clock,
	ids idgen.Generator,
	logger *slog.Logger,
) *salonstore.Store {
	var seed salonstore.Seed
	if cfg.Seed.Enabled {
		seed = salonstore.DefaultSeed()
	}
	store := salonstore.New(cat, seed, clk, ids, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Salon store ready",
				"services", cat.Len(),
				"availability_ranges", len(store.AvailabilityRanges()),
				"bookings", len(store.Bookings()),
				"seeded", cfg.Seed.Enabled,
			)
			return nil
		},
	})

	return store
}
