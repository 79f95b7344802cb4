package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		func(cmds commands.DraftCommands, q queries.DraftQueries, cfg config.Config) *api.DraftHandler {
			return api.NewDraftHandler(cmds, q, cfg.Booking.PaymentSlipMaxBytes)
		},
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	service *api.ServiceHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	draft *api.DraftHandler,
) handler.Handlers {
	return handler.Handlers{
		Service:      service,
		Availability: availability,
		Booking:      booking,
		Draft:        draft,
	}
}
