package components

import (
	"venue-ops/internal/handler"
	"venue-ops/internal/handler/api"
	"venue-ops/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPricingHandler,
		api.NewResaleHandler,
		api.NewCheckInHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
