package components

import (
	"luxe-escape/internal/handler"
	"luxe-escape/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCheckoutHandler,
		api.NewRoomHandler,
		api.NewContentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
