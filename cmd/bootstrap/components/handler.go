package components

import (
	"bidroom/internal/handler"
	"bidroom/internal/handler/api"
	"bidroom/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNegotiationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
