package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/akarpov/retailhub/internal/app"
	"github.com/akarpov/retailhub/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.RetailFacade) handlers.RetailFacade { return facade }),
	fx.Provide(func(facade handlers.RetailFacade, logger *slog.Logger) *gin.Engine {
		return Setup(facade, logger)
	}),
)
