package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akarpov/retailhub/internal/server/http/handlers"
	"github.com/akarpov/retailhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RetailFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.WithRequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))

	protected.POST("/products", catalogHandler.Create)
	protected.GET("/products", catalogHandler.List)
	protected.GET("/products/:id", catalogHandler.Get)

	protected.POST("/customers", customerHandler.Create)
	protected.GET("/customers", customerHandler.List)
	protected.PUT("/customers/:id", customerHandler.Update)
	protected.DELETE("/customers/:id", customerHandler.Delete)
	protected.GET("/customers/:id/orders", customerHandler.Orders)

	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.POST("/orders/:id/cancel", orderHandler.Cancel)

	protected.POST("/orders/:id/payment", paymentHandler.Create)
	protected.POST("/orders/:id/payment/process", paymentHandler.Process)
	protected.POST("/orders/:id/payment/refund", paymentHandler.Refund)

	return engine
}
