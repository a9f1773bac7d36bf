// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/florelle/orders-backend/docs"
	"github.com/florelle/orders-backend/internal/catalog"
	"github.com/florelle/orders-backend/internal/config"
	"github.com/florelle/orders-backend/internal/handlers"
	"github.com/florelle/orders-backend/internal/middleware"
	"github.com/florelle/orders-backend/internal/services"
	"github.com/florelle/orders-backend/internal/storage"
)

func Initialize(cfg *config.Config, cat *catalog.Catalog, store *storage.OrderStore, log *logrus.Logger) *gin.Engine {
	// Initialize services
	orderService := services.NewOrderService(store, cat, log)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Swagger UI, mounted where the old dashboard expects it
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		// summary must be registered alongside :id; gin resolves the static
		// segment first
		api.GET("/orders/summary", orderHandler.GetOrderSummary)
		api.GET("/orders", orderHandler.GetOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders", orderHandler.CreateOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)
	}

	return r
}
