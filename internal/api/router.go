package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/api/handlers"
	"github.com/bazaarph/marketplace-api/internal/api/middleware"
	"github.com/bazaarph/marketplace-api/internal/config"
	"github.com/bazaarph/marketplace-api/internal/events"
	"github.com/bazaarph/marketplace-api/internal/repository"
	"github.com/bazaarph/marketplace-api/internal/tracking"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	repos *repository.Repositories,
	publisher events.Publisher,
	carrier *tracking.Client,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Buyer routes (buyer identity comes from the app session layer,
		// which fronts this service)
		v1.GET("/orders/:id", handlers.HandleGetBuyerOrder(repos, logger))
		v1.GET("/orders/:id/tracking", handlers.HandleGetOrderTracking(repos, carrier, logger))

		// Seller dashboard routes (require API key authentication)
		sellerRoutes := v1.Group("/seller")
		sellerRoutes.Use(middleware.AuthMiddleware(repos, logger))
		{
			sellerRoutes.GET("/orders", handlers.HandleListSellerOrders(repos, logger))
			sellerRoutes.POST("/orders/:id/status", handlers.HandleUpdateOrderStatus(repos, publisher, logger))
			sellerRoutes.POST("/orders/:id/ship", handlers.HandleShipOrder(repos, publisher, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
