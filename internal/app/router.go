package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"

	"ridefare/internal/handler"
	"ridefare/internal/middleware"
	"ridefare/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	FareHandler *handler.FareHandler
	// ResponseStore enables idempotent replay when set.
	ResponseStore  redis.ResponseStoreInterface
	IdempotencyTTL time.Duration
	NewRelicApp    *newrelic.Application
	Logger         *zap.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware(logger))

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
		router.Use(middleware.FareErrorAttributes())
	}

	if deps.ResponseStore != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.ResponseStore, deps.IdempotencyTTL, logger))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/ride-types", deps.FareHandler.ListRideTypes)
		v1.POST("/fares", deps.FareHandler.CreateFare)
	}

	return router
}
