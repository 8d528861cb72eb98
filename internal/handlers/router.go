package handlers

import (
	"net/http"
	"time"

	"medical-store/pkg/logger"
	"medical-store/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Service string
	Storage string
	// Served under /dashboard when set
	DashboardDir string
	// Write responses are replayed for repeated Idempotency-Key headers when set
	ResponseStore  middleware.ResponseStore
	IdempotencyTTL time.Duration
}

// NewRouter builds the API engine with the middleware chain and all routes under /api/v1.
func NewRouter(appLogger *zap.Logger, store InventoryService, opts RouterOptions) *gin.Engine {
	if opts.IdempotencyTTL == 0 {
		opts.IdempotencyTTL = 5 * time.Minute
	}

	router := gin.New()

	// CORS must be first to answer preflight requests
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	if opts.ResponseStore != nil {
		router.Use(middleware.IdempotencyMiddleware(opts.ResponseStore, appLogger, opts.IdempotencyTTL))
	}
	router.NoRoute(middleware.NotFoundHandler())

	v1 := router.Group("/api/v1")
	v1.GET("/health", NewHealthHandler(opts.Service, opts.Storage, store).HealthCheck)
	NewInventoryHandler(appLogger, store).RegisterRoutes(v1)

	if opts.DashboardDir != "" {
		router.Static("/dashboard", opts.DashboardDir)
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard/")
		})
	}

	return router
}
