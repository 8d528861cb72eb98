package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-store/internal/app"
	"medical-store/internal/config"
	"medical-store/internal/handlers"
	"medical-store/pkg/logger"
	"medical-store/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "medical-store/docs" // Import docs for Swagger
)

// @title           Medical Store Inventory API
// @version         1.0
// @description     Single-store pharmacy inventory: batches, expiry tracking and low-stock alerts.

// @host      localhost:8080
// @BasePath  /api/v1

// @schemes   http
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Medical Store API",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	appLogger.Info("💾 Storage Configuration",
		zap.String("driver", cfg.StorageDriver),
		zap.String("key", cfg.StorageKey),
		zap.String("dir", cfg.StorageDir),
		zap.String("sqlite_path", cfg.SQLitePath),
	)

	if cfg.UseKafka {
		appLogger.Info("📡 Kafka Configuration",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_items", cfg.KafkaTopicItems),
			zap.String("topic_stock", cfg.KafkaTopicStock),
			zap.String("client_id", cfg.KafkaClientID),
			zap.String("acks", cfg.KafkaAcks),
			zap.Int("retries", cfg.KafkaRetries),
		)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger.Info("🔧 Loading inventory...")
	inventory, err := app.NewInventory(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize inventory", zap.Error(err))
	}
	appLogger.Info("✅ Inventory loaded", zap.Int("items", len(inventory.Store.Items())))

	appLogger.Info("🔧 Initializing response store for idempotency...")
	responseStore := middleware.NewInMemoryResponseStore()
	defer responseStore.Close()

	router := handlers.NewRouter(appLogger, inventory.Store, handlers.RouterOptions{
		Service:       "medical-store",
		Storage:       cfg.StorageDriver,
		DashboardDir:  cfg.DashboardDir,
		ResponseStore: responseStore,
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.DashboardDir != "" {
		appLogger.Info("🖥️ Serving dashboard", zap.String("dir", cfg.DashboardDir))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Listening",
			zap.String("port", cfg.Port),
			zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := inventory.Close(ctx); err != nil {
		appLogger.Error("Failed to close inventory storage", zap.Error(err))
	}

	appLogger.Info("Server exited")
}
