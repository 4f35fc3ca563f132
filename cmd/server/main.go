package main

import (
	"context"                       // context package is needed for Redis operations and shutdown
	"errors"                        // Server close detection
	"music_library/internal/api"    // Custom package for API handlers
	"music_library/internal/config" // Custom package for configuration
	"music_library/internal/db"     // Database connection and migrations
	"music_library/internal/utils"  // Logger setup
	"net/http"                      // HTTP server
	"os"                            // Signals
	"os/signal"                     // Signal notification
	"syscall"                       // SIGTERM
	"time"                          // Timeouts

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Setup logger
	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.IsProd()); err != nil {
		logrus.Fatal(err)
	}

	// Connect to the database and bring the schema up to date
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatal(err) // Fatal error if DB connection fails
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatal(err)
	}

	// Setup Redis client, caching stays off without REDIS_ADDR
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set, list caching disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(cfg, conn, redisClient)
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for SIGINT or SIGTERM, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.WithField("signal", sig.String()).Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logrus.WithError(err).Warn("Closing Redis client failed")
		}
	}
	if err := db.Close(conn); err != nil {
		logrus.WithError(err).Warn("Closing database failed")
	}
	logrus.Info("Server stopped")
}
