package main

import (
	"alcyxob/exercise-tracker/internal/api"
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository/mongo"
	"alcyxob/exercise-tracker/internal/service"
	"alcyxob/exercise-tracker/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting exercise tracker")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI, cfg.Database.Timeout)
	if err != nil {
		logger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		logger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			logger.Warn("index creation failed", zap.Error(err))
			return
		}
		logger.Info("index creation completed")
	}()

	// --- Initialize Storage ---
	var landingStore storage.FileStorage
	if cfg.S3.Enabled() {
		landingStore, err = storage.NewS3Storage(context.Background(), cfg.S3, logger)
		if err != nil {
			logger.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)

	// --- Initialize Services ---
	userService := service.NewUserService(userRepo)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo, nil)
	logService := service.NewLogService(userRepo, exerciseRepo)

	// --- Setup Routes ---
	opts := api.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		PublicDir:      cfg.Server.PublicDir,
		Health: func(ctx context.Context) error {
			return mongo.PingDB(ctx, dbClient)
		},
	}
	router := api.NewRouter(logger, opts)
	landing := api.NewLandingHandler(filepath.Join(cfg.Server.ViewsDir, "index.html"), landingStore, cfg.S3.LandingKey, logger)
	api.SetupRoutes(router, opts, userService, exerciseService, logService, landing)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.ListenAddress(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// In-flight requests get 5 seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
