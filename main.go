package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comicprices/config"
	"comicprices/database"
	"comicprices/logging"
	"comicprices/routes"
	"comicprices/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	app := routes.NewApp(routes.AppOptions{
		Store:          store.New(db),
		Ping:           func(ctx context.Context) error { return database.Ping(ctx, db) },
		Log:            logger,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
	})

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdown(app.ShutdownWithContext, db, logger)
}

func shutdown(stop func(context.Context) error, db *gorm.DB, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := stop(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		logger.Error("closing database", zap.Error(err))
	}
}
