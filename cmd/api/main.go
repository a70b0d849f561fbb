package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xpyvent/xpyvent-api/internal/config"
	"github.com/xpyvent/xpyvent-api/internal/logger"
	"github.com/xpyvent/xpyvent-api/internal/server"
	"github.com/xpyvent/xpyvent-api/internal/storage"
)

func main() {
	cfg := config.Load()

	logLevel := "info"
	if cfg.Server.GinMode == "debug" {
		logLevel = "debug"
	}
	logger.Initialize(logLevel)
	log := logger.Get()

	storageType, err := storage.ValidateStorageType(getEnv("STORAGE_TYPE", string(storage.StorageTypePostgres)))
	if err != nil {
		log.Error("Invalid storage type", "error", err)
		os.Exit(1)
	}

	container, err := storage.NewFactory(storageType).CreateContainer(cfg)
	if err != nil {
		log.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	srv := server.New(cfg, container)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
