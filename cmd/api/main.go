package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"itemstore-backend/internal/config"
	"itemstore-backend/internal/database"
	"itemstore-backend/internal/handlers"
	"itemstore-backend/internal/logger"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Init(cfg.DatabasePath)
	if err != nil {
		zapLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	router, err := handlers.NewRouter(cfg, zapLogger, db)
	if err != nil {
		zapLogger.Fatal("Failed to build router", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	zapLogger.Info("Server starting",
		zap.String("addr", addr),
		zap.String("environment", cfg.Environment),
	)

	if err := http.ListenAndServe(addr, router); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
