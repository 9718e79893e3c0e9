package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rajubill/internal/auth"
	"rajubill/internal/bill"
	billctrl "rajubill/internal/bill/controller"
	billsvc "rajubill/internal/bill/service"
	"rajubill/internal/commons"
	"rajubill/internal/config"
	"rajubill/internal/export"
	exportctrl "rajubill/internal/export/controller"
	"rajubill/internal/infrastructure/logger"
	"rajubill/internal/infrastructure/mysql"
	"rajubill/internal/infrastructure/storage"
	"rajubill/internal/server"
	"rajubill/internal/settings"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	store := storage.NewStore(cfg.Storage.Path)

	var (
		billController *billctrl.BillController
		billService    *billsvc.BillService
	)
	if cfg.Database.Enabled {
		db, err := mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected")
		billController = bill.NewMySQLModule(db, zapLogger)
		billService = bill.NewMySQLService(db)
	} else {
		billController = bill.NewModule(store, zapLogger)
		billService = bill.NewService(store)
	}

	settingsRepo := settings.NewRepository(store)
	settingsController := settings.NewController(settingsRepo, zapLogger)

	authService := auth.NewService(store)
	authController := auth.NewController(authService, zapLogger)

	pipeline := export.NewModule(cfg.Export, zapLogger)
	exportController := exportctrl.NewExportController(
		billService, settingsRepo, pipeline, zapLogger,
	)

	router := server.NewRouter(authController, billController, exportController, settingsController, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
