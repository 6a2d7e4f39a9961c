package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"balcao/internal/commons"
	"balcao/internal/config"
	"balcao/internal/customer"
	"balcao/internal/dashboard"
	"balcao/internal/infrastructure/logger"
	"balcao/internal/infrastructure/mysql"
	"balcao/internal/order"
	"balcao/internal/product"
	"balcao/internal/server"

	"go.uber.org/zap"
)

func main() {
	var cfg *config.Config
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = commons.LoadConfig(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	orderCtrl := order.NewModule(db, cfg, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	customerCtrl := customer.NewModule(db, zapLogger)
	dashboardCtrl := dashboard.NewModule(db, zapLogger)

	router := server.NewRouter(orderCtrl, productCtrl, customerCtrl, dashboardCtrl, zapLogger)

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
