package main

import (
	"context"
	"log"

	"go.uber.org/zap"
	"pizzashop/internal/config"
	"pizzashop/internal/db"
	"pizzashop/internal/logger"
	"pizzashop/internal/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		zlog.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		zlog.Fatal("apply migrations", zap.Error(err))
	}

	zlog.Info("migrations applied")
}
