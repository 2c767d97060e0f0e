package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"pizzashop/internal/config"
	"pizzashop/internal/db"
	"pizzashop/internal/httpserver"
	"pizzashop/internal/logger"
	menurepo "pizzashop/internal/repository/menu"
	orderrepo "pizzashop/internal/repository/order"
	cartsvc "pizzashop/internal/service/cart"
	ordersvc "pizzashop/internal/service/order"
	"pizzashop/internal/session"
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
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		zlog.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	menuRepo := menurepo.NewPostgres(dbpool, zlog)
	orderRepo := orderrepo.NewPostgres(dbpool, zlog)
	orderService := ordersvc.New(orderRepo, zlog)
	sessions := session.NewMemoryStore(cfg.SessionTTL)
	cartService := cartsvc.New(sessions, menuRepo, zlog)

	srv := httpserver.New(cfg.HTTPAddr, zlog, dbpool, httpserver.Deps{
		MenuRepo: menuRepo,
		CartSvc:  cartService,
		OrderSvc: orderService,
		Sessions: httpserver.TokenFunc(session.NewToken),
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		zlog.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		zlog.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	} else {
		zlog.Info("server stopped")
	}
}
