package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quickbite/internal/config"
	"quickbite/internal/db"
	"quickbite/internal/httpserver"
	collegerepo "quickbite/internal/repository/college"
	menurepo "quickbite/internal/repository/menu"
	orderrepo "quickbite/internal/repository/order"
	tokenrepo "quickbite/internal/repository/token"
	userrepo "quickbite/internal/repository/user"
	authsvc "quickbite/internal/service/auth"
	catalogsvc "quickbite/internal/service/catalog"
	ordersvc "quickbite/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	collegeRepo := collegerepo.NewPostgres(dbpool)
	menuRepo := menurepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, tokenRepo, cfg.TokenTTL)
	catalogService := catalogsvc.New(collegeRepo, menuRepo)
	orderService := ordersvc.New(orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:    authService,
		CatalogSvc: catalogService,
		OrderSvc:   orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
