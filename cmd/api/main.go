package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"huerto-hogar/internal/cart"
	"huerto-hogar/internal/config"
	"huerto-hogar/internal/db"
	"huerto-hogar/internal/httpserver"
	productrepo "huerto-hogar/internal/repository/product"
	userrepo "huerto-hogar/internal/repository/user"
	"huerto-hogar/internal/seed"
	"huerto-hogar/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool    *pgxpool.Pool
		users   userrepo.Repository
		catalog productrepo.Repository
	)
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		users = userrepo.NewPostgres(pool, logger)
		catalog = productrepo.NewPostgres(pool, logger)
	} else {
		logger.Printf("DB_DSN empty, using in-memory stores with seed catalog")
		users = userrepo.NewMemory()
		catalog = productrepo.NewMemory(seed.Products()...)
	}

	sessions := session.NewManager()
	cartStore := cart.New(logger)
	// Ending the session also empties the cart.
	sessions.OnLogout(cartStore.ClearCart)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Users:         users,
		Catalog:       catalog,
		Cart:          cartStore,
		Session:       sessions,
		SubmitTimeout: cfg.SubmitTimeout,
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
