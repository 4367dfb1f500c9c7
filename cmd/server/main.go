package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fintrack/configs"
	"fintrack/internal/auth"
	"fintrack/internal/handlers"
	"fintrack/internal/ledger"
	"fintrack/internal/logger"
	"fintrack/internal/routes"
	"fintrack/internal/seed"
	"fintrack/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	configs.LoadConfig()
	cfg := configs.AppConfig

	db, err := store.NewDB(cfg.DB.DSN)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Log.Fatal("migrations failed", zap.Error(err))
	}
	logger.Log.Info("connected to the database")

	seed.Run(db)

	st := store.New(db)
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	hasher := auth.NewHasher(cfg.Bcrypt.Cost)
	authSvc := auth.NewService(st, hasher, tokens, logger.Log)
	ledgerSvc := ledger.NewService(st, logger.Log)
	h := handlers.New(authSvc, ledgerSvc, st, logger.Log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.New(h, tokens),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("server exited with error", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
