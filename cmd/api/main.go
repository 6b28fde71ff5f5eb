package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/communitywatch/backend/internal/api"
	"github.com/communitywatch/backend/internal/auth"
	"github.com/communitywatch/backend/internal/config"
	"github.com/communitywatch/backend/internal/db"
	"github.com/communitywatch/backend/internal/logger"
	"github.com/communitywatch/backend/internal/metrics"
	"github.com/communitywatch/backend/internal/repository/mongodb"
	"github.com/communitywatch/backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error("db disconnect", "err", err)
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Error("ensure indexes", "err", err)
		os.Exit(1)
	}

	repos := mongodb.NewRepositories(store.DB)
	tm := auth.NewTokenManager(cfg.JWTSecret, time.Hour)

	authSvc := services.NewAuthService(repos.Users, tm)
	reportSvc := services.NewReportService(repos.Reports)

	metrics.Init()
	r := api.NewRouter(cfg, authSvc, reportSvc, tm)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
