package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportagency/internal/auth"
	"sportagency/internal/config"
	"sportagency/internal/db"
	"sportagency/internal/dbinit"
	apphttp "sportagency/internal/http"
	"sportagency/internal/logging"
	"sportagency/internal/notify"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil && cfg == nil {
		panic(err)
	}

	l := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	slog.SetDefault(l)

	if err != nil {
		slog.Warn("Could not read `config.yaml`. Running with default values.")
		slog.Warn("The JWT secret is set to a default value. This is a security risk in production.")
	}

	pgURL, err := cfg.Database.AppURL()
	if err != nil {
		slog.Error("db.url", "err", err)
		os.Exit(1)
	}
	maintURL, err := cfg.Database.MaintenanceURL()
	if err != nil {
		slog.Error("db.maintenance_url", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	if err := dbinit.EnsureDatabaseAndMigrate(ctx, maintURL, cfg.Database.Name, cfg.Database.User); err != nil {
		slog.Error("db.init", "err", err)
		os.Exit(1)
	}
	slog.Info("db.ready")

	auth.SetSecret(cfg.Security.JWTSecret)

	ctxpool, cancelpool := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancelpool()
	pool, err := db.NewPool(ctxpool, pgURL)
	if err != nil {
		slog.Error("db.pool", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	mux, err := apphttp.NewMux(pool, apphttp.Options{
		SiteName: cfg.Site.Name,
		BaseURL:  cfg.Site.BaseURL,
		Notifier: notify.NewWebhook(cfg.Notify.WebhookURL),
	})
	if err != nil {
		slog.Error("http.templates", "err", err)
		os.Exit(1)
	}
	srv := &http.Server{
		Addr:         cfg.HTTP.Address, // e.g. ":8080"
		Handler:      apphttp.WithStandardMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("http.starting", "addr", cfg.HTTP.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http.listen", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http.shutting_down")
	_ = srv.Shutdown(ctx)
	slog.Info("http.stopped")
}
