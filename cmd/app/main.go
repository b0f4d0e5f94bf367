package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/enderryno/nuclearcraft-items/internal/bootstrap"
	"github.com/enderryno/nuclearcraft-items/internal/config"
	"github.com/enderryno/nuclearcraft-items/internal/database"
	"github.com/enderryno/nuclearcraft-items/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.LoadCatalog(cfg, nil)
	if err != nil {
		return err
	}

	pgPool, err := bootstrap.StartMirror(ctx, cfg, catalog)
	if err != nil {
		return err
	}

	// A nil *pgxpool.Pool must not become a non-nil interface
	var dbPool database.Pool
	if pgPool != nil {
		dbPool = pgPool
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		DBPool:         dbPool,
		Registry:       catalog.Registry,
		Resolver:       catalog.Resolver,
		CatalogVersion: catalog.Config.Version,
		Limits: server.Limits{
			Window:      cfg.RateLimitWindow,
			MaxRequests: cfg.RateLimitMaxRequests,
		},
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: pgPool,
	})

	return nil
}
