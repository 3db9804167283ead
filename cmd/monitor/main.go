package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nmbmarques/water-ie-outage/internal/adapter/arcgis"
	httpadapter "github.com/nmbmarques/water-ie-outage/internal/adapter/http"
	mailadapter "github.com/nmbmarques/water-ie-outage/internal/adapter/mail"
	"github.com/nmbmarques/water-ie-outage/internal/config"
	"github.com/nmbmarques/water-ie-outage/internal/monitor"
	"github.com/nmbmarques/water-ie-outage/internal/observability"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg == nil {
		return // help requested
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := arcgis.NewClient(cfg.Endpoint, cfg.RequestTimeout, logger)

	// Email delivery is feature-flagged on the full SMTP configuration.
	var notifier monitor.Notifier
	if cfg.EmailEnabled() {
		notifier = mailadapter.NewMailer(cfg, logger)
		logger.Info("email notifications enabled", "server", cfg.SMTPServer, "to", cfg.ToEmail)
	} else {
		logger.Info("email notifications disabled")
	}

	m := monitor.New(cfg, client, notifier, os.Stdout, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Operational endpoints are optional for a single-county watcher.
	var srv *httpadapter.Server
	if cfg.HTTPAddr != "" {
		srv = httpadapter.NewServer(cfg.HTTPAddr, m, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	// Start the poll loop.
	go func() {
		if err := m.Run(ctx); err != nil {
			logger.Error("monitor error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
