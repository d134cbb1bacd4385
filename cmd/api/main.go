package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {

	fs := pflag.NewFlagSet("api", pflag.ContinueOnError)
	cfg, src, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	defer observability.SyncLogger()

	// Tracing, metrics, log export
	shutdownTelemetry, err := initTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	// Config reload
	watcher := config.NewWatcher(src, observability.Logger, applyReload)
	if err := watcher.Start(ctx); err != nil {
		observability.Logger.Warn("config watcher disabled", zap.Error(err))
	}

	// Router
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.String("config", src.Path),
			zap.Bool("telemetry", cfg.Telemetry),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	return waitForShutdown(srv, cfg)
}

func waitForShutdown(srv *http.Server, cfg config.Config) error {

	observability.Logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}

// applyReload applies settings that can change without a restart.
func applyReload(cfg config.Config) {
	if err := observability.SetLogLevel(cfg.LogLevel); err != nil {
		observability.Logger.Warn("ignoring log level", zap.Error(err))
		return
	}
	observability.Logger.Info("log level updated", zap.String("level", cfg.LogLevel))
}
