// Command relay runs the TCP message relay: clients register subscriber ports
// and send expressions, whose results are broadcast to every subscriber.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/relay"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/factory"
	"github.com/DjordjeVuckovic/exprtree/pkg/config/env"
	"github.com/DjordjeVuckovic/exprtree/pkg/logging"
)

const storeInitTimeout = 30 * time.Second

func main() {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/relay/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	logCfg, err := logging.LoadConfig()
	if err != nil {
		slog.Error("Failed to load logging configuration", "error", err)
		os.Exit(1)
	}
	logCloser, err := logging.Setup(logCfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}

	code := run()
	_ = logCloser.Close()
	os.Exit(code)
}

func run() int {
	cfg, err := relay.LoadConfig()
	if err != nil {
		slog.Error("Failed to load relay configuration", "error", err)
		return 1
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return 1
	}

	initCtx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	store, cleanup, err := factory.NewStore(initCtx, *storageCfg)
	cancel()
	if err != nil {
		slog.Error("Failed to create history store", "type", storageCfg.Type, "error", err)
		return 1
	}
	defer cleanup()

	srv, err := relay.NewServer(*cfg, history.NewRecorder(store))
	if err != nil {
		slog.Error("Failed to create relay", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		slog.Error("Relay failed", "error", err)
		return 1
	}
	return 0
}
