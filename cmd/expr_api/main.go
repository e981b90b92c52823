// Package main exprtree API
// @title exprtree API
// @version 1.0
// @description Arithmetic and boolean expression evaluation with expression trees
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/exprtree/docs"
	"github.com/DjordjeVuckovic/exprtree/internal/api/server"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/router"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/factory"
	"github.com/DjordjeVuckovic/exprtree/pkg/logging"
	pkgserver "github.com/DjordjeVuckovic/exprtree/pkg/server"
	"github.com/labstack/echo/v4"
)

const storeInitTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	logCloser, err := logging.Setup(cfg.Logging)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	store, cleanup, err := factory.NewStore(initCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create history store", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	s := server.New(sCfg, pkgserver.CheckerFor(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks().
		SetupOpenApi()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "exprtree API is running")
	})

	evalRouter := router.NewEvalRouter(s.Echo, history.NewRecorder(store), store)
	evalRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
