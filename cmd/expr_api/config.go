package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/exprtree/internal/storage/factory"
	"github.com/DjordjeVuckovic/exprtree/pkg/config/env"
	"github.com/DjordjeVuckovic/exprtree/pkg/logging"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ExprApiConfig struct {
	Logging       logging.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*ExprApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/expr_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	logCfg, err := logging.LoadConfig()
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &ExprApiConfig{
		Logging:       logCfg,
		StorageConfig: *storageCfg,
	}, nil
}
