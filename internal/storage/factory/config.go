package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/exprtree/internal/storage"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/csv_file"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/es"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/pg"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/exprtree/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	CSVPath string
	SQLite  *sqlite.Config
	Pg      *pg.PoolConfig
	Es      *es.ClientConfig
}

// LoadEnv reads HISTORY_STORAGE and the settings of the selected backend.
// An unset HISTORY_STORAGE selects the in-memory history.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("HISTORY_STORAGE"))
	if storageType == "" {
		storageType = storage.InMem
	}
	if !storageType.Valid() {
		slog.Error("Invalid HISTORY_STORAGE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid HISTORY_STORAGE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.CSV:
		cfg.CSVPath = os.Getenv("HISTORY_CSV_PATH")
		if cfg.CSVPath == "" {
			cfg.CSVPath = csv_file.DefaultPath
		}
	case storage.SQLite:
		dsn := os.Getenv("SQLITE_DSN")
		if dsn == "" {
			dsn = sqlite.DefaultDSN
		}
		cfg.SQLite = &sqlite.Config{DSN: dsn}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %q", v)
			}
			cfg.Pg.MaxConns = int32(n)
		}
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	}

	return cfg, nil
}
