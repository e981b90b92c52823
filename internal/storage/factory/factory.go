package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/exprtree/internal/storage"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/csv_file"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/es"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/pg"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/sqlite"
)

// NewStore opens the history backend selected by cfg. The returned cleanup
// releases its connections and is never nil.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, func(), error) {
	noop := func() {}

	switch cfg.Type {
	case storage.InMem, "":
		return in_mem.NewInMemStorer(), noop, nil

	case storage.CSV:
		path := cfg.CSVPath
		if path == "" {
			path = csv_file.DefaultPath
		}
		return csv_file.NewStorer(path), noop, nil

	case storage.SQLite:
		if cfg.SQLite == nil {
			return nil, noop, fmt.Errorf("missing sqlite configuration")
		}
		repo, err := sqlite.Open(ctx, *cfg.SQLite)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open sqlite history: %w", err)
		}
		return repo, closer("sqlite", repo.Close), nil

	case storage.PG:
		if cfg.Pg == nil {
			return nil, noop, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		store := pg.NewStore(pool)
		return store, store.Close, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, noop, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create Elasticsearch history: %w", err)
		}
		return store, noop, nil

	default:
		return nil, noop, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

func closer(name string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			slog.Error("failed to close history store", "store", name, "error", err)
		}
	}
}
