package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	dialect    TEXT NOT NULL,
	expression TEXT NOT NULL,
	postfix    TEXT NOT NULL DEFAULT '',
	result     TEXT NOT NULL DEFAULT '',
	error      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
)`

// fixed width so that created_at sorts correctly as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const DefaultDSN = "file:history.db"

type Config struct {
	// DSN is a go-sqlite3 data source, e.g. "file:history.db" or ":memory:".
	DSN string
}

// Repo keeps evaluation history in SQLite using prepared statements.
type Repo struct {
	db        *sql.DB
	saveStmt  *sql.Stmt
	listStmt  *sql.Stmt
	countStmt *sql.Stmt
}

func Open(ctx context.Context, cfg Config) (*Repo, error) {
	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	repo, err := NewRepo(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepo(ctx context.Context, db *sql.DB) (*Repo, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create evaluations table: %w", err)
	}

	saveStmt, err := db.PrepareContext(ctx, `INSERT INTO
		evaluations (id, source, dialect, expression, postfix, result, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare save: %w", err)
	}
	listStmt, err := db.PrepareContext(ctx, `SELECT id, source, dialect, expression, postfix, result, error, created_at
		FROM evaluations ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list: %w", err)
	}
	countStmt, err := db.PrepareContext(ctx, `SELECT COUNT(*) FROM evaluations`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare count: %w", err)
	}

	return &Repo{
		db:        db,
		saveStmt:  saveStmt,
		listStmt:  listStmt,
		countStmt: countStmt,
	}, nil
}

// Close releases the prepared statements and the database.
func (r *Repo) Close() error {
	r.saveStmt.Close()
	r.listStmt.Close()
	r.countStmt.Close()
	return r.db.Close()
}

func (r *Repo) Healthy(ctx context.Context) bool {
	return r.db.PingContext(ctx) == nil
}

func (r *Repo) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	evaluation = evaluation.WithDefaults(time.Now())
	if err := r.insert(ctx, r.saveStmt, evaluation); err != nil {
		return uuid.Nil, err
	}
	return evaluation.ID, nil
}

func (r *Repo) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt := tx.StmtContext(ctx, r.saveStmt)
	now := time.Now()
	for _, e := range evaluations {
		if err := r.insert(ctx, stmt, e.WithDefaults(now)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit evaluations: %w", err)
	}
	return nil
}

func (r *Repo) insert(ctx context.Context, stmt *sql.Stmt, e domain.Evaluation) error {
	_, err := stmt.ExecContext(ctx,
		e.ID.String(),
		e.Source,
		e.Dialect.String(),
		e.Expression,
		e.Postfix,
		e.Result,
		e.Error,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	_ = page.Validate()

	var total int64
	if err := r.countStmt.QueryRowContext(ctx).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := r.listStmt.QueryContext(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Evaluation, 0, page.Size)
	for rows.Next() {
		var (
			e         domain.Evaluation
			id        string
			dialect   string
			createdAt string
		)
		if err := rows.Scan(&id, &e.Source, &dialect, &e.Expression, &e.Postfix, &e.Result, &e.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid evaluation id %q: %w", id, err)
		}
		if e.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("invalid created_at for %s: %w", id, err)
		}
		e.Dialect = operator.Dialect(dialect)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}
