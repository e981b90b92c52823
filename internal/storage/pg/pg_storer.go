package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.conn}
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	evaluation = evaluation.WithDefaults(time.Now())

	cmd := `
        INSERT INTO evaluations (id, source, dialect, expression, postfix, result, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		evaluation.ID,
		evaluation.Source,
		evaluation.Dialect.String(),
		evaluation.Expression,
		evaluation.Postfix,
		evaluation.Result,
		evaluation.Error,
		evaluation.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	rows := make([][]interface{}, len(evaluations))
	now := time.Now()

	for i, e := range evaluations {
		e = e.WithDefaults(now)
		rows[i] = []interface{}{
			e.ID,
			e.Source,
			e.Dialect.String(),
			e.Expression,
			e.Postfix,
			e.Result,
			e.Error,
			e.CreatedAt,
		}
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"evaluations"},
		[]string{"id", "source", "dialect", "expression", "postfix", "result", "error", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert evaluations: %w", err)
	}
	return nil
}
