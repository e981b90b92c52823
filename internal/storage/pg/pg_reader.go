package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.conn}
}

func (r *Reader) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	_ = page.Validate()
	slog.Debug("Listing pg evaluations", "page", page.Page, "size", page.Size)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, source, dialect, expression, postfix, result, error, created_at
		FROM evaluations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to execute list query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Evaluation, 0, page.Size)
	for rows.Next() {
		var e domain.Evaluation
		var dialect string
		if err := rows.Scan(
			&e.ID,
			&e.Source,
			&dialect,
			&e.Expression,
			&e.Postfix,
			&e.Result,
			&e.Error,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		e.Dialect = operator.Dialect(dialect)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}
