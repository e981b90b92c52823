package storage

import (
	"context"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
)

type Reader interface {
	// List returns evaluations newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error)
}

// Store is a history backend that can both record and list evaluations.
type Store interface {
	Storer
	Reader
}
