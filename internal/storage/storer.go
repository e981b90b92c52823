package storage

import (
	"context"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
	SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error
}

type Type string

const (
	ES     Type = "es"
	PG     Type = "pg"
	InMem  Type = "in_mem"
	CSV    Type = "csv"
	SQLite Type = "sqlite"
)

var Types = []Type{InMem, CSV, SQLite, PG, ES}

func (t Type) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
