package domain

import (
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/google/uuid"
)

const (
	SourceAPI   = "api"
	SourceRelay = "relay"
	SourceCLI   = "cli"
)

// Evaluation is one entry of the evaluation history. Result holds the textual
// scalar for successful runs; Error holds the message otherwise.
type Evaluation struct {
	ID         uuid.UUID        `json:"id"`
	Source     string           `json:"source"`
	Dialect    operator.Dialect `json:"dialect"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix,omitempty"`
	Result     string           `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (e Evaluation) Failed() bool {
	return e.Error != ""
}

// WithDefaults fills the ID, dialect and timestamp when they are unset.
func (e Evaluation) WithDefaults(now time.Time) Evaluation {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Dialect == "" {
		e.Dialect = operator.DefaultDialect
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	return e
}
