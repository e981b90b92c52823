package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// Document is the indexed shape of an evaluation.
type Document struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Dialect    string    `json:"dialect"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     string    `json:"result"`
	Error      string    `json:"error"`
	CreatedAt  time.Time `json:"created_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

func toDocument(e domain.Evaluation, now time.Time) Document {
	e = e.WithDefaults(now)
	return Document{
		ID:         e.ID.String(),
		Source:     e.Source,
		Dialect:    string(e.Dialect),
		Expression: e.Expression,
		Postfix:    e.Postfix,
		Result:     e.Result,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
		IndexedAt:  now,
	}
}

func (d Document) toDomain() (domain.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}
	return domain.Evaluation{
		ID:         id,
		Source:     d.Source,
		Dialect:    operator.Dialect(d.Dialect),
		Expression: d.Expression,
		Postfix:    d.Postfix,
		Result:     d.Result,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func mappings() *types.TypeMapping {
	expression := types.NewTextProperty()
	expression.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"source":     types.NewKeywordProperty(),
			"dialect":    types.NewKeywordProperty(),
			"expression": expression,
			"postfix":    types.NewKeywordProperty(),
			"result":     types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"created_at": types.NewDateProperty(),
			"indexed_at": types.NewDateProperty(),
		},
	}
}
