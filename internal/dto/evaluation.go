package dto

import (
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/google/uuid"
)

// ExpressionRequest is the body of the evaluate and postfix endpoints.
type ExpressionRequest struct {
	Expression string           `json:"expression" example:"(2 + 3) * 4"`
	Dialect    operator.Dialect `json:"dialect,omitempty" example:"arithmetic" enums:"arithmetic,boolean"`
}

type EvaluateResponse struct {
	ID         uuid.UUID        `json:"id"`
	Dialect    operator.Dialect `json:"dialect"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix"`
	// Result is a number for arithmetic and a bool for boolean expressions.
	Result any   `json:"result" swaggertype:"string"`
	Tree   *Node `json:"tree,omitempty"`
}

type PostfixResponse struct {
	Dialect    operator.Dialect `json:"dialect"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix"`
}

type TreeRequest struct {
	Postfix string           `json:"postfix" example:"2 3 + 4 *"`
	Dialect operator.Dialect `json:"dialect,omitempty" example:"arithmetic" enums:"arithmetic,boolean"`
}

type TreeResponse struct {
	Dialect operator.Dialect `json:"dialect"`
	Postfix string           `json:"postfix"`
	Infix   string           `json:"infix"`
	Size    int              `json:"size"`
	Root    *Node            `json:"root"`
}

type Evaluation struct {
	ID         uuid.UUID        `json:"id"`
	Source     string           `json:"source"`
	Dialect    operator.Dialect `json:"dialect"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix,omitempty"`
	Result     string           `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func NewEvaluation(e domain.Evaluation) Evaluation {
	return Evaluation{
		ID:         e.ID,
		Source:     e.Source,
		Dialect:    e.Dialect,
		Expression: e.Expression,
		Postfix:    e.Postfix,
		Result:     e.Result,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
	}
}

type HistoryResponse struct {
	Items   []Evaluation `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Size    int          `json:"size"`
	HasMore bool         `json:"has_more"`
}
