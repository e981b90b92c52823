package apperr

import "fmt"

// MalformedExpressionError reports input that cannot be read as an expression:
// unbalanced parentheses, unknown tokens or leftover operands.
type MalformedExpressionError struct {
	Token  string
	Pos    int
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed expression: %s", e.Reason)
	}
	return fmt.Sprintf("malformed expression: %s %q at position %d", e.Reason, e.Token, e.Pos)
}

func NewMalformed(reason, token string, pos int) *MalformedExpressionError {
	return &MalformedExpressionError{Token: token, Pos: pos, Reason: reason}
}

// StackUnderflowError is returned when an operator finds fewer operands than it needs.
type StackUnderflowError struct {
	Operator string
	Pos      int
	Need     int
	Have     int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: operator %q at position %d needs %d operand(s), have %d",
		e.Operator, e.Pos, e.Need, e.Have)
}

func NewStackUnderflow(operator string, pos, need, have int) *StackUnderflowError {
	return &StackUnderflowError{Operator: operator, Pos: pos, Need: need, Have: have}
}
