package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("expression is required")

	if err.Error() != "expression is required" {
		t.Errorf("expected 'expression is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unknown dialect")
	err := apperr.NewValidationWrap("invalid request", inner)

	if err.Error() != "invalid request: unknown dialect" {
		t.Errorf("expected 'invalid request: unknown dialect', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestMalformedExpressionError(t *testing.T) {
	err := apperr.NewMalformed("unmatched closing parenthesis", ")", 7)

	if err.Error() != `malformed expression: unmatched closing parenthesis ")" at position 7` {
		t.Errorf("unexpected message %q", err.Error())
	}

	bare := apperr.NewMalformed("dangling operands", "", 0)
	if bare.Error() != "malformed expression: dangling operands" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestStackUnderflowError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewStackUnderflow("*", 4, 2, 1)

	wrapped := fmt.Errorf("build tree: %w", original)
	doubleWrapped := fmt.Errorf("evaluate: %w", wrapped)

	var se *apperr.StackUnderflowError
	if !errors.As(doubleWrapped, &se) {
		t.Fatal("errors.As should find StackUnderflowError through double wrapping")
	}
	if se.Operator != "*" || se.Need != 2 || se.Have != 1 {
		t.Errorf("unexpected fields %+v", se)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}
