package eval

import (
	"math"
	"testing"

	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		postfix  string
		expected float64
	}{
		{name: "literal", postfix: "42", expected: 42},
		{name: "decimal literal", postfix: "2.5", expected: 2.5},
		{name: "signed literal", postfix: "-3", expected: -3},
		{name: "addition", postfix: "2 3 +", expected: 5},
		{name: "subtraction keeps order", postfix: "2 3 -", expected: -1},
		{name: "multiplication", postfix: "6 7 *", expected: 42},
		{name: "division", postfix: "7 2 /", expected: 3.5},
		{name: "division by zero is the sentinel", postfix: "6 0 /", expected: -1},
		{name: "zero numerator over zero", postfix: "0 0 /", expected: -1},
		{name: "power", postfix: "2 10 **", expected: 1024},
		{name: "fractional power", postfix: "9 0.5 **", expected: 3},
		{name: "negative power", postfix: "2 -2 **", expected: 0.25},
		{name: "percent scales", postfix: "50 200 %", expected: 100},
		{name: "right associative power", postfix: "2 3 2 ** **", expected: 512},
		{name: "nested", postfix: "2 3 4 * +", expected: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := tree.BuildString(operator.Arithmetic, tt.postfix)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, Arithmetic(root), 1e-9)
		})
	}
}

func TestArithmetic_EmptyTree(t *testing.T) {
	assert.Equal(t, 0.0, Arithmetic(nil))
}

func TestArithmetic_IEEE(t *testing.T) {
	root := &tree.Binary{Op: operator.Pow, Left: &tree.Leaf{Value: "-8"}, Right: &tree.Leaf{Value: "0.5"}}
	assert.True(t, math.IsNaN(Arithmetic(root)))
}

func TestBoolean(t *testing.T) {
	tests := []struct {
		name     string
		postfix  string
		expected bool
	}{
		{name: "true literal", postfix: "true", expected: true},
		{name: "case insensitive literal", postfix: "TRUE", expected: true},
		{name: "placeholder letter reads false", postfix: "A", expected: false},
		{name: "and", postfix: "true false &", expected: false},
		{name: "or", postfix: "true false |", expected: true},
		{name: "xor same", postfix: "true true ^", expected: false},
		{name: "xor different", postfix: "false true ^", expected: true},
		{name: "not", postfix: "true ~", expected: false},
		{name: "double not", postfix: "false ~ ~", expected: false},
		{name: "compound", postfix: "true false ^ true false | & ~", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := tree.BuildString(operator.Boolean, tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Boolean(root))
		})
	}
}

func TestBoolean_EmptyTree(t *testing.T) {
	assert.False(t, Boolean(nil))
}

func TestWrongDialectPanics(t *testing.T) {
	assert.Panics(t, func() {
		Arithmetic(&tree.Binary{Op: operator.And, Left: &tree.Leaf{Value: "1"}, Right: &tree.Leaf{Value: "2"}})
	})
	assert.Panics(t, func() {
		Boolean(&tree.Binary{Op: operator.Add, Left: &tree.Leaf{Value: "true"}, Right: &tree.Leaf{Value: "true"}})
	})
}
