// Package eval reduces expression trees to scalar results.
//
// Evaluation never fails for trees produced by tree.Build: division by zero yields
// the -1 sentinel and the empty tree yields the dialect's zero value. Hand built
// trees should pass tree.Check first.
package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// DivisionByZero is returned in-band for x / 0.
const DivisionByZero = -1.0

// Arithmetic evaluates a tree built for operator.Arithmetic.
func Arithmetic(n tree.Node) float64 {
	switch v := n.(type) {
	case nil:
		return 0
	case *tree.Leaf:
		f, _ := strconv.ParseFloat(v.Value, 64)
		return f
	case *tree.Binary:
		return applyArithmetic(v.Op, Arithmetic(v.Left), Arithmetic(v.Right))
	default:
		panic(fmt.Sprintf("eval: unexpected %T in arithmetic tree", n))
	}
}

func applyArithmetic(op operator.Operator, left, right float64) float64 {
	switch op {
	case operator.Add:
		return left + right
	case operator.Sub:
		return left - right
	case operator.Mul:
		return left * right
	case operator.Div:
		if right == 0 {
			return DivisionByZero
		}
		return left / right
	case operator.Pow:
		return math.Pow(left, right)
	case operator.Percent:
		// percentage scaling, not modulo
		return left / 100 * right
	default:
		panic(fmt.Sprintf("eval: operator %q is not arithmetic", op))
	}
}

// Boolean evaluates a tree built for operator.Boolean. Both sides of a binary
// operator are always evaluated.
func Boolean(n tree.Node) bool {
	switch v := n.(type) {
	case nil:
		return false
	case *tree.Leaf:
		return strings.EqualFold(v.Value, "true")
	case *tree.Unary:
		operand := Boolean(v.Operand)
		if v.Op != operator.Not {
			panic(fmt.Sprintf("eval: operator %q is not a boolean prefix operator", v.Op))
		}
		return !operand
	case *tree.Binary:
		left, right := Boolean(v.Left), Boolean(v.Right)
		switch v.Op {
		case operator.And:
			return left && right
		case operator.Or:
			return left || right
		case operator.Xor:
			return left != right
		default:
			panic(fmt.Sprintf("eval: operator %q is not boolean", v.Op))
		}
	default:
		panic(fmt.Sprintf("eval: unexpected %T in boolean tree", n))
	}
}
