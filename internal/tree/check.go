package tree

import (
	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// Check reports the first node of n that Build could not have produced for
// dialect d. The nil tree is valid.
func Check(d operator.Dialect, n Node) error {
	if n == nil {
		return nil
	}
	return check(d, n)
}

func check(d operator.Dialect, n Node) error {
	switch v := n.(type) {
	case *Leaf:
		if !d.IsLiteral(v.Value) {
			return apperr.NewMalformed("literal outside dialect "+d.String(), v.Value, 0)
		}
		return nil
	case *Unary:
		if err := checkOperator(d, v.Op, true); err != nil {
			return err
		}
		return checkChild(d, v.Op, v.Operand)
	case *Binary:
		if err := checkOperator(d, v.Op, false); err != nil {
			return err
		}
		if err := checkChild(d, v.Op, v.Left); err != nil {
			return err
		}
		return checkChild(d, v.Op, v.Right)
	default:
		return apperr.NewMalformed("unknown node", "", 0)
	}
}

func checkOperator(d operator.Dialect, op operator.Operator, unary bool) error {
	if _, ok := d.Operator(string(op)); !ok {
		return apperr.NewMalformed("operator outside dialect "+d.String(), op.String(), 0)
	}
	if op.IsUnary() != unary {
		return apperr.NewMalformed("operator arity does not match node", op.String(), 0)
	}
	return nil
}

func checkChild(d operator.Dialect, parent operator.Operator, child Node) error {
	if child == nil {
		return apperr.NewMalformed("missing operand", parent.String(), 0)
	}
	return check(d, child)
}
