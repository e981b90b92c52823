package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/exprtree/internal/eval"
	"github.com/DjordjeVuckovic/exprtree/internal/postfix"
	"github.com/DjordjeVuckovic/exprtree/internal/preprocess"
	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// Arithmetic evaluates + - * / ** % over decimal literals.
type Arithmetic struct{}

func NewArithmetic() *Arithmetic {
	return &Arithmetic{}
}

func (a *Arithmetic) Dialect() operator.Dialect {
	return operator.Arithmetic
}

// ToPostfix normalizes raw infix text before converting it.
func (a *Arithmetic) ToPostfix(infix string) (string, error) {
	return postfix.ToPostfix(operator.Arithmetic, preprocess.Arithmetic(infix))
}

func (a *Arithmetic) BuildTree(postfix string) (tree.Node, error) {
	return tree.BuildString(operator.Arithmetic, postfix)
}

func (a *Arithmetic) Compile(infix string) (string, tree.Node, error) {
	return compile(operator.Arithmetic, preprocess.Arithmetic(infix))
}

// Evaluate expects a tree from BuildTree or Compile.
func (a *Arithmetic) Evaluate(root tree.Node) float64 {
	return eval.Arithmetic(root)
}

func (a *Arithmetic) Eval(root tree.Node) (Result, error) {
	if err := tree.Check(operator.Arithmetic, root); err != nil {
		return Result{Dialect: operator.Arithmetic}, err
	}
	return Result{Dialect: operator.Arithmetic, Number: a.Evaluate(root)}, nil
}

func (a *Arithmetic) EvaluateExpression(infix string) (float64, error) {
	r, err := a.Calculate(infix)
	if err != nil {
		return 0, err
	}
	return r.Number, nil
}

func (a *Arithmetic) Calculate(infix string) (Result, error) {
	pf, root, err := a.Compile(infix)
	if err != nil {
		return Result{}, fmt.Errorf("calculate: %w", err)
	}

	r := Result{Dialect: operator.Arithmetic, Number: a.Evaluate(root)}
	logCalculation(operator.Arithmetic, infix, pf, r)
	return r, nil
}
