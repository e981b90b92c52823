package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/exprtree/internal/eval"
	"github.com/DjordjeVuckovic/exprtree/internal/postfix"
	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// Boolean evaluates & | ^ and prefix ~ over word literals. Input must already be
// spaced: every operator and parenthesis is its own whitespace separated token.
type Boolean struct{}

func NewBoolean() *Boolean {
	return &Boolean{}
}

func (b *Boolean) Dialect() operator.Dialect {
	return operator.Boolean
}

func (b *Boolean) ToPostfix(infix string) (string, error) {
	return postfix.ToPostfix(operator.Boolean, infix)
}

func (b *Boolean) BuildTree(postfix string) (tree.Node, error) {
	return tree.BuildString(operator.Boolean, postfix)
}

func (b *Boolean) Compile(infix string) (string, tree.Node, error) {
	return compile(operator.Boolean, infix)
}

// Evaluate expects a tree from BuildTree or Compile.
func (b *Boolean) Evaluate(root tree.Node) bool {
	return eval.Boolean(root)
}

func (b *Boolean) Eval(root tree.Node) (Result, error) {
	if err := tree.Check(operator.Boolean, root); err != nil {
		return Result{Dialect: operator.Boolean}, err
	}
	return Result{Dialect: operator.Boolean, Bool: b.Evaluate(root)}, nil
}

func (b *Boolean) EvaluateExpression(infix string) (bool, error) {
	r, err := b.Calculate(infix)
	if err != nil {
		return false, err
	}
	return r.Bool, nil
}

func (b *Boolean) Calculate(infix string) (Result, error) {
	pf, root, err := b.Compile(infix)
	if err != nil {
		return Result{}, fmt.Errorf("calculate: %w", err)
	}

	r := Result{Dialect: operator.Boolean, Bool: b.Evaluate(root)}
	logCalculation(operator.Boolean, infix, pf, r)
	return r, nil
}
