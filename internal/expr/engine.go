// Package expr wires the preprocessing, postfix conversion, tree building and
// evaluation stages into one engine per dialect.
//
// Engines hold no state: every call allocates its own stacks and tree, so a single
// engine may be shared between goroutines.
package expr

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/exprtree/internal/postfix"
	"github.com/DjordjeVuckovic/exprtree/internal/token"
	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

type Engine interface {
	Dialect() operator.Dialect
	// ToPostfix converts infix text to space separated postfix text.
	ToPostfix(infix string) (string, error)
	BuildTree(postfix string) (tree.Node, error)
	// Compile converts infix text and builds its tree from the same tokens, so error
	// positions point into the infix. The postfix text is returned whenever
	// conversion succeeded, even if the tree could not be built.
	Compile(infix string) (string, tree.Node, error)
	// Eval rejects trees that Build could not have produced for the dialect.
	Eval(root tree.Node) (Result, error)
	// Calculate runs the whole pipeline on infix text.
	Calculate(infix string) (Result, error)
}

func New(d operator.Dialect) (Engine, error) {
	switch d {
	case operator.Arithmetic:
		return NewArithmetic(), nil
	case operator.Boolean:
		return NewBoolean(), nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %q", d)
	}
}

// Result is the scalar outcome of an evaluation. Number is set for the
// arithmetic dialect, Bool for the boolean one.
type Result struct {
	Dialect operator.Dialect
	Number  float64
	Bool    bool
}

func (r Result) Value() any {
	if r.Dialect == operator.Boolean {
		return r.Bool
	}
	return r.Number
}

func (r Result) String() string {
	if r.Dialect == operator.Boolean {
		return strconv.FormatBool(r.Bool)
	}
	return strconv.FormatFloat(r.Number, 'g', -1, 64)
}

func compile(d operator.Dialect, infix string) (string, tree.Node, error) {
	out, err := postfix.Convert(d, token.NewWhitespaceTokenizer().Tokenize(infix))
	if err != nil {
		return "", nil, err
	}
	pf := strings.Join(token.Values(out), " ")

	root, err := tree.Build(d, out)
	if err != nil {
		return pf, nil, err
	}
	return pf, root, nil
}

func logCalculation(d operator.Dialect, infix, postfix string, r Result) {
	slog.Debug("expression evaluated",
		"dialect", d,
		"infix", infix,
		"postfix", postfix,
		"result", r.String(),
	)
}
