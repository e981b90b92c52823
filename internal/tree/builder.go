package tree

import (
	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
	"github.com/DjordjeVuckovic/exprtree/internal/stack"
	"github.com/DjordjeVuckovic/exprtree/internal/token"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// Build turns a postfix token sequence into an expression tree.
// An empty sequence yields a nil root.
func Build(d operator.Dialect, postfix []token.Token) (Node, error) {
	operands := stack.New[Node]()

	for _, tok := range postfix {
		switch d.Classify(tok.Value) {
		case token.LITERAL:
			operands.Push(&Leaf{Value: tok.Value})
		case token.OPERATOR:
			op, _ := d.Operator(tok.Value)
			if operands.Size() < op.Arity() {
				return nil, apperr.NewStackUnderflow(tok.Value, tok.Pos, op.Arity(), operands.Size())
			}

			if op.IsUnary() {
				operand, _ := operands.Pop()
				operands.Push(&Unary{Op: op, Operand: operand})
				continue
			}

			right, _ := operands.Pop()
			left, _ := operands.Pop()
			operands.Push(&Binary{Op: op, Left: left, Right: right})
		case token.LPAREN, token.RPAREN:
			return nil, apperr.NewMalformed("parenthesis in postfix input", tok.Value, tok.Pos)
		default:
			return nil, apperr.NewMalformed("unrecognized token", tok.Value, tok.Pos)
		}
	}

	if operands.IsEmpty() {
		return nil, nil
	}

	root, _ := operands.Pop()
	if !operands.IsEmpty() {
		return nil, apperr.NewMalformed("dangling operands", "", 0)
	}

	return root, nil
}

// BuildString tokenizes space separated postfix text and builds its tree.
func BuildString(d operator.Dialect, postfix string) (Node, error) {
	return Build(d, token.NewWhitespaceTokenizer().Tokenize(postfix))
}
