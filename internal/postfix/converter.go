// Package postfix converts infix token sequences to postfix with the shunting-yard algorithm.
//
// Only infix input is meaningful: feeding an already converted postfix string back in
// is not a supported round trip.
package postfix

import (
	"strings"

	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
	"github.com/DjordjeVuckovic/exprtree/internal/stack"
	"github.com/DjordjeVuckovic/exprtree/internal/token"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// Convert reorders infix tokens into postfix order for dialect d.
func Convert(d operator.Dialect, tokens []token.Token) ([]token.Token, error) {
	if err := token.Validate(d, tokens); err != nil {
		return nil, err
	}
	if d == operator.Arithmetic {
		tokens = fuseSignedLiterals(tokens)
	}

	out := make([]token.Token, 0, len(tokens))
	pending := stack.New[token.Token]()

	for _, tok := range tokens {
		switch d.Classify(tok.Value) {
		case token.LITERAL:
			out = append(out, tok)
		case token.OPERATOR:
			op, _ := d.Operator(tok.Value)
			out = popHigher(d, pending, op, out)
			pending.Push(tok)
		case token.LPAREN:
			pending.Push(tok)
		case token.RPAREN:
			var matched bool
			out, matched = popUntilOpen(pending, out)
			if !matched {
				return nil, apperr.NewMalformed("unmatched closing parenthesis", tok.Value, tok.Pos)
			}
		default:
			return nil, apperr.NewMalformed("unrecognized token", tok.Value, tok.Pos)
		}
	}

	for !pending.IsEmpty() {
		top, _ := pending.Pop()
		if top.IsOpenParen() {
			return nil, apperr.NewMalformed("unclosed parenthesis", top.Value, top.Pos)
		}
		out = append(out, top)
	}

	return out, nil
}

// ToPostfix tokenizes spaced infix text and returns the postfix form joined by single spaces.
func ToPostfix(d operator.Dialect, infix string) (string, error) {
	out, err := Convert(d, token.NewWhitespaceTokenizer().Tokenize(infix))
	if err != nil {
		return "", err
	}
	return strings.Join(token.Values(out), " "), nil
}

// popHigher moves pending operators that bind at least as tight as op to out.
// A right-associative op only yields to strictly tighter operators. A prefix
// unary op has no left operand to complete, so it never pops.
func popHigher(d operator.Dialect, pending *stack.Stack[token.Token], op operator.Operator, out []token.Token) []token.Token {
	if op.IsUnary() {
		return out
	}

	for !pending.IsEmpty() {
		top, _ := pending.Peek()
		topOp, ok := d.Operator(top.Value)
		if !ok {
			break
		}

		var yield bool
		if op.RightAssociative() {
			yield = topOp.Precedence() > op.Precedence()
		} else {
			yield = topOp.Precedence() >= op.Precedence()
		}
		if !yield {
			break
		}

		_, _ = pending.Pop()
		out = append(out, top)
	}

	return out
}

func popUntilOpen(pending *stack.Stack[token.Token], out []token.Token) ([]token.Token, bool) {
	for {
		top, err := pending.Pop()
		if err != nil {
			return out, false
		}
		if top.IsOpenParen() {
			return out, true
		}
		out = append(out, top)
	}
}

// fuseSignedLiterals joins a minus sign in operand position with the number that
// follows it, so "( - 5 )" reads as the literal -5. The sign belongs to the
// literal and therefore binds tighter than **: "- 2 ** 2" is (-2) ** 2.
func fuseSignedLiterals(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Value == string(operator.Sub) && operandExpected(out) && i+1 < len(tokens) {
			next := tokens[i+1]
			if operator.Arithmetic.IsLiteral(next.Value) && !strings.HasPrefix(next.Value, "-") {
				out = append(out, token.Token{Value: "-" + next.Value, Pos: tok.Pos})
				i++
				continue
			}
		}
		out = append(out, tok)
	}

	return out
}

func operandExpected(prev []token.Token) bool {
	if len(prev) == 0 {
		return true
	}
	switch operator.Arithmetic.Classify(prev[len(prev)-1].Value) {
	case token.LPAREN, token.OPERATOR:
		return true
	default:
		return false
	}
}
