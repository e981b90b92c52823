package token

import "github.com/DjordjeVuckovic/exprtree/internal/apperr"

// Validate checks that every token is known to c, that parentheses balance and
// that no pair of parentheses is empty.
func Validate(c Classifier, tokens []Token) error {
	var open []Token
	prev := UNKNOWN

	for _, tok := range tokens {
		typ := c.Classify(tok.Value)
		switch typ {
		case LITERAL, OPERATOR:
		case LPAREN:
			open = append(open, tok)
		case RPAREN:
			if len(open) == 0 {
				return apperr.NewMalformed("unmatched closing parenthesis", tok.Value, tok.Pos)
			}
			if prev == LPAREN {
				return apperr.NewMalformed("empty parentheses", tok.Value, tok.Pos)
			}
			open = open[:len(open)-1]
		default:
			return apperr.NewMalformed("unrecognized token", tok.Value, tok.Pos)
		}
		prev = typ
	}

	if len(open) > 0 {
		last := open[len(open)-1]
		return apperr.NewMalformed("unclosed parenthesis", last.Value, last.Pos)
	}

	return nil
}
