package token

type Type int

const (
	UNKNOWN Type = iota
	LITERAL
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case LITERAL:
		return "LITERAL"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

const (
	OpenParen  = "("
	CloseParen = ")"
)

// Token is a piece of expression text and the byte offset it started at.
// Its category is derived from Value by the dialect in use, never stored.
type Token struct {
	Value string
	Pos   int
}

func (t Token) IsOpenParen() bool {
	return t.Value == OpenParen
}

func (t Token) IsCloseParen() bool {
	return t.Value == CloseParen
}

// Values returns the textual values of tokens in order.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}
