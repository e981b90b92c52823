package operator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/exprtree/internal/token"
)

// Operator is a closed set of symbols understood by one of the dialects.
// Each operator carries its precedence, associativity and arity as static data.
//
// Usage:
//
//	op, ok := operator.Arithmetic.Operator("**") // op == operator.Pow
//	op.Precedence()                                // 3
//	op.RightAssociative()                          // true
type Operator string

const (
	Add     Operator = "+"
	Sub     Operator = "-"
	Mul     Operator = "*"
	Div     Operator = "/"
	Pow     Operator = "**"
	Percent Operator = "%"

	And Operator = "&"
	Or  Operator = "|"
	Xor Operator = "^"
	Not Operator = "~"
)

// Precedence returns the binding rank; higher binds tighter.
func (o Operator) Precedence() int {
	switch o {
	case Add, Sub:
		return 1
	case Mul, Div, Percent:
		return 2
	case Pow:
		return 3
	case And, Or, Xor:
		return 1
	case Not:
		return 2
	default:
		return 0
	}
}

// RightAssociative reports whether consecutive uses group from the right.
func (o Operator) RightAssociative() bool {
	return o == Pow
}

// Arity is the number of operands the operator consumes.
func (o Operator) Arity() int {
	if o == Not {
		return 1
	}
	return 2
}

func (o Operator) IsUnary() bool {
	return o.Arity() == 1
}

func (o Operator) String() string {
	return string(o)
}

// Dialect selects the operator set and literal form of an expression.
type Dialect string

const (
	Arithmetic Dialect = "arithmetic"
	Boolean    Dialect = "boolean"
)

const DefaultDialect = Arithmetic

func ParseDialect(s string) (Dialect, error) {
	if s == "" {
		return DefaultDialect, nil
	}

	d := Dialect(strings.ToLower(s))
	switch d {
	case Arithmetic, Boolean:
		return d, nil
	default:
		return "", fmt.Errorf("invalid dialect: %s (must be 'arithmetic' or 'boolean')", s)
	}
}

func (d Dialect) String() string {
	return string(d)
}

// Validate ensures the dialect has a valid value
func (d Dialect) Validate() error {
	if d != Arithmetic && d != Boolean {
		return fmt.Errorf("invalid dialect: %q (must be 'arithmetic' or 'boolean')", d)
	}
	return nil
}

// Operators lists the dialect's operator set.
func (d Dialect) Operators() []Operator {
	switch d {
	case Arithmetic:
		return []Operator{Add, Sub, Mul, Div, Pow, Percent}
	case Boolean:
		return []Operator{And, Or, Xor, Not}
	default:
		return nil
	}
}

// Operator looks s up in the dialect's operator set.
func (d Dialect) Operator(s string) (Operator, bool) {
	for _, op := range d.Operators() {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

var (
	numberLiteral = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	boolLiteral   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// IsLiteral reports whether s is an operand literal in the dialect:
// a decimal number (optionally signed) or a word starting with a letter.
func (d Dialect) IsLiteral(s string) bool {
	switch d {
	case Arithmetic:
		return numberLiteral.MatchString(s)
	case Boolean:
		return boolLiteral.MatchString(s)
	default:
		return false
	}
}

// Classify implements token.Classifier.
func (d Dialect) Classify(s string) token.Type {
	switch {
	case s == token.OpenParen:
		return token.LPAREN
	case s == token.CloseParen:
		return token.RPAREN
	case d.IsLiteral(s):
		return token.LITERAL
	}
	if _, ok := d.Operator(s); ok {
		return token.OPERATOR
	}
	return token.UNKNOWN
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
