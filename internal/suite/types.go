package suite

import "github.com/DjordjeVuckovic/exprtree/internal/types/operator"

const DefaultTolerance = 1e-9

// Expected error kinds a case may declare.
const (
	ErrMalformed = "malformed"
	ErrUnderflow = "underflow"
	ErrAny       = "any"
)

// Suite is a YAML list of expressions with their expected outcome.
type Suite struct {
	Name    string           `yaml:"name"`
	Dialect operator.Dialect `yaml:"dialect"`
	// Tolerance is the absolute difference accepted for arithmetic results.
	Tolerance float64 `yaml:"tolerance"`
	Cases     []Case  `yaml:"cases"`
}

type Case struct {
	ID         string           `yaml:"id"`
	Dialect    operator.Dialect `yaml:"dialect"`
	Expression string           `yaml:"expression"`
	// Expect is the textual result, e.g. "20" or "true".
	Expect string `yaml:"expect"`
	// Error, when set, is one of malformed, underflow or any.
	Error string `yaml:"error"`
}
