package suite

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a suite and resolves per-case defaults from the suite header.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	if s.Dialect == "" {
		s.Dialect = operator.DefaultDialect
	}
	if s.Tolerance <= 0 {
		s.Tolerance = DefaultTolerance
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Dialect == "" {
			c.Dialect = s.Dialect
		}
		if err := validateCase(c); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func validateCase(c *Case) error {
	switch c.Error {
	case "":
		if c.Expect == "" {
			return fmt.Errorf("case %q has neither expect nor error", c.ID)
		}
	case ErrMalformed, ErrUnderflow, ErrAny:
		if c.Expect != "" {
			return fmt.Errorf("case %q sets both expect and error", c.ID)
		}
		return nil
	default:
		return fmt.Errorf("case %q: unknown error kind %q", c.ID, c.Error)
	}

	switch c.Dialect {
	case operator.Arithmetic:
		if _, err := strconv.ParseFloat(c.Expect, 64); err != nil {
			return fmt.Errorf("case %q: expect %q is not a number", c.ID, c.Expect)
		}
	case operator.Boolean:
		if _, err := strconv.ParseBool(c.Expect); err != nil {
			return fmt.Errorf("case %q: expect %q is not a bool", c.ID, c.Expect)
		}
	}
	return nil
}
