package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: basics
cases:
  - id: add
    expression: "1 + 2"
    expect: "3"
  - id: logic
    dialect: boolean
    expression: "true & false"
    expect: "false"
  - id: broken
    expression: "(1"
    error: malformed
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "basics", s.Name)
		assert.Equal(t, operator.Arithmetic, s.Dialect)
		assert.Equal(t, DefaultTolerance, s.Tolerance)
		require.Len(t, s.Cases, 3)
		assert.Equal(t, operator.Arithmetic, s.Cases[0].Dialect)
		assert.Equal(t, operator.Boolean, s.Cases[1].Dialect)
	})

	t.Run("suite dialect is inherited", func(t *testing.T) {
		s, err := Parse([]byte(`
dialect: boolean
cases:
  - {id: a, expression: "~ true", expect: "false"}
`))
		require.NoError(t, err)
		assert.Equal(t, operator.Boolean, s.Cases[0].Dialect)
	})

	errorCases := []struct {
		name string
		yaml string
	}{
		{name: "no cases", yaml: "name: empty\n"},
		{name: "missing id", yaml: "cases:\n  - {expression: \"1\", expect: \"1\"}\n"},
		{name: "duplicate id", yaml: "cases:\n  - {id: a, expression: \"1\", expect: \"1\"}\n  - {id: a, expression: \"2\", expect: \"2\"}\n"},
		{name: "no expectation", yaml: "cases:\n  - {id: a, expression: \"1\"}\n"},
		{name: "expect and error", yaml: "cases:\n  - {id: a, expression: \"1\", expect: \"1\", error: any}\n"},
		{name: "unknown error kind", yaml: "cases:\n  - {id: a, expression: \"1\", error: overflow}\n"},
		{name: "non numeric expect", yaml: "cases:\n  - {id: a, expression: \"1\", expect: \"one\"}\n"},
		{name: "non bool expect", yaml: "dialect: boolean\ncases:\n  - {id: a, expression: \"true\", expect: \"yes\"}\n"},
		{name: "unknown dialect", yaml: "dialect: ternary\ncases:\n  - {id: a, expression: \"1\", expect: \"1\"}\n"},
		{name: "invalid yaml", yaml: "cases: [\n"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - {id: a, expression: \"2 ** 3\", expect: \"8\"}\n"), 0o600))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Cases, 1)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
