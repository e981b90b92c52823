package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/suite"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []suite.Result {
	return []suite.Result{
		{
			Case:    suite.Case{ID: "add", Dialect: operator.Arithmetic, Expression: "1 + 2", Expect: "3"},
			Postfix: "1 2 +",
			Got:     "3",
			Passed:  true,
			Latency: time.Millisecond,
		},
		{
			Case:    suite.Case{ID: "bad", Dialect: operator.Arithmetic, Expression: "1 +", Error: suite.ErrMalformed},
			Postfix: "1 +",
			Err:     errors.New("stack underflow"),
			Reason:  "expected malformed error, got: stack underflow",
			Latency: time.Millisecond,
		},
	}
}

func TestNew(t *testing.T) {
	r := New("sample", sampleResults())

	assert.Equal(t, 1, r.Passed)
	assert.Equal(t, 1, r.Failed)
	assert.False(t, r.OK())
	assert.Equal(t, 2*time.Millisecond, r.Elapsed)
	assert.Equal(t, "error: malformed", r.Entries[1].Expected)
	assert.Equal(t, "error", r.Entries[1].Got)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(New("sample", sampleResults()), &buf)

	out := buf.String()
	assert.Contains(t, out, "=== Expression Suite: sample ===")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "bad: expected malformed error")
	assert.Contains(t, out, "1 passed, 1 failed")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(New("sample", sampleResults()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "sample", decoded.Suite)
	assert.Len(t, decoded.Entries, 2)
}
