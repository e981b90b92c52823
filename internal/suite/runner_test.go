package suite

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedSuite = `
name: mixed
tolerance: 0.001
cases:
  - {id: precedence, expression: "2 + 3 * 4", expect: "14"}
  - {id: power, expression: "2 ** 3 ** 2", expect: "512"}
  - {id: percent, expression: "50 % 10", expect: "5"}
  - {id: third, expression: "1 / 3", expect: "0.3333"}
  - {id: zero, expression: "1 / 0", expect: "-1"}
  - {id: xor, dialect: boolean, expression: "true ^ true", expect: "false"}
  - {id: underflow, expression: "1 +", error: underflow}
  - {id: unclosed, expression: "(1 + 2", error: malformed}
  - {id: wrong, expression: "2 + 2", expect: "5"}
  - {id: wrong-kind, expression: "1 +", error: malformed}
  - {id: no-error, expression: "1 + 1", error: any}
`

func TestRun(t *testing.T) {
	s, err := Parse([]byte(mixedSuite))
	require.NoError(t, err)

	store := in_mem.NewInMemStorer()
	results, err := Run(context.Background(), s, history.NewRecorder(store))
	require.NoError(t, err)
	require.Len(t, results, len(s.Cases))

	passed := map[string]bool{}
	for _, r := range results {
		passed[r.Case.ID] = r.Passed
		if !r.Passed {
			assert.NotEmpty(t, r.Reason, r.Case.ID)
		}
	}

	assert.Equal(t, map[string]bool{
		"precedence": true,
		"power":      true,
		"percent":    true,
		"third":      true,
		"zero":       true,
		"xor":        true,
		"underflow":  true,
		"unclosed":   true,
		"wrong":      false,
		"wrong-kind": false,
		"no-error":   false,
	}, passed)

	assert.Equal(t, "2 3 4 * +", results[0].Postfix)
	assert.Equal(t, "14", results[0].Got)

	page, err := store.List(context.Background(), pagination.OffsetRequest{Page: 1, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(len(s.Cases)), page.Total)
}

func TestRun_Cancelled(t *testing.T) {
	s, err := Parse([]byte(mixedSuite))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, s, history.NewRecorder(nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
