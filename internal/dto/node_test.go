package dto

import (
	"testing"

	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	assert.Nil(t, NewNode(nil))

	root, err := tree.BuildString(operator.Boolean, "true false ~ &")
	require.NoError(t, err)

	want := &Node{
		Kind:  KindBinary,
		Value: "&",
		Left:  &Node{Kind: KindLiteral, Value: "true"},
		Right: &Node{
			Kind:    KindUnary,
			Value:   "~",
			Operand: &Node{Kind: KindLiteral, Value: "false"},
		},
	}
	if diff := cmp.Diff(want, NewNode(root)); diff != "" {
		t.Errorf("NewNode mismatch (-want +got):\n%s", diff)
	}
}
