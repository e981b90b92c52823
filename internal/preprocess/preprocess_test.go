package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spaces operators",
			input:    "2+3*4",
			expected: "2 + 3 * 4",
		},
		{
			name:     "strips and collapses whitespace",
			input:    "  ( 2 +3)\t* 4 ",
			expected: "( 2 + 3 ) * 4",
		},
		{
			name:     "keeps power operator whole",
			input:    "2**3**2",
			expected: "2 ** 3 ** 2",
		},
		{
			name:     "double negation cancels",
			input:    "--3",
			expected: "3",
		},
		{
			name:     "triple minus collapses only the first pair",
			input:    "---3",
			expected: "- 3",
		},
		{
			name:     "negative exponent",
			input:    "(6**(-6))",
			expected: "( 6 ** ( 0 - 6 ) )",
		},
		{
			name:     "negative factor after number",
			input:    "5*(-2)",
			expected: "5 * ( 0 - 2 )",
		},
		{
			name:     "negative factor after group",
			input:    "(7 + 1)*(-2)",
			expected: "( 7 + 1 ) * ( 0 - 2 )",
		},
		{
			name:     "percent and division",
			input:    "50%200/4",
			expected: "50 % 200 / 4",
		},
		{
			name:     "decimals stay intact",
			input:    "1.5*2.25",
			expected: "1.5 * 2.25",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Arithmetic(tt.input))
		})
	}
}
