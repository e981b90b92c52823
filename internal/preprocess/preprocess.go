// Package preprocess normalizes raw arithmetic input into single-space separated tokens.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)

	// a**(-b) becomes a**(0-b)
	negativeExponent = regexp.MustCompile(`(\d+)\*\*\((-\d+)\)`)

	// (group)*(-b) and a*(-b) become ...*(0-b)
	negativeFactor = regexp.MustCompile(`(\([^)]+\)|\d+)\*\((-\d+)\)`)

	// ** must come first so it is not split into two *
	operators = regexp.MustCompile(`(\*\*|[+\-*/()%])`)
)

// Arithmetic applies, in order: whitespace removal, a single pass of "--" removal,
// the negative exponent and negative factor rewrites, then spacing around every
// operator and parenthesis.
func Arithmetic(infix string) string {
	s := whitespace.ReplaceAllString(infix, "")
	s = strings.ReplaceAll(s, "--", "")
	s = negativeExponent.ReplaceAllString(s, "${1}**(0${2})")
	s = negativeFactor.ReplaceAllString(s, "${1}*(0${2})")
	s = operators.ReplaceAllString(s, " ${1} ")

	return strings.Join(strings.Fields(s), " ")
}
