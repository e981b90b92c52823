package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) []Token
}

// Classifier maps a token value to its category.
type Classifier interface {
	Classify(value string) Type
}

// WhitespaceTokenizer splits already spaced expression text into tokens.
// Example: Input: `( 2 + 3 ) ** 2`
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (t *WhitespaceTokenizer) Tokenize(input string) []Token {
	var tokens []Token

	pos := 0
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}

		start := pos
		for pos < len(input) {
			r, size = utf8.DecodeRuneInString(input[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += size
		}
		tokens = append(tokens, Token{Value: input[start:pos], Pos: start})
	}

	return tokens
}
