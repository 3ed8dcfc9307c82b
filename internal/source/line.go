// Package source splits assembler source lines into labels and instructions.
// Both assembler passes use Parse, so that they always agree on which lines
// define labels and which lines contain instructions.
package source

import (
	"errors"
	"fmt"
	"strings"
)

// CommentMarker starts a comment that extends to the end of the line.
const CommentMarker = ';'

// MaxTokens is the maximum number of tokens of an instruction line,
// the mnemonic followed by up to two operands.
const MaxTokens = 3

// ErrTooManyTokens is returned for instruction lines with more than MaxTokens tokens.
var ErrTooManyTokens = errors.New("too many operands")

// Normalize strips the comment and the surrounding whitespace from a line.
func Normalize(line string) string {
	if i := strings.IndexByte(line, CommentMarker); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// Tokenize splits a normalized line on runs of spaces, tabs, commas and line
// ending characters.
func Tokenize(line string) ([]string, error) {
	tokens := strings.FieldsFunc(line, isSeparator)
	if len(tokens) > MaxTokens {
		return nil, fmt.Errorf("%w: %d tokens, at most %d supported", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return tokens, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', '\r', '\n':
		return true
	default:
		return false
	}
}
