package parser

import (
	"strings"

	"github.com/ava12/hcltype"
	"github.com/ava12/hcltype/grammar"
	"github.com/ava12/hcltype/lexer"
)

// Error codes used by parser:
const (
	// ErrUnexpectedToken indicates that the fetched token does not match the grammar.
	ErrUnexpectedToken = hcltype.SyntaxErrors + iota

	// ErrUnexpectedEoi indicates that the input ended before the type expression is complete.
	ErrUnexpectedEoi

	// ErrTooDeep indicates that the type expression nesting exceeds the parser limit.
	ErrTooDeep
)

const (
	endOfInput = "end of input"
	primitives = `"string", "number", or "bool"`
)

func syntaxError(t *lexer.Token, expected string) *hcltype.Error {
	var e *hcltype.Error
	found := t.Describe()
	if t.IsEoi() {
		e = hcltype.FormatErrorPos(t, ErrUnexpectedEoi, "unexpected %s, expecting %s", found, expected)
	} else {
		e = hcltype.FormatErrorPos(t, ErrUnexpectedToken, "unexpected %s, expecting %s", found, expected)
	}
	e.Expected = expected
	e.Found = found
	return e
}

func tooDeepError(t *lexer.Token, maxDepth int) *hcltype.Error {
	e := hcltype.FormatErrorPos(t, ErrTooDeep, "type nesting is deeper than %d levels", maxDepth)
	e.Found = t.Describe()
	return e
}

// describe lists token names of a set in grammar order, e.g. `"," or "]"`.
func describe(tts lexer.TokenTypeSet) string {
	var names []string
	for i, t := range grammar.Tokens {
		if tts&(1<<i) != 0 {
			names = append(names, t.Name)
		}
	}

	switch len(names) {
	case 0:
		return endOfInput
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
