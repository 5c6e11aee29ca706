package lexer

import (
	"strconv"

	"github.com/ava12/hcltype/source"
)

// Token is a lexeme fetched by lexer.
type Token struct {
	tokenType int
	typeName  string
	text      string
	pos       source.Pos
}

// NewToken creates new token.
func NewToken(tokenType int, typeName, text string, pos source.Pos) *Token {
	return &Token{tokenType, typeName, text, pos}
}

// Type returns token type, i.e. one of grammar token types or EoiTokenType.
func (t *Token) Type() int {
	return t.tokenType
}

// TypeName returns token type name.
func (t *Token) TypeName() string {
	return t.typeName
}

// Text returns token text.
func (t *Token) Text() string {
	return t.text
}

// Pos returns token start position.
func (t *Token) Pos() source.Pos {
	return t.pos
}

// Source returns token source or nil.
func (t *Token) Source() *source.Source {
	return t.pos.Source()
}

// SourceName returns token source name or empty string.
func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

// Offset returns byte offset of token start.
func (t *Token) Offset() int {
	return t.pos.Offset()
}

// Line returns line number of token start.
func (t *Token) Line() int {
	return t.pos.Line()
}

// Col returns column number of token start.
func (t *Token) Col() int {
	return t.pos.Col()
}

// IsEoi reports whether t is the end of input token.
func (t *Token) IsEoi() bool {
	return t.tokenType == EoiTokenType
}

// Describe returns token description for error messages.
func (t *Token) Describe() string {
	switch {
	case t.tokenType == EoiTokenType:
		return t.typeName
	case t.text == "" || t.typeName == strconv.Quote(t.text):
		return t.typeName
	default:
		return t.typeName + " " + strconv.Quote(t.text)
	}
}

const (
	EoiTokenType = -1
	EoiTokenName = "end of input"
)

// EoiToken creates end of input token at the end of s.
func EoiToken(s *source.Source) *Token {
	offset := 0
	if s != nil {
		offset = s.Len()
	}
	return &Token{tokenType: EoiTokenType, typeName: EoiTokenName, pos: source.NewPos(s, offset)}
}
