// Package lexer defines lexical analyzer.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/hcltype"
	"github.com/ava12/hcltype/grammar"
	"github.com/ava12/hcltype/source"
)

// Error codes used by lexer:
const (
	// ErrWrongChar indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	ErrWrongChar = hcltype.LexicalErrors + iota

	// ErrBadToken indicates that lexer has fetched a broken lexeme (e.g. unterminated string literal).
	ErrBadToken
)

// TokenTypeSet represents a set of expected token types, each one is coded as 1 << type.
type TokenTypeSet = uint64

const AllTokenTypes = TokenTypeSet(1<<64 - 1)

// Set creates token type set containing given types.
func Set(types ...int) TokenTypeSet {
	var res TokenTypeSet
	for _, t := range types {
		res |= 1 << t
	}
	return res
}

type tokenRec struct {
	typeName string
	re       *regexp.Regexp
	isError  bool
}

// Lexer fetches tokens from source.Cursor.
// Lexer itself is immutable, stateless, and safe for concurrent use (i.e. the same Lexer instance
// may be used with different cursors by different goroutines), but it affects cursor state.
// Token type is an index in token description list, the first description that matches wins.
// Every byte of source text must belong to some lexeme or to insignificant space.
type Lexer struct {
	space  *regexp.Regexp
	tokens []tokenRec
}

// New creates new Lexer. space matches insignificant characters, it may be empty.
// Panics if a regular expression is invalid or there are more than 64 token types.
func New(space string, tokens []grammar.Token) *Lexer {
	if len(tokens) > 64 {
		panic("too many token types")
	}

	l := &Lexer{tokens: make([]tokenRec, len(tokens))}
	if space != "" {
		l.space = anchored(space)
	}
	for i, t := range tokens {
		l.tokens[i] = tokenRec{t.Name, anchored(t.Re), (t.Flags & grammar.ErrorToken) != 0}
	}
	return l
}

func anchored(re string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\A(?:` + re + `)`)
}

var defaultLexer = New(grammar.Space, grammar.Tokens)

// Default returns lexer for HCL2 type expressions.
func Default() *Lexer {
	return defaultLexer
}

func wrongCharError(src *source.Source, content []byte, pos int) *hcltype.Error {
	r, _ := utf8.DecodeRune(content[pos:])
	msg := fmt.Sprintf("wrong char %q (u+%x)", r, r)
	e := hcltype.FormatErrorPos(source.NewPos(src, pos), ErrWrongChar, msg)
	e.Char = r
	return e
}

func badTokenError(t *Token) *hcltype.Error {
	e := hcltype.FormatErrorPos(t, ErrBadToken, "%s %q", t.TypeName(), t.Text())
	e.Char, _ = utf8.DecodeRuneInString(t.Text())
	return e
}

func (l *Lexer) skipSpace(c *source.Cursor) {
	if l.space == nil {
		return
	}

	content, pos := c.ContentPos()
	if loc := l.space.FindIndex(content[pos:]); loc != nil {
		c.Skip(loc[1])
	}
}

func (l *Lexer) match(c *source.Cursor, tts TokenTypeSet) (*Token, error) {
	content, pos := c.ContentPos()
	tail := content[pos:]
	for i, rec := range l.tokens {
		if tts&(1<<i) == 0 {
			continue
		}

		size := len(rec.re.Find(tail))
		if size == 0 {
			continue
		}

		token := NewToken(i, rec.typeName, string(tail[:size]), c.SourcePos())
		if rec.isError {
			return nil, badTokenError(token)
		}

		c.Skip(size)
		return token, nil
	}

	return nil, nil
}

// Next fetches token starting at current source position and advances current position.
// Returns nil token and *hcltype.Error and does not advance past the broken lexeme if there is a lexical error.
// Returns EoI token if there is nothing but space left.
func (l *Lexer) Next(c *source.Cursor) (*Token, error) {
	return l.NextOf(c, AllTokenTypes)
}

// NextOf fetches token preferring specified types: expected types are tried first,
// then all other types so that caller can report unexpected token.
// Returns nil token and *hcltype.Error if no lexeme matches or the matching lexeme is broken.
// Returns EoI token if there is nothing but space left.
func (l *Lexer) NextOf(c *source.Cursor, tts TokenTypeSet) (*Token, error) {
	l.skipSpace(c)
	if c.IsEmpty() {
		return EoiToken(c.Source()), nil
	}

	t, e := l.match(c, tts)
	if t == nil && e == nil && tts != AllTokenTypes {
		t, e = l.match(c, AllTokenTypes&^tts)
	}
	if t == nil && e == nil {
		content, pos := c.ContentPos()
		e = wrongCharError(c.Source(), content, pos)
	}
	return t, e
}

// Tokenize fetches all tokens of s using the default lexer, the last token is EoI token.
// Quote boundaries of pair values are fetched as parts of string literals:
// parser uses NextOf to distinguish them.
func Tokenize(s *source.Source) ([]*Token, error) {
	return Default().Tokenize(s)
}

// Tokenize fetches all tokens of s, the last token is EoI token.
func (l *Lexer) Tokenize(s *source.Source) ([]*Token, error) {
	c := source.NewCursor(s)
	var res []*Token
	for {
		t, e := l.Next(c)
		if e != nil {
			return nil, e
		}

		res = append(res, t)
		if t.IsEoi() {
			return res, nil
		}
	}
}
