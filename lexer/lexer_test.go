package lexer

import (
	"strings"
	"testing"

	"github.com/ava12/hcltype"
	"github.com/ava12/hcltype/grammar"
	"github.com/ava12/hcltype/source"
)

func cursor(text string) *source.Cursor {
	return source.NewCursor(source.NewString("sample", text))
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n "}
	for _, src := range sources {
		tok, e := Default().Next(cursor(src))
		if e != nil {
			t.Fatalf("source %q: unexpected error %s", src, e)
		}
		if !tok.IsEoi() || tok.TypeName() != EoiTokenName {
			t.Fatalf("source %q: unexpected token %s", src, tok.TypeName())
		}
		if tok.Offset() != len(src) {
			t.Fatalf("source %q: expecting EoI at %d, got %d", src, len(src), tok.Offset())
		}
	}
}

func TestTokenSamples(t *testing.T) {
	src := "${ } [ ] , map( ) object({ }) : 'foo\\'bar' string number bool_x"
	expected := []struct {
		tokenType int
		text      string
	}{
		{grammar.OpenType, "${"},
		{grammar.Close, "}"},
		{grammar.OpenList, "["},
		{grammar.CloseList, "]"},
		{grammar.Comma, ","},
		{grammar.OpenMap, "map("},
		{grammar.CloseMap, ")"},
		{grammar.OpenObject, "object({"},
		{grammar.CloseObject, "})"},
		{grammar.Colon, ":"},
		{grammar.String, "'foo\\'bar'"},
		{grammar.Name, "string"},
		{grammar.Name, "number"},
		{grammar.Name, "bool_x"},
		{EoiTokenType, ""},
	}

	tokens, e := Tokenize(source.NewString("", src))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expecting %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Type() != expected[i].tokenType || tok.Text() != expected[i].text {
			t.Errorf("token #%d: expecting %q (%d), got %q (%d)", i, expected[i].text, expected[i].tokenType, tok.Text(), tok.Type())
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, e := Tokenize(source.NewString("attr", "${\n  map(\tbool )}"))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	expected := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{5, 2, 3},
		{10, 2, 8},
		{15, 2, 13},
		{16, 2, 14},
		{17, 2, 15},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expecting %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		x := expected[i]
		if tok.Offset() != x.offset || tok.Line() != x.line || tok.Col() != x.col {
			t.Errorf("token #%d %q: expecting %d at %d:%d, got %d at %d:%d",
				i, tok.Text(), x.offset, x.line, x.col, tok.Offset(), tok.Line(), tok.Col())
		}
		if tok.SourceName() != "attr" {
			t.Errorf("token #%d: expecting source name %q, got %q", i, "attr", tok.SourceName())
		}
	}
}

func TestLongestLiteralFirst(t *testing.T) {
	tokens, e := Tokenize(source.NewString("", "}) } )"))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	expected := []int{grammar.CloseObject, grammar.Close, grammar.CloseMap, EoiTokenType}
	for i, tt := range expected {
		if tokens[i].Type() != tt {
			t.Errorf("token #%d: expecting type %d, got %d", i, tt, tokens[i].Type())
		}
	}
}

func TestExpectedTypes(t *testing.T) {
	c := cursor(":'${string}'")
	l := Default()
	samples := []struct {
		tts       TokenTypeSet
		tokenType int
		text      string
	}{
		{Set(grammar.Colon), grammar.Colon, ":"},
		{Set(grammar.Quote), grammar.Quote, "'"},
		{Set(grammar.OpenType), grammar.OpenType, "${"},
		{Set(grammar.Name), grammar.Name, "string"},
		{Set(grammar.Close), grammar.Close, "}"},
		{Set(grammar.Quote), grammar.Quote, "'"},
	}

	for i, s := range samples {
		tok, e := l.NextOf(c, s.tts)
		if e != nil {
			t.Fatalf("sample #%d: unexpected error: %s", i, e)
		}
		if tok.Type() != s.tokenType || tok.Text() != s.text {
			t.Fatalf("sample #%d: expecting %q, got %q", i, s.text, tok.Text())
		}
	}
}

func TestUnexpectedTypeFallback(t *testing.T) {
	c := cursor(" 'foo' ")
	tok, e := Default().NextOf(c, Set(grammar.Close, grammar.Comma))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	if tok.Type() != grammar.String || tok.Text() != "'foo'" {
		t.Fatalf("expecting string literal, got %s", tok.Describe())
	}
	if tok.Describe() != `string literal "'foo'"` {
		t.Fatalf("unexpected description: %s", tok.Describe())
	}
}

func TestBrokenToken(t *testing.T) {
	c := cursor("\n  'foo\\'  ")
	tok, e := Default().NextOf(c, Set(grammar.String))
	if tok != nil {
		t.Fatalf("expected error, got %q token", tok.TypeName())
	}
	ee, f := e.(*hcltype.Error)
	if !f || ee.Code != ErrBadToken {
		t.Fatalf("expected ErrBadToken, got %v", e)
	}
	if ee.Line != 2 || ee.Col != 3 || ee.Offset != 3 || ee.Char != '\'' {
		t.Fatalf("expected error at offset 3, line 2, col 3, got %d, %d, %d", ee.Offset, ee.Line, ee.Col)
	}
	if !strings.Contains(ee.Message, `"'foo\\'  "`) {
		t.Fatalf("expected broken token in error message, got %q", ee.Message)
	}
	if c.Pos() != 3 {
		t.Fatalf("expected cursor at broken token, got %d", c.Pos())
	}
}

func TestErrorPos(t *testing.T) {
	samples := []struct {
		src            string
		err, line, col int
		offset         int
		char           rune
	}{
		{"${string}\n#", ErrWrongChar, 2, 1, 10, '#'},
		{"${ [ ёж ] }", ErrWrongChar, 1, 6, 5, 'ё'},
		{"${object({'a", ErrBadToken, 1, 11, 10, '\''},
	}
	for i, s := range samples {
		_, e := Tokenize(source.NewString("src", s.src))
		if e == nil {
			t.Errorf("sample %d: expecting an error, got EoI", i)
			continue
		}

		ee, f := e.(*hcltype.Error)
		if !f {
			t.Errorf("sample %d: expecting *hcltype.Error, got: %s", i, e)
			continue
		}

		if ee.Code != s.err || ee.Line != s.line || ee.Col != s.col || ee.Offset != s.offset || ee.Char != s.char {
			t.Errorf("sample %d: expecting err %d (%q) at offset %d line %d col %d, got: %s", i, s.err, s.char, s.offset, s.line, s.col, ee.Message)
		}
		if !hcltype.IsLexical(e) {
			t.Errorf("sample %d: expecting lexical error class, got %d", i, ee.Class())
		}
	}
}

func TestSet(t *testing.T) {
	tts := Set(grammar.Comma, grammar.Quote)
	if tts != 1<<grammar.Comma|1<<grammar.Quote {
		t.Fatalf("unexpected set %b", tts)
	}
	if Set() != 0 {
		t.Fatalf("expecting empty set")
	}
}
