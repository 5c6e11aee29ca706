package descriptor

import (
	"testing"

	"github.com/ava12/hcltype/internal/test"
	"github.com/ava12/hcltype/lexer"
	"github.com/ava12/hcltype/source"
	"github.com/ava12/hcltype/tree"
)

func tokens(t *testing.T, src string) []*lexer.Token {
	t.Helper()
	res, e := lexer.Tokenize(source.NewString("sample", src))
	test.ExpectNoError(t, e)
	return res
}

func TestFieldName(t *testing.T) {
	samples := []struct {
		literal, name string
	}{
		{`''`, ""},
		{`'foo'`, "foo"},
		{`'foo bar'`, "foo bar"},
		{`'it\'s'`, "it's"},
		{`'a\\b'`, `a\b`},
		{`'\\\''`, `\'`},
		{`'"q"'`, `"q"`},
		{`'say \"hi\"'`, `say \"hi\"`},
		{`'a\q'`, `a\q`},
		{`'c:\dir'`, `c:\dir`},
		{`'\x61\u00e9'`, `\x61\u00e9`},
		{`'été'`, "été"},
	}

	for _, s := range samples {
		name, ok := FieldName(s.literal)
		test.Assert(t, ok, "%s: expecting success", s.literal)
		test.ExpectString(t, s.name, name)
	}

	for _, literal := range []string{``, `'`, `foo`, `'foo`, `foo'`} {
		_, ok := FieldName(literal)
		test.Assert(t, !ok, "%s: expecting failure", literal)
	}
}

func TestBuildFromTree(t *testing.T) {
	ts := tokens(t, "${ object({ 'a' 'b' map( bool [ number")
	root := tree.NewNode("hcl2_type", ts[0])
	obj := tree.NewNode("object", ts[1])
	root.AppendChild(obj)

	pa := tree.NewNode("pair", ts[2])
	pa.AppendChild(tree.NewTokenNode(ts[2]))
	ia := tree.NewNode("hcl2_type", ts[0])
	m := tree.NewNode("map", ts[4])
	m.AppendChild(tree.NewNode("bool", ts[5]))
	ia.AppendChild(m)
	pa.AppendChild(ia)
	obj.AppendChild(pa)

	pb := tree.NewNode("pair", ts[3])
	pb.AppendChild(tree.NewTokenNode(ts[3]))
	ib := tree.NewNode("hcl2_type", ts[0])
	l := tree.NewNode("list", ts[6])
	l.AppendChild(tree.NewNode("number", ts[7]))
	ib.AppendChild(l)
	pb.AppendChild(ib)
	obj.AppendChild(pb)

	got, e := Build(root)
	test.ExpectNoError(t, e)
	expected := mustObject(t, Field{"a", mustMap(t, Bool)}, Field{"b", mustList(t, Number)})
	test.Assert(t, Equal(expected, got), "descriptor mismatch")

	got, e = Build(l)
	test.ExpectNoError(t, e)
	test.Assert(t, Equal(mustList(t, Number), got), "expecting list of number")
}

func TestBuildErrors(t *testing.T) {
	ts := tokens(t, "${ [ foo 'a'")

	_, e := Build(nil)
	test.ExpectErrorCode(t, ErrBadNode, e)

	bad := tree.NewNode("hcl2_type", ts[0])
	bad.AppendChild(tree.NewNode("foo", ts[2]))
	_, e = Build(bad)
	he := test.ExpectErrorCode(t, ErrBadNode, e)
	test.ExpectInt(t, 6, he.Col)

	_, e = Build(tree.NewNode("hcl2_type", ts[0]))
	test.ExpectErrorCode(t, ErrBadNode, e)

	empty := tree.NewNode("list", ts[1])
	_, e = Build(empty)
	he = test.ExpectErrorCode(t, ErrEmptyList, e)
	test.ExpectInt(t, 4, he.Col)

	keyless := tree.NewNode("pair", ts[3])
	keyless.AppendChild(tree.NewNode("string", ts[2]))
	_, e = Build(keyless)
	test.ExpectErrorCode(t, ErrBadNode, e)

	obj := tree.NewNode("object", ts[0])
	obj.AppendChild(tree.NewNode("string", ts[2]))
	_, e = Build(obj)
	test.ExpectErrorCode(t, ErrBadNode, e)

	unquoted := tree.NewNode("object", ts[0])
	pair := tree.NewNode("pair", ts[2])
	pair.AppendChild(tree.NewTokenNode(ts[2]))
	pair.AppendChild(tree.NewNode("string", ts[2]))
	unquoted.AppendChild(pair)
	_, e = Build(unquoted)
	he = test.ExpectErrorCode(t, ErrBadNode, e)
	test.ExpectInt(t, 6, he.Col)
}

func TestBuildReturnsNilOnError(t *testing.T) {
	ts := tokens(t, "[ map( 'a'")

	l := tree.NewNode("list", ts[0])
	l.AppendChild(tree.NewTokenNode(ts[2]))
	got, e := Build(l)
	test.ExpectErrorCode(t, ErrNilType, e)
	test.Assert(t, got == nil, "expecting nil descriptor, got %#v", got)

	m := tree.NewNode("map", ts[1])
	m.AppendChild(tree.NewTokenNode(ts[2]))
	got, e = Build(m)
	test.ExpectErrorCode(t, ErrNilType, e)
	test.Assert(t, got == nil, "expecting nil descriptor, got %#v", got)

	obj := tree.NewNode("object", ts[0])
	pair := tree.NewNode("pair", ts[2])
	pair.AppendChild(tree.NewTokenNode(ts[2]))
	pair.AppendChild(tree.NewTokenNode(ts[2]))
	obj.AppendChild(pair)
	got, e = Build(obj)
	test.ExpectErrorCode(t, ErrNilType, e)
	test.Assert(t, got == nil, "expecting nil descriptor, got %#v", got)
}
