// Package parser defines recursive descent parser of HCL2 type expressions.
package parser

import (
	"github.com/ava12/hcltype/descriptor"
	"github.com/ava12/hcltype/grammar"
	"github.com/ava12/hcltype/lexer"
	"github.com/ava12/hcltype/source"
	"github.com/ava12/hcltype/tree"
)

// DefaultMaxDepth is the default limit of nested list, map, and object types.
const DefaultMaxDepth = 100

// Option configures Parser.
type Option func(p *Parser)

// WithMaxDepth sets the limit of nested list, map, and object types, 0 means no limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth < 0 {
			depth = 0
		}
		p.maxDepth = depth
	}
}

// WithSourceName sets source name used in error messages.
func WithSourceName(name string) Option {
	return func(p *Parser) {
		p.sourceName = name
	}
}

// WithLexer sets lexer, the default one is lexer.Default().
func WithLexer(l *lexer.Lexer) Option {
	return func(p *Parser) {
		if l != nil {
			p.lexer = l
		}
	}
}

// Parser is immutable and safe for concurrent use.
type Parser struct {
	lexer      *lexer.Lexer
	maxDepth   int
	sourceName string
}

// New creates new parser, nesting is limited to DefaultMaxDepth unless WithMaxDepth is given.
func New(opts ...Option) *Parser {
	p := &Parser{lexer: lexer.Default(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxDepth returns nesting limit, 0 means no limit.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

var defaultParser = New(WithMaxDepth(0))

// Parse parses type expression with no nesting limit.
// Use New with WithMaxDepth for untrusted input.
func Parse(text string) (descriptor.Type, error) {
	return defaultParser.Parse(text)
}

// Parse parses type expression and builds type descriptor.
// Returned error is always *hcltype.Error.
func (p *Parser) Parse(text string) (descriptor.Type, error) {
	root, e := p.ParseTree(text)
	if e != nil {
		return nil, e
	}

	return descriptor.Build(root)
}

// ParseTree parses type expression and returns parse tree with hcl2_type root node.
func (p *Parser) ParseTree(text string) (*tree.Node, error) {
	return p.ParseSource(source.NewString(p.sourceName, text))
}

// ParseSource parses source text and returns parse tree with hcl2_type root node.
// Whole source must contain exactly one type expression surrounded by optional space.
func (p *Parser) ParseSource(s *source.Source) (*tree.Node, error) {
	pc := &parseContext{parser: p, cursor: source.NewCursor(s)}
	root, e := pc.parseType(0)
	if e == nil {
		_, e = pc.expect(0)
	}
	if e != nil {
		return nil, e
	}

	return root, nil
}

var (
	valueStart  = lexer.Set(grammar.OpenList, grammar.OpenMap, grammar.OpenObject, grammar.Name)
	listStart   = valueStart | lexer.Set(grammar.CloseList)
	listNext    = lexer.Set(grammar.Comma, grammar.CloseList)
	objectStart = lexer.Set(grammar.String, grammar.CloseObject)
	objectNext  = lexer.Set(grammar.Comma, grammar.CloseObject)
)

// parseContext holds the state of a single Parse call.
type parseContext struct {
	parser *Parser
	cursor *source.Cursor
}

// expect fetches the next token and checks that it belongs to tts.
// Empty tts means end of input.
func (pc *parseContext) expect(tts lexer.TokenTypeSet) (*lexer.Token, error) {
	t, e := pc.parser.lexer.NextOf(pc.cursor, tts)
	if e != nil {
		return nil, e
	}

	if t.IsEoi() {
		if tts == 0 {
			return t, nil
		}
	} else if tts&(1<<t.Type()) != 0 {
		return t, nil
	}

	return nil, syntaxError(t, describe(tts))
}

func (pc *parseContext) checkDepth(t *lexer.Token, depth int) error {
	if pc.parser.maxDepth > 0 && depth > pc.parser.maxDepth {
		return tooDeepError(t, pc.parser.maxDepth)
	}
	return nil
}

// hcl2_type = "${", value, "}";
func (pc *parseContext) parseType(depth int) (*tree.Node, error) {
	t, e := pc.expect(lexer.Set(grammar.OpenType))
	if e != nil {
		return nil, e
	}

	n := tree.NewNode(grammar.HCL2TypeNode, t)
	t, e = pc.expect(valueStart)
	if e != nil {
		return nil, e
	}

	v, e := pc.parseValue(t, depth)
	if e != nil {
		return nil, e
	}

	n.AppendChild(v)
	_, e = pc.expect(lexer.Set(grammar.Close))
	if e != nil {
		return nil, e
	}

	return n, nil
}

// value = list | object | map | "string" | "number" | "bool";
// t is the first token of the value, it is already fetched.
func (pc *parseContext) parseValue(t *lexer.Token, depth int) (*tree.Node, error) {
	if e := pc.checkDepth(t, depth); e != nil {
		return nil, e
	}

	switch t.Type() {
	case grammar.OpenList:
		return pc.parseList(t, depth)
	case grammar.OpenMap:
		return pc.parseMap(t, depth)
	case grammar.OpenObject:
		return pc.parseObject(t, depth)
	case grammar.Name:
		if grammar.IsPrimitive(t.Text()) {
			return tree.NewNode(t.Text(), t), nil
		}
		return nil, syntaxError(t, primitives)
	default:
		return nil, syntaxError(t, describe(valueStart))
	}
}

// list = "[", [value, {",", value}], "]";
func (pc *parseContext) parseList(start *lexer.Token, depth int) (*tree.Node, error) {
	n := tree.NewNode(grammar.ListNode, start)
	t, e := pc.expect(listStart)
	if e != nil {
		return nil, e
	}
	if t.Type() == grammar.CloseList {
		return n, nil
	}

	for {
		v, e := pc.parseValue(t, depth+1)
		if e != nil {
			return nil, e
		}

		n.AppendChild(v)
		t, e = pc.expect(listNext)
		if e != nil {
			return nil, e
		}
		if t.Type() == grammar.CloseList {
			return n, nil
		}

		t, e = pc.expect(valueStart)
		if e != nil {
			return nil, e
		}
	}
}

// map = "map(", value, ")";
func (pc *parseContext) parseMap(start *lexer.Token, depth int) (*tree.Node, error) {
	n := tree.NewNode(grammar.MapNode, start)
	t, e := pc.expect(valueStart)
	if e != nil {
		return nil, e
	}

	v, e := pc.parseValue(t, depth+1)
	if e != nil {
		return nil, e
	}

	n.AppendChild(v)
	_, e = pc.expect(lexer.Set(grammar.CloseMap))
	if e != nil {
		return nil, e
	}

	return n, nil
}

// object = "object({", [pair, {",", pair}], "})";
func (pc *parseContext) parseObject(start *lexer.Token, depth int) (*tree.Node, error) {
	n := tree.NewNode(grammar.ObjectNode, start)
	t, e := pc.expect(objectStart)
	if e != nil {
		return nil, e
	}
	if t.Type() == grammar.CloseObject {
		return n, nil
	}

	for {
		p, e := pc.parsePair(t, depth+1)
		if e != nil {
			return nil, e
		}

		n.AppendChild(p)
		t, e = pc.expect(objectNext)
		if e != nil {
			return nil, e
		}
		if t.Type() == grammar.CloseObject {
			return n, nil
		}

		t, e = pc.expect(lexer.Set(grammar.String))
		if e != nil {
			return nil, e
		}
	}
}

// pair = $string, ":", "'", hcl2_type, "'";
// key is the string literal token, it is already fetched.
func (pc *parseContext) parsePair(key *lexer.Token, depth int) (*tree.Node, error) {
	n := tree.NewNode(grammar.PairNode, key)
	n.AppendChild(tree.NewTokenNode(key))
	_, e := pc.expect(lexer.Set(grammar.Colon))
	if e == nil {
		_, e = pc.expect(lexer.Set(grammar.Quote))
	}
	if e != nil {
		return nil, e
	}

	v, e := pc.parseType(depth)
	if e != nil {
		return nil, e
	}

	n.AppendChild(v)
	_, e = pc.expect(lexer.Set(grammar.Quote))
	if e != nil {
		return nil, e
	}

	return n, nil
}
