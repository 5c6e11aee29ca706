/*
Package grammar defines lexemes and parse tree node types of HCL2 type expressions.

The grammar is

	hcl2_type = "${", value, "}";
	value     = list | object | map | "string" | "number" | "bool";
	list      = "[", [value, {",", value}], "]";
	map       = "map(", value, ")";
	object    = "object({", [pair, {",", pair}], "})";
	pair      = $string, ":", "'", hcl2_type, "'";

Whitespace between lexemes is ignored. The value of a pair is a complete type expression
enclosed in quotes, the quotes inside it are not escaped.
*/
package grammar

// Token types. Values are indexes in Tokens.
const (
	OpenType = iota
	CloseObject
	Close
	OpenList
	CloseList
	Comma
	OpenMap
	OpenObject
	CloseMap
	Colon
	String
	BadString
	Quote
	Name
)

// TokenFlags describe token properties.
type TokenFlags int

const (
	// LiteralToken marks tokens with fixed text.
	LiteralToken TokenFlags = 1 << iota

	// ErrorToken marks broken lexemes, lexer reports an error instead of returning them.
	ErrorToken
)

// Token describes a lexeme.
type Token struct {
	// Name is used in error messages.
	Name string

	// Re is a regular expression matching the lexeme, without anchors.
	Re string

	Flags TokenFlags
}

// Tokens lists lexemes in matching order: the first matching one wins.
var Tokens = []Token{
	OpenType:    {`"${"`, `\$\{`, LiteralToken},
	CloseObject: {`"})"`, `\}\)`, LiteralToken},
	Close:       {`"}"`, `\}`, LiteralToken},
	OpenList:    {`"["`, `\[`, LiteralToken},
	CloseList:   {`"]"`, `\]`, LiteralToken},
	Comma:       {`","`, `,`, LiteralToken},
	OpenMap:     {`"map("`, `map\(`, LiteralToken},
	OpenObject:  {`"object({"`, `object\(\{`, LiteralToken},
	CloseMap:    {`")"`, `\)`, LiteralToken},
	Colon:       {`":"`, `:`, LiteralToken},
	String:      {"string literal", `'(?:[^'\\]|\\.)*'`, 0},
	BadString:   {"unterminated string literal", `'(?:[^'\\]|\\.)*\\?\z`, ErrorToken},
	Quote:       {`"'"`, `'`, LiteralToken},
	Name:        {"type name", `[A-Za-z_][A-Za-z0-9_]*`, 0},
}

// Space matches insignificant characters between lexemes.
const Space = `\s+`

// Primitive type keywords.
const (
	StringType = "string"
	NumberType = "number"
	BoolType   = "bool"
)

// Parse tree node types.
const (
	HCL2TypeNode = "hcl2_type"
	ListNode     = "list"
	MapNode      = "map"
	ObjectNode   = "object"
	PairNode     = "pair"
	StringNode   = StringType
	NumberNode   = NumberType
	BoolNode     = BoolType
)

// IsPrimitive reports whether name is a primitive type keyword.
func IsPrimitive(name string) bool {
	return name == StringType || name == NumberType || name == BoolType
}
