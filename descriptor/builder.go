package descriptor

import (
	"strings"

	"github.com/ava12/hcltype"
	"github.com/ava12/hcltype/grammar"
	"github.com/ava12/hcltype/tree"
)

// Build folds parse tree into type descriptor.
// n must be a tree built by parser: either hcl2_type node or any value node.
func Build(n *tree.Node) (Type, error) {
	if n == nil {
		return nil, hcltype.FormatError(ErrBadNode, "empty parse tree")
	}

	return tree.Fold(n, buildNode)
}

func buildNode(n *tree.Node, children []Type) (Type, error) {
	if n.IsToken() {
		return nil, nil
	}

	switch n.TypeName() {
	case grammar.HCL2TypeNode:
		if len(children) != 1 {
			return nil, badNodeError(n)
		}
		return children[0], nil

	case grammar.StringNode, grammar.NumberNode, grammar.BoolNode:
		return PrimitiveOf(n.TypeName()), nil

	case grammar.ListNode:
		if len(children) == 0 {
			return nil, hcltype.FormatErrorPos(n.Pos(), ErrEmptyList, "empty list type")
		}
		// only the first element type is kept, the rest are parsed and dropped
		l, e := NewList(children[0])
		if e != nil {
			return nil, e
		}
		return l, nil

	case grammar.MapNode:
		if len(children) != 1 {
			return nil, badNodeError(n)
		}
		m, e := NewMap(children[0])
		if e != nil {
			return nil, e
		}
		return m, nil

	case grammar.PairNode:
		if len(children) != 2 || !tree.NthChild(n, 0).IsToken() {
			return nil, badNodeError(n)
		}
		return children[1], nil

	case grammar.ObjectNode:
		return buildObject(n, children)

	default:
		return nil, badNodeError(n)
	}
}

func buildObject(n *tree.Node, children []Type) (Type, error) {
	pairs := n.Children()
	fields := make([]Field, len(pairs))
	names := make(map[string]bool, len(pairs))
	for i, p := range pairs {
		if p.TypeName() != grammar.PairNode {
			return nil, badNodeError(p)
		}

		key := tree.NthChild(p, 0).Token()
		name, ok := FieldName(key.Text())
		if !ok {
			return nil, hcltype.FormatErrorPos(key, ErrBadNode, "%s is not a string literal", key.Describe())
		}
		if names[name] {
			return nil, duplicateFieldError(key, name)
		}

		names[name] = true
		fields[i] = Field{name, children[i]}
	}

	o, e := NewObject(fields...)
	if e != nil {
		return nil, e
	}
	return o, nil
}

func badNodeError(n *tree.Node) *hcltype.Error {
	return hcltype.FormatErrorPos(n.Pos(), ErrBadNode, "unexpected %s node", n.TypeName())
}

// FieldName strips quotes from a string literal and resolves \' and \\ escapes.
// Other backslash sequences are kept as written, e.g. 'c:\dir' gives c:\dir.
// Returns false if literal is not quoted.
func FieldName(literal string) (string, bool) {
	if len(literal) < 2 || literal[0] != '\'' || literal[len(literal)-1] != '\'' {
		return "", false
	}

	s := literal[1 : len(literal)-1]
	if strings.IndexByte(s, '\\') < 0 {
		return s, true
	}

	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == '\'' || s[i+1] == '\\') {
			i++
			c = s[i]
		}
		b.WriteByte(c)
	}
	return b.String(), true
}
