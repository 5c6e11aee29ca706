// Package tree defines parse tree nodes built by parser.
package tree

import (
	"github.com/ava12/hcltype/lexer"
	"github.com/ava12/hcltype/source"
)

// Node is either a non-terminal node (e.g. "object" or "pair") or a token node.
// Non-terminal node type names are defined in grammar package, token node type name is the token type name.
type Node struct {
	typeName string
	token    *lexer.Token
	isToken  bool
	parent   *Node
	children []*Node
}

// NewNode creates non-terminal node, tok is the first token of the node.
func NewNode(typeName string, tok *lexer.Token) *Node {
	return &Node{typeName: typeName, token: tok}
}

// NewTokenNode creates token node.
func NewTokenNode(tok *lexer.Token) *Node {
	return &Node{typeName: tok.TypeName(), token: tok, isToken: true}
}

// IsToken returns true for token nodes.
func (n *Node) IsToken() bool {
	return n.isToken
}

// TypeName returns node type name.
func (n *Node) TypeName() string {
	return n.typeName
}

// Token returns token of token node or the first token of non-terminal node.
func (n *Node) Token() *lexer.Token {
	return n.token
}

// Pos returns node start position.
func (n *Node) Pos() source.Pos {
	if n.token == nil {
		return source.Pos{}
	}
	return n.token.Pos()
}

// Parent returns parent node or nil for root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of child node list.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.children))
	copy(res, n.children)
	return res
}

// AppendChild adds c as the last child of n. Token nodes cannot have children.
func (n *Node) AppendChild(c *Node) {
	if n.isToken || c == nil {
		return
	}

	c.parent = n
	n.children = append(n.children, c)
}

// NthChild returns i-th child node or nil.
// Negative i counts from the last child, i.e. -1 is the last child.
func NthChild(n *Node, i int) *Node {
	if n == nil {
		return nil
	}

	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

const AllLevels = -1

// NumOfChildren counts descendants of parent down to given number of levels,
// 0 means direct children only, AllLevels means all descendants.
func NumOfChildren(parent *Node, levels int) int {
	if parent == nil {
		return 0
	}

	i := 0
	for _, c := range parent.children {
		i++
		if levels != 0 {
			i += NumOfChildren(c, levels-1)
		}
	}
	return i
}

// NodeLevel returns the number of ancestors of n.
func NodeLevel(n *Node) (l int) {
	if n == nil {
		return
	}

	for p := n.parent; p != nil; p = p.parent {
		l++
	}
	return
}

// NodeVisitor is called for each visited node.
// Returning false as walkChildren skips node children,
// returning false as walkSiblings skips remaining siblings of node.
type NodeVisitor func(n *Node) (walkChildren, walkSiblings bool)

type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// Walk traverses the tree in pre-order starting at n.
func Walk(n *Node, mode WalkMode, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, visitor, (mode&WalkRtl) != 0)
	}
}

func visitNode(n *Node, v NodeVisitor, rtl bool) (visitSiblings bool) {
	vc, vs := v(n)
	if !vc {
		return vs
	}

	l := len(n.children)
	for i := 0; i < l && vc; i++ {
		c := n.children[i]
		if rtl {
			c = n.children[l-i-1]
		}
		vc = visitNode(c, v, rtl)
	}

	return vs
}

// FoldFunc computes the result for node n given results for its children in order.
type FoldFunc[T any] func(n *Node, children []T) (T, error)

// Fold traverses the tree in post-order and combines results bottom-up.
// Traversal stops at the first error.
func Fold[T any](n *Node, f FoldFunc[T]) (T, error) {
	results := make([]T, 0, len(n.children))
	for _, c := range n.children {
		r, e := Fold(c, f)
		if e != nil {
			var zero T
			return zero, e
		}

		results = append(results, r)
	}

	return f(n, results)
}
