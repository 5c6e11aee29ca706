package test

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ava12/hcltype/tree"
)

type stackNode struct {
	parent        *stackNode
	name          string
	children      []*tree.Node
	length, index int
}

// TreeValidator matches parse tree against s-expression like
//
//	(hcl2_type (object (pair 'foo' (hcl2_type (string)))))
//
// A parenthesized group describes a non-terminal node: its type name followed by its children.
// A bare word or a quoted text describes a token node, it matches either token type name or token text.
type TreeValidator struct {
	sn   *stackNode
	cmds []string
}

var exprRe = regexp.MustCompile(`\(|\)|'(?:[^'\\]|\\.)*'|[^\s()]+`)

// NewTreeValidator creates validator for the tree with root n.
func NewTreeValidator(n *tree.Node, expr string) *TreeValidator {
	top := &stackNode{nil, "", []*tree.Node{n}, 1, 0}
	return &TreeValidator{top, exprRe.FindAllString(expr, -1)}
}

func (tv *TreeValidator) newError(message string, params ...any) error {
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	path := make([]int, 0)
	csn := tv.sn
	for csn != nil {
		path = append([]int{csn.index}, path...)
		csn = csn.parent
	}
	pathString := fmt.Sprintf("path %v, %s: ", path, tv.sn.name)
	return errors.New(pathString + message)
}

func (tv *TreeValidator) exprError(msg string) error {
	return tv.newError("error in validator expression: " + msg)
}

func (tv *TreeValidator) matchName(name string) error {
	if tv.sn.index < 0 {
		if tv.sn.name != name {
			return tv.newError("expecting %s node, got %s", name, tv.sn.name)
		}

		tv.sn.index++
		return nil
	}

	if tv.sn.index >= tv.sn.length {
		return tv.newError("expecting %s token, got end of node", name)
	}

	child := tv.sn.children[tv.sn.index]
	if !child.IsToken() {
		return tv.newError("expecting %s token, got %s node", name, child.TypeName())
	}

	if child.TypeName() != name && child.Token().Text() != name {
		return tv.newError("expecting %s token, got %s(%s)", name, child.TypeName(), child.Token().Text())
	}

	tv.sn.index++
	return nil
}

func (tv *TreeValidator) matchNtStart() error {
	if tv.sn.index < 0 {
		return tv.exprError("missing node name")
	}
	if tv.sn.index >= tv.sn.length {
		return tv.newError("expecting child node, got end of node")
	}

	child := tv.sn.children[tv.sn.index]
	if child.IsToken() {
		return tv.newError("expecting child node, got %s token", child.TypeName())
	}

	children := child.Children()
	tv.sn = &stackNode{tv.sn, child.TypeName(), children, len(children), -1}
	return nil
}

func (tv *TreeValidator) matchNtEnd() error {
	if tv.sn.parent == nil {
		return tv.exprError("excessive )")
	}

	if tv.sn.index < 0 {
		return tv.exprError("missing node name")
	}

	if tv.sn.index != tv.sn.length {
		return tv.newError("expecting end of node, got %s", tv.sn.children[tv.sn.index].TypeName())
	}

	tv.sn = tv.sn.parent
	tv.sn.index++
	return nil
}

// Validate returns nil if the tree matches the expression.
func (tv *TreeValidator) Validate() error {
	var e error
	for _, cmd := range tv.cmds {
		switch cmd {
		case "(":
			e = tv.matchNtStart()
		case ")":
			e = tv.matchNtEnd()
		default:
			e = tv.matchName(cmd)
		}

		if e != nil {
			return e
		}
	}

	if tv.sn.parent != nil {
		return tv.exprError("missing )")
	}
	if tv.sn.index != tv.sn.length {
		return tv.newError("expecting root node, got end of expression")
	}
	return nil
}
