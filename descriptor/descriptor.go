// Package descriptor defines immutable type descriptors and builds them from parse trees.
package descriptor

import (
	"github.com/ava12/hcltype"
)

// Error codes used by descriptor builder:
const (
	// ErrDuplicateField indicates that an object type contains two fields with the same name.
	// Error.Field contains the name.
	ErrDuplicateField = hcltype.DescriptorErrors + iota

	// ErrEmptyList indicates an empty list type, i.e. "[]", which has no element type.
	ErrEmptyList

	// ErrNilType indicates a constructor call with nil element or value type.
	ErrNilType

	// ErrBadNode indicates a parse tree that does not match the grammar.
	ErrBadNode
)

// Kind identifies a type descriptor variant.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindList
	KindMap
	KindObject
)

var kindNames = [...]string{"string", "number", "bool", "list", "map", "object"}

// String returns type keyword, e.g. "string" or "object".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsPrimitive reports whether k is string, number, or bool.
func (k Kind) IsPrimitive() bool {
	return k <= KindBool && k >= KindString
}

// Type is implemented by *Primitive, *List, *Map, and *Object.
// Descriptors are never modified after construction and are safe for concurrent use.
type Type interface {
	Kind() Kind
	isType()
}

// Primitive is a string, number, or bool type.
type Primitive struct {
	kind Kind
}

func (p *Primitive) Kind() Kind { return p.kind }
func (*Primitive) isType() {}

var (
	String = &Primitive{KindString}
	Number = &Primitive{KindNumber}
	Bool   = &Primitive{KindBool}
)

// PrimitiveOf returns primitive type for a keyword or nil.
func PrimitiveOf(keyword string) *Primitive {
	switch keyword {
	case "string":
		return String
	case "number":
		return Number
	case "bool":
		return Bool
	default:
		return nil
	}
}

// List is a homogeneous sequence type.
type List struct {
	elem Type
}

// NewList creates list type, elem must not be nil.
func NewList(elem Type) (*List, error) {
	if elem == nil {
		return nil, hcltype.FormatError(ErrNilType, "list element type is nil")
	}
	return &List{elem}, nil
}

func (*List) Kind() Kind { return KindList }
func (*List) isType() {}

// Elem returns element type.
func (l *List) Elem() Type { return l.elem }

// Map is a homogeneous mapping with string keys.
type Map struct {
	value Type
}

// NewMap creates map type, value must not be nil.
func NewMap(value Type) (*Map, error) {
	if value == nil {
		return nil, hcltype.FormatError(ErrNilType, "map value type is nil")
	}
	return &Map{value}, nil
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) isType() {}

// Key returns key type, it is always String.
func (*Map) Key() Type { return String }

// Value returns value type.
func (m *Map) Value() Type { return m.value }

// Field is an object field.
type Field struct {
	Name string
	Type Type
}

// Object is a type with named fields. Field order follows source text, but it is not significant:
// Equal ignores it.
type Object struct {
	fields []Field
	index  map[string]int
}

// NewObject creates object type. Field names must be distinct, field types must not be nil.
func NewObject(fields ...Field) (*Object, error) {
	o := &Object{fields: make([]Field, len(fields)), index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if f.Type == nil {
			return nil, hcltype.FormatError(ErrNilType, "type of field %q is nil", f.Name)
		}
		if _, found := o.index[f.Name]; found {
			return nil, duplicateFieldError(nil, f.Name)
		}

		o.fields[i] = f
		o.index[f.Name] = i
	}
	return o, nil
}

func duplicateFieldError(pos hcltype.SourcePos, name string) *hcltype.Error {
	var e *hcltype.Error
	if pos == nil {
		e = hcltype.FormatError(ErrDuplicateField, "duplicate field %q", name)
	} else {
		e = hcltype.FormatErrorPos(pos, ErrDuplicateField, "duplicate field %q", name)
	}
	e.Field = name
	return e
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isType() {}

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.fields) }

// Field returns i-th field, panics if i is out of range.
func (o *Object) Field(i int) Field { return o.fields[i] }

// Fields returns a copy of field list.
func (o *Object) Fields() []Field {
	res := make([]Field, len(o.fields))
	copy(res, o.fields)
	return res
}

// Names returns field names in source order.
func (o *Object) Names() []string {
	res := make([]string, len(o.fields))
	for i, f := range o.fields {
		res[i] = f.Name
	}
	return res
}

// Lookup returns the type of named field.
func (o *Object) Lookup(name string) (Type, bool) {
	i, found := o.index[name]
	if !found {
		return nil, false
	}
	return o.fields[i].Type, true
}

// Equal reports whether a and b describe the same type. Object field order is ignored.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case *Primitive:
		return true
	case *List:
		return Equal(at.elem, b.(*List).elem)
	case *Map:
		return Equal(at.value, b.(*Map).value)
	case *Object:
		bt := b.(*Object)
		if len(at.fields) != len(bt.fields) {
			return false
		}
		for _, f := range at.fields {
			bft, found := bt.Lookup(f.Name)
			if !found || !Equal(f.Type, bft) {
				return false
			}
		}
		return true
	}

	return false
}
