// Package attrs loads attribute type documents: flat YAML, JSON, or TOML mappings
// of attribute names to HCL2 type expressions, e.g.
//
//	name: ${string}
//	ports: ${[number]}
//	labels: ${map(string)}
package attrs

import (
	"fmt"
	"os"

	"github.com/ava12/hcltype"
	"github.com/ava12/hcltype/descriptor"
	"github.com/ava12/hcltype/parser"
)

// Error codes used by attrs:
const (
	// ErrBadDocument indicates malformed document or a document that is not a flat mapping of strings.
	ErrBadDocument = hcltype.DocumentErrors + iota

	// ErrDuplicateAttribute indicates repeated attribute name, Error.Field contains the name.
	ErrDuplicateAttribute
)

// Attribute is a successfully parsed attribute definition.
type Attribute struct {
	Name string
	Text string
	Line int
	Type descriptor.Type
}

// AttributeError wraps the parse error of a single attribute.
type AttributeError struct {
	Name string
	Line int
	Err  error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Document contains parsed attributes in document order.
type Document struct {
	Name       string
	Attributes []Attribute
	Errors     []*AttributeError
}

// Lookup returns the type of named attribute, failed attributes are not found.
func (d *Document) Lookup(name string) (descriptor.Type, bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a.Type, true
		}
	}
	return nil, false
}

// HasErrors reports whether some attributes failed to parse.
func (d *Document) HasErrors() bool {
	return len(d.Errors) > 0
}

// NewDocument parses every entry using p (the default parser if p is nil).
func NewDocument(name string, entries []Entry, p *parser.Parser) *Document {
	if p == nil {
		p = parser.New()
	}

	d := &Document{Name: name}
	for _, en := range entries {
		t, e := p.Parse(en.Text)
		if e != nil {
			d.Errors = append(d.Errors, &AttributeError{en.Name, en.Line, e})
			continue
		}

		d.Attributes = append(d.Attributes, Attribute{en.Name, en.Text, en.Line, t})
	}
	return d
}

// Load reads and decodes the file, then parses every attribute.
// Read and decode errors abort loading, attribute parse errors are collected in Document.Errors.
func Load(path string, p *parser.Parser) (*Document, error) {
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}

	entries, e := Decode(path, data, FormatAuto)
	if e != nil {
		return nil, e
	}

	return NewDocument(path, entries, p), nil
}
