/*
Package hcltype parses HCL2 type expressions used to describe configuration
attribute types, e.g.

	${object({'name':'${string}','ports':'${[number]}'})}

into immutable type descriptors.

Consists of subpackages:
  - source: defines source text and read cursor used by lexer;
  - grammar: defines lexemes and parse tree node types of the type expression grammar;
  - lexer: lexical analyzer;
  - tree: parse tree nodes;
  - parser: recursive descent parser producing parse trees and descriptors;
  - descriptor: type descriptors and the builder folding parse trees into them;
  - attrs: loads attribute type documents written in YAML, JSON, or TOML;
  - cmd/hcltype: console utility checking attribute documents and type expressions.

Typical usage is

	t, e := parser.Parse("${map(string)}")

Root package defines the error type shared by all subpackages.
*/
package hcltype

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors    = 101 // used by lexer
	SyntaxErrors     = 201 // used by parser
	DescriptorErrors = 301 // used by descriptor builder
	DocumentErrors   = 401 // used by attrs
)

// Error is the error type used by hcltype subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Offset contains byte offset in source text or -1 if unknown.
	Offset int

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int

	// Char contains offending character for lexical errors.
	Char rune

	// Expected describes expected lexemes for syntax errors.
	Expected string

	// Found describes actual lexeme for syntax errors.
	Found string

	// Field contains field or attribute name for descriptor and document errors.
	Field string
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Offset returns byte offset in source text.
	Offset() int
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, offset, line, col int) *Error {
	if line != 0 && col != 0 {
		if name != "" {
			msg += fmt.Sprintf(" in %s", name)
		}
		msg += fmt.Sprintf(" at line %d col %d", line, col)
	}
	return &Error{Code: code, Message: msg, SourceName: name, Offset: offset, Line: line, Col: col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Class returns error class of e, i.e. one of *Errors constants.
func (e *Error) Class() int {
	return (e.Code-1)/100*100 + 1
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", -1, 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Offset(), pos.Line(), pos.Col())
}

// ErrorClass returns class of the first *Error found in e's chain or 0.
func ErrorClass(e error) int {
	var he *Error
	if errors.As(e, &he) {
		return he.Class()
	}
	return 0
}

// IsLexical reports whether e's chain contains a lexical error.
func IsLexical(e error) bool {
	return ErrorClass(e) == LexicalErrors
}

// IsSyntax reports whether e's chain contains a syntax error.
func IsSyntax(e error) bool {
	return ErrorClass(e) == SyntaxErrors
}

// IsDescriptor reports whether e's chain contains a descriptor construction error.
func IsDescriptor(e error) bool {
	return ErrorClass(e) == DescriptorErrors
}
