// Package source defines source text and read cursor used by lexer.
package source

import (
	"bytes"
	"unicode/utf8"
)

// Source contains type expression text and information needed to convert byte offsets to line/column pairs.
// Source caches last found line index, so it is not safe for concurrent use.
type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
}

// New creates new source, name may be empty.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// NewString creates new source from string.
func NewString(name, content string) *Source {
	return New(name, []byte(content))
}

// Name returns source name.
func (s *Source) Name() string {
	return s.name
}

// Content returns source text.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns source text length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to line and column numbers, both starting at 1.
// Column is counted in runes. Offsets out of range are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	if s.prevLineIndex >= 0 {
		rightIndex = s.prevLineIndex
	}
	for leftIndex < rightIndex {
		index := (leftIndex + rightIndex + 1) >> 1
		if s.lineStarts[index] <= pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
		}
	}
	s.prevLineIndex = leftIndex
	return leftIndex
}

// Pos describes a position in source text.
type Pos struct {
	src               *Source
	offset, line, col int
}

// NewPos creates source position for given byte offset.
func NewPos(s *Source, offset int) Pos {
	res := Pos{src: s, offset: offset}
	if s != nil {
		res.line, res.col = s.LineCol(offset)
	}
	return res
}

// Source returns source or nil.
func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns source name or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

// Offset returns byte offset.
func (p Pos) Offset() int {
	return p.offset
}

// Line returns line number or 0.
func (p Pos) Line() int {
	return p.line
}

// Col returns column number or 0.
func (p Pos) Col() int {
	return p.col
}

// Cursor is a read position in a single source.
type Cursor struct {
	source *Source
	pos    int
}

// NewCursor creates cursor pointing at the beginning of s.
func NewCursor(s *Source) *Cursor {
	return &Cursor{source: s}
}

// Source returns source the cursor reads.
func (c *Cursor) Source() *Source {
	return c.source
}

// Pos returns current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// SourcePos returns current position.
func (c *Cursor) SourcePos() Pos {
	return NewPos(c.source, c.pos)
}

// IsEmpty returns true if there is nothing left to read.
func (c *Cursor) IsEmpty() bool {
	return c.source == nil || c.pos >= c.source.Len()
}

// ContentPos returns source text and current offset.
func (c *Cursor) ContentPos() ([]byte, int) {
	if c.source == nil {
		return []byte{}, 0
	}
	return c.source.Content(), c.pos
}

// Skip advances current position by size bytes, not beyond the end of source.
func (c *Cursor) Skip(size int) {
	if c.IsEmpty() || size <= 0 {
		return
	}

	c.pos += size
	if c.pos > c.source.Len() {
		c.pos = c.source.Len()
	}
}
