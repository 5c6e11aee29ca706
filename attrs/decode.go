package attrs

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ava12/hcltype"
)

// Format is an attribute document format.
type Format int

const (
	// FormatAuto selects format by file extension, then by content.
	FormatAuto Format = iota
	FormatYAML
	FormatJSON
	FormatTOML
)

var formatNames = [...]string{"auto", "yaml", "json", "toml"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat converts format name (case insensitive) to Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(name)
	if name == "yml" {
		return FormatYAML, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatAuto, hcltype.FormatError(ErrBadDocument, "unknown document format %q", name)
}

// FormatFromPath detects format by file extension, returns FormatAuto for unknown extensions.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

// Entry is a raw attribute definition.
type Entry struct {
	Name string
	Text string

	// Line is the line of the type string or 0 if the format does not provide it.
	Line int
}

// Decode decodes a flat mapping of attribute names to type strings.
// name is used in error messages and for format detection.
// Entries follow document order. Empty document contains no entries.
func Decode(name string, data []byte, f Format) ([]Entry, error) {
	if f == FormatAuto {
		f = FormatFromPath(name)
	}
	if f == FormatAuto {
		f = sniffFormat(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	switch f {
	case FormatYAML:
		return decodeYAML(name, data)
	case FormatJSON:
		return decodeJSON(name, data)
	case FormatTOML:
		return decodeTOML(name, data)
	default:
		return nil, hcltype.FormatError(ErrBadDocument, "unknown document format %d", int(f))
	}
}

// sniffFormat treats documents starting with "{" as JSON and everything else as YAML.
func sniffFormat(data []byte) Format {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

func documentError(name string, line, col int, msg string, params ...any) *hcltype.Error {
	e := hcltype.FormatError(ErrBadDocument, msg, params...)
	if line == 0 && name != "" {
		e.Message += " in " + name
		e.SourceName = name
		return e
	}
	return hcltype.NewError(ErrBadDocument, e.Message, name, -1, line, col)
}

func duplicateError(name, attr string, line, col int) *hcltype.Error {
	e := documentError(name, line, col, "duplicate attribute %s", attr)
	e.Code = ErrDuplicateAttribute
	e.Field = attr
	return e
}

func decodeYAML(name string, data []byte) ([]Entry, error) {
	var doc yaml.Node
	if e := yaml.Unmarshal(data, &doc); e != nil {
		return nil, documentError(name, 0, 0, "%s", e)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, documentError(name, root.Line, root.Column, "attribute document must be a mapping")
	}

	res := make([]Entry, 0, len(root.Content)/2)
	seen := make(map[string]bool, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, documentError(name, k.Line, k.Column, "attribute name must be a scalar")
		}
		if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" {
			return nil, documentError(name, v.Line, v.Column, "type of attribute %s must be a string", k.Value)
		}
		if seen[k.Value] {
			return nil, duplicateError(name, k.Value, k.Line, k.Column)
		}

		seen[k.Value] = true
		res = append(res, Entry{k.Value, v.Value, v.Line})
	}
	return res, nil
}

func decodeJSON(name string, data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, e := dec.Token()
	if e != nil {
		return nil, documentError(name, 0, 0, "%s", e)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, documentError(name, 0, 0, "attribute document must be an object")
	}

	var res []Entry
	seen := make(map[string]bool)
	for dec.More() {
		tok, e = dec.Token()
		if e != nil {
			return nil, documentError(name, 0, 0, "%s", e)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, documentError(name, 0, 0, "unexpected %v", tok)
		}

		tok, e = dec.Token()
		if e != nil {
			return nil, documentError(name, 0, 0, "%s", e)
		}
		text, ok := tok.(string)
		if !ok {
			return nil, documentError(name, 0, 0, "type of attribute %s must be a string", key)
		}
		if seen[key] {
			return nil, duplicateError(name, key, 0, 0)
		}

		seen[key] = true
		res = append(res, Entry{Name: key, Text: text})
	}

	if _, e = dec.Token(); e != nil {
		return nil, documentError(name, 0, 0, "%s", e)
	}
	if _, e = dec.Token(); !errors.Is(e, io.EOF) {
		return nil, documentError(name, 0, 0, "unexpected data after attribute object")
	}
	return res, nil
}

func decodeTOML(name string, data []byte) ([]Entry, error) {
	var raw map[string]any
	md, e := toml.Decode(string(data), &raw)
	if e != nil {
		var pe toml.ParseError
		if errors.As(e, &pe) {
			return nil, documentError(name, pe.Position.Line, 1, "%s", pe.Message)
		}
		return nil, documentError(name, 0, 0, "%s", e)
	}

	var res []Entry
	for _, k := range md.Keys() {
		if len(k) != 1 {
			continue
		}

		text, ok := raw[k[0]].(string)
		if !ok {
			return nil, documentError(name, 0, 0, "type of attribute %s must be a string", k[0])
		}
		res = append(res, Entry{Name: k[0], Text: text})
	}
	return res, nil
}
