// Package parser reads and writes DLS configuration documents.
//
// Documents are loaded into a generic element tree rather than into
// schema-tagged structs: field lookups walk child paths with per-field
// defaults, and a node's value may live in an explicit "value" attribute or
// in its inner text. Struct-tag unmarshalling cannot express either rule.
package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrUnknownVersion is returned when a document matches neither schema
// generation. Not fatal by itself; the caller decides how to proceed.
var ErrUnknownVersion = errors.New("cannot determine document schema version")

// ReadError reports a file that is missing, unreadable or not well-formed
// markup. It aborts the parse.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading document %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// FieldTypeError reports a field that is present but whose value cannot be
// coerced to its declared type. It aborts the parse: silently defaulting a
// malformed-but-present value would hide a real authoring error.
type FieldTypeError struct {
	Path  string
	Value string
	Want  string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: %q is not a valid %s", e.Path, e.Value, e.Want)
}

// Element is one node of a parsed document: name, attributes, text and
// ordered children. Inner keeps the raw markup of the node's content so
// uninterpreted blocks can be carried through verbatim.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Inner    string     `xml:",innerxml"`
	Children []Element  `xml:",any"`
}

// Load reads and parses a document file into its element tree.
func Load(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	var root Element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return &root, nil
}

// Name returns the element's local name.
func (e *Element) Name() string { return e.XMLName.Local }

// Find returns the first direct child with the given name, or nil.
func (e *Element) Find(name string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// FindAll returns all direct children with the given name, in document order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// FindText returns the trimmed text of the first child with the given name,
// or def when no such child exists. A present child with empty text returns
// the empty string, not the default.
func (e *Element) FindText(name, def string) string {
	c := e.Find(name)
	if c == nil {
		return def
	}
	return strings.TrimSpace(c.Text)
}

// Attr returns the named attribute's value, or def when absent.
func (e *Element) Attr(name, def string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return def
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}

// resolve walks a "a/b/c" child path. Any missing segment yields nil.
func (e *Element) resolve(path string) *Element {
	cur := e
	for _, part := range strings.Split(path, "/") {
		cur = cur.Find(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// value resolves a child path to its textual value, preferring an explicit
// "value" attribute over inner text. A missing path yields the default.
func (e *Element) value(path, def string) string {
	node := e.resolve(path)
	if node == nil {
		return def
	}
	if v := node.Attr("value", ""); v != "" || node.HasAttr("value") {
		return v
	}
	if t := strings.TrimSpace(node.Text); t != "" {
		return t
	}
	return def
}

// boolValue parses the literal token "true" (case-insensitive); every other
// token is false.
func (e *Element) boolValue(path, def string) bool {
	return strings.EqualFold(e.value(path, def), "true")
}

// boolText is boolValue over plain child text (no value-attribute form).
func (e *Element) boolText(name, def string) bool {
	return strings.EqualFold(e.FindText(name, def), "true")
}

func (e *Element) floatValue(path, def string) (float64, error) {
	s := e.value(path, def)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldTypeError{Path: path, Value: s, Want: "number"}
	}
	return f, nil
}

// intValue accepts both integer and float-formatted integral tokens;
// game tooling frequently serializes whole numbers as "32.00".
func (e *Element) intValue(path, def string) (int, error) {
	s := e.value(path, def)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, &FieldTypeError{Path: path, Value: s, Want: "integer"}
	}
	return int(f), nil
}

// Parser turns document files into model structs. It is stateless beyond
// its logger; concurrent parses of different documents are safe.
type Parser struct {
	logger *slog.Logger
}

// New creates a parser with only a logger dependency.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}
