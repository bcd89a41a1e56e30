package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Element is one XML element with its attributes and child elements.
// Namespace prefixes are dropped; elements and attributes are addressed by local name.
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Element
	Parent   *Element
}

// Document is a fully parsed XML document
type Document struct {
	Root *Element
}

// Parse builds the element tree from a complete document. A leading byte
// order mark is dropped and UTF-16 input is transcoded to UTF-8; other
// declared encodings are decoded through the charset named in the XML
// declaration.
func Parse(data []byte) (*Document, error) {
	data, err := normalizeEncoding(data)
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true
	decoder.CharsetReader = charsetReader

	var root *Element
	var stack []*Element

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Attrs: copyAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					line, _ := decoder.InputPos()
					return nil, fmt.Errorf("line %d: multiple root elements", line)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				el.Parent = parent
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				line, _ := decoder.InputPos()
				return nil, fmt.Errorf("line %d: text outside root element", line)
			}
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return &Document{Root: root}, nil
}

// normalizeEncoding returns data as an ASCII-compatible byte stream.
func normalizeEncoding(data []byte) ([]byte, error) {
	var enc transform.Transformer
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return data[len(utf8BOM):], nil
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}), bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(data, []byte{'<', 0, '?', 0}):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case bytes.HasPrefix(data, []byte{0, '<', 0, '?'}):
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		return data, nil
	}

	out, _, err := transform.Bytes(enc, data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode UTF-16 input: %w", err)
	}
	return out, nil
}

// charsetReader decodes documents declaring a non UTF-8 encoding.
// UTF-16 content has already been transcoded by normalizeEncoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-16", "utf-16le", "utf-16be", "unicode":
		return input, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// FindFirst returns the first element named name in document order, root included.
func (d *Document) FindFirst(name string) *Element {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.FindFirst(name)
}

// FindFirst searches e and its descendants depth-first.
func (e *Element) FindFirst(name string) *Element {
	if e.Name == name {
		return e
	}
	for _, child := range e.Children {
		if found := child.FindFirst(name); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child named name, or nil.
func (e *Element) Child(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildrenNamed returns the direct children named name, in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, child := range e.Children {
		if child.Name == name {
			out = append(out, child)
		}
	}
	return out
}

// Path returns the slash-separated element names from the root down to e.
func (e *Element) Path() string {
	var parts []string
	for cur := e; cur != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}
