package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// A builds an attribute, formatting value by type: float64 through [Num],
// integers in base 10, fmt.Stringer via String, anything else via fmt.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: format(value)}
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return Num(x)
	case int:
		return strconv.Itoa(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Num formats f with at most two decimals and no trailing zeros.
func Num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// Element is a node of the scene tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New creates an element with the given attributes.
func New(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// Group creates a <g> element.
func Group(attrs ...Attr) *Element {
	return New("g", attrs...)
}

// Add appends children, skipping nil ones, and returns e.
func (e *Element) Add(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Set replaces the named attribute, appending it if absent, and returns e.
func (e *Element) Set(name string, value any) *Element {
	v := format(value)
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = v
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: v})
	return e
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first element in depth-first order whose id is id.
func (e *Element) Find(id string) *Element {
	if v, ok := e.Attr("id"); ok && v == id {
		return e
	}
	for _, c := range e.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Walk calls fn for e and every descendant in depth-first order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Count returns the number of elements with the given tag in the subtree.
func (e *Element) Count(tag string) int {
	n := 0
	e.Walk(func(el *Element) {
		if el.Tag == tag {
			n++
		}
	})
	return n
}

// Render serializes the subtree into buf. Children of an <svg> element are
// written one per line; everything below that is compact.
func (e *Element) Render(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		_ = xml.EscapeText(buf, []byte(a.Value))
		buf.WriteByte('"')
	}
	if len(e.Children) == 0 && e.Text == "" {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	_ = xml.EscapeText(buf, []byte(e.Text))
	nl := e.Tag == "svg"
	if nl {
		buf.WriteByte('\n')
	}
	for _, c := range e.Children {
		c.Render(buf)
		if nl {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("</")
	buf.WriteString(e.Tag)
	buf.WriteByte('>')
}

// String returns the serialized subtree.
func (e *Element) String() string {
	var buf bytes.Buffer
	e.Render(&buf)
	return buf.String()
}
