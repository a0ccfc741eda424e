// Package markup writes escaped HTML for hand-written templ components.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer writes HTML to an io.Writer and keeps the first error.
// Once a write fails every later call is a no-op.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// New returns a Writer rendering children with ctx.
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Err returns the first error encountered.
func (m *Writer) Err() error {
	return m.err
}

// Raw writes s without escaping.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes escaped text.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag. attrs are name/value pairs; values are escaped.
func (m *Writer) Open(tag string, attrs ...string) {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		b.WriteString(" ")
		b.WriteString(attrs[i])
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attrs[i+1]))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	m.Raw(b.String())
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Elem writes a tag with escaped text content.
func (m *Writer) Elem(tag, content string, attrs ...string) {
	m.Open(tag, attrs...)
	m.Text(content)
	m.Close(tag)
}

// Child renders a nested component in place. nil is skipped.
func (m *Writer) Child(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// URL sanitizes a route or asset reference for an href or src attribute.
func URL(u string) string {
	return string(templ.URL(u))
}
