package partials

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Writer emits HTML and keeps the first write error, so components can be
// written as a flat sequence of calls and checked once at the end.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup
func (h *Writer) Raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// Text writes escaped text content
func (h *Writer) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped
func (h *Writer) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// IntAttr writes an integer attribute
func (h *Writer) IntAttr(name string, value int) {
	h.Attr(name, strconv.Itoa(value))
}

// BoolAttr writes ` name="true"` or ` name="false"`
func (h *Writer) BoolAttr(name string, value bool) {
	h.Attr(name, strconv.FormatBool(value))
}

// Component renders c in place
func (h *Writer) Component(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

// Err returns the first error seen
func (h *Writer) Err() error {
	return h.err
}

// Classes joins the non-empty class names
func Classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// CSSURL quotes src for use inside a CSS url(). Characters that could end
// the string are dropped.
func CSSURL(src string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '\\', '(', ')', '\n', '\r':
			return -1
		}
		return r
	}, src)
	return "url('" + clean + "')"
}
