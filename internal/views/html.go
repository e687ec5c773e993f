// Package views renders the portfolio page and its swappable regions as
// templ components.
package views

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter accumulates markup and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// region writes the id of a swappable region. Regions are always marked
// out-of-band so any /ui response can carry any of them.
func (h *htmlWriter) region(id string) {
	h.attr("id", id)
	h.raw(` hx-swap-oob="true"`)
}

// trigger writes the htmx attributes of an element that reports an event.
// Responses only carry out-of-band regions.
func (h *htmlWriter) trigger(method, url, vals string) {
	h.attr("hx-"+method, url)
	if vals != "" {
		h.attr("hx-vals", vals)
	}
	h.raw(` hx-swap="none"`)
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// classes joins the non-empty class names.
func classes(names ...string) string {
	out := names[:0:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

func when(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}

// jsonVals encodes key/value pairs as an hx-vals object.
func jsonVals(kv ...string) string {
	vals := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		vals[kv[i]] = kv[i+1]
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64, prec int) string { return strconv.FormatFloat(f, 'f', prec, 64) }

// component adapts a render function into a templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		fn(h)
		return h.err
	})
}
