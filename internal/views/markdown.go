package views

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders project descriptions. Raw HTML in the source is not
// passed through.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown renders src as HTML, falling back to escaped text when the
// conversion fails.
func Markdown(src string) templ.Component {
	return component(func(h *htmlWriter) {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(src), &buf); err != nil {
			h.raw(`<p>`)
			h.text(src)
			h.raw(`</p>`)
			return
		}
		h.raw(buf.String())
	})
}
