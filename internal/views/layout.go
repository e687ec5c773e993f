package views

import (
	"net/url"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"tperticaro.dev/internal/ui"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Options carries the rendering settings shared by every region.
type Options struct {
	Lang            string
	ModalCloseDelay time.Duration
	NavCloseDelay   time.Duration
}

func (o Options) modalMs() int { return int(o.ModalCloseDelay / time.Millisecond) }
func (o Options) navMs() int   { return int(o.NavCloseDelay / time.Millisecond) }

// TechURL is the endpoint reporting a click on a tech stack item.
func TechURL(name string) string {
	return "/ui/tech/" + url.PathEscape(name)
}

// Page renders the whole document for view.
func Page(view ui.View, pr *message.Printer, opts Options) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", opts.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(pr.Sprintf("hero.title"))
		h.raw(`</title>`)
		h.raw(`<link rel="stylesheet" href="/static/css/portfolio.css">`)
		h.raw(`<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">`)
		h.raw(`<script src="` + htmxScript + `"></script></head>`)

		h.raw(`<body id="top" class="bg-slate-950 text-slate-100">`)
		h.component(BodyState(view))
		h.component(listeners())
		h.component(Nav(view, pr, opts.navMs()))

		h.raw(`<header class="hero relative flex min-h-screen items-center justify-center overflow-hidden">`)
		h.component(Particles(view.Particles))
		h.raw(`<div class="hero-content relative text-center"><h1 class="text-5xl font-bold">`)
		h.text(pr.Sprintf("hero.title"))
		h.raw(`</h1><p class="hero-subtitle mt-4 text-xl text-slate-300">`)
		h.text(pr.Sprintf("hero.subtitle"))
		h.raw(`</p></div></header><main>`)

		section(h, view, "about", func() {
			h.raw(`<h2 class="section-title">`)
			h.text(pr.Sprintf("about.title"))
			h.raw(`</h2><div class="about-card"><p>`)
			h.text(pr.Sprintf("about.body"))
			h.raw(`</p></div>`)
		})
		section(h, view, "skills", func() {
			h.raw(`<h2 class="section-title">`)
			h.text(pr.Sprintf("skills.title"))
			h.raw(`</h2><div class="tech-stack flex flex-wrap gap-3">`)
			for _, tech := range view.Technologies {
				h.raw(`<button type="button" class="tech-item"`)
				h.attr("data-tech", tech)
				h.trigger("post", TechURL(tech), "")
				h.raw(`>`)
				h.component(TechBadge(tech))
				h.raw(`</button>`)
			}
			h.raw(`</div>`)
		})
		section(h, view, "projects", func() {
			h.raw(`<h2 class="section-title">`)
			h.text(pr.Sprintf("projects.title"))
			h.raw(`</h2>`)
			h.component(FilterBar(view, pr))
			h.component(Grid(view, pr))
		})
		section(h, view, "contact", func() {
			h.raw(`<h2 class="section-title">`)
			h.text(pr.Sprintf("contact.title"))
			h.raw(`</h2>`)
			h.component(ContactForm(view.ContactEnabled, pr))
		})

		h.raw(`</main>`)
		h.component(Modal(view, pr, opts.modalMs()))
		h.component(Notifications(view, pr))
		h.raw(`</body></html>`)
	})
}

func section(h *htmlWriter, view ui.View, id string, body func()) {
	h.raw(`<section`)
	revealAttrs(h, id, view.Revealed[id])
	h.raw(`><div class="section-inner mx-auto max-w-6xl px-6 py-24">`)
	body()
	h.raw(`</div></section>`)
}

// listeners renders the document-level event reporters: the Escape key and
// the viewport size and scroll offset.
func listeners() templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div id="keyListener"`)
		h.trigger("post", "/ui/keys", jsonVals("key", "Escape"))
		h.raw(` hx-trigger="keyup[key=='Escape'] from:body"></div>`)

		h.raw(`<div id="viewportListener"`)
		h.trigger("post", "/ui/viewport", "")
		h.raw(` hx-vals='js:{"width": window.innerWidth, "scroll": window.scrollY}'`)
		h.raw(` hx-trigger="load, resize from:window throttle:200ms, scroll from:window throttle:100ms"></div>`)
	})
}
