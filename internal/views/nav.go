package views

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"tperticaro.dev/internal/ui"
)

// NavID is the element id of the site navigation.
const NavID = "siteNav"

// navLinks are the in-page anchors of the menu, by message key.
var navLinks = []struct{ Key, Href string }{
	{"nav.about", "#about"},
	{"nav.skills", "#skills"},
	{"nav.projects", "#projects"},
	{"nav.contact", "#contact"},
}

// Nav renders the navigation region. A menu that is closing but still
// visible asks for itself again after the close delay. While the mobile menu
// is open the region also listens for clicks elsewhere in the document.
func Nav(view ui.View, pr *message.Printer, closeDelayMs int) templ.Component {
	return component(func(h *htmlWriter) {
		nav := view.Nav
		closing := !nav.Desktop && !nav.Open && nav.MenuVisible

		h.raw(`<nav`)
		h.region(NavID)
		h.attr("class", classes("site-nav fixed inset-x-0 top-0 z-40", when(nav.Scrolled, "scrolled")))
		h.attr("data-open", boolAttr(nav.Open))
		switch {
		case closing:
			h.trigger("get", "/ui/nav", "")
			h.attr("hx-trigger", "load delay:"+itoa(closeDelayMs)+"ms")
		case nav.Open:
			h.trigger("post", "/ui/nav", jsonVals("action", "outside"))
			h.attr("hx-trigger", "click[!target.closest('#"+NavID+"')] from:document")
		}
		h.raw(`><div class="nav-inner mx-auto flex max-w-6xl items-center justify-between px-6 py-4">`)
		h.raw(`<a href="#top" class="nav-brand font-semibold text-white">Portfolio</a>`)

		h.raw(`<button id="navToggle" type="button"`)
		h.attr("class", classes("nav-toggle lg:hidden", when(nav.Open, "is-active")))
		h.attr("aria-expanded", boolAttr(nav.Open))
		h.raw(` aria-controls="navMenu"`)
		h.attr("aria-label", pr.Sprintf("nav.toggle"))
		h.trigger("post", "/ui/nav", jsonVals("action", "toggle"))
		h.raw(`><span></span><span></span><span></span></button>`)

		h.raw(`<ul id="navMenu"`)
		h.attr("class", classes("nav-menu",
			when(!nav.MenuVisible, "hidden"),
			when(nav.MenuVisible, "flex"),
			when(nav.Open, "open")))
		h.attr("aria-hidden", boolAttr(!nav.MenuVisible || (!nav.Desktop && !nav.Open)))
		h.raw(`>`)
		for _, link := range navLinks {
			h.raw(`<li><a`)
			h.attr("href", link.Href)
			h.raw(` class="nav-link"`)
			h.trigger("post", "/ui/nav", jsonVals("action", "link"))
			h.raw(`>`)
			h.text(pr.Sprintf(link.Key))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></div>`)

		h.raw(`<div`)
		h.attr("class", classes("nav-backdrop", when(nav.Open, "is-visible")))
		h.trigger("post", "/ui/nav", jsonVals("action", "backdrop"))
		h.raw(`></div></nav>`)
	})
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
