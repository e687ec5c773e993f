package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"tperticaro.dev/internal/models"
	"tperticaro.dev/internal/ui"
)

// GridID is the element id of the project grid.
const GridID = "projectsGrid"

// CardURL is the activation endpoint of card index in render generation gen.
func CardURL(gen uint64, index int) string {
	return fmt.Sprintf("/ui/cards/%d/%d", gen, index)
}

// presentationStyle builds the inline style of an icon presentation.
func presentationStyle(icon models.IconPresentation) string {
	var styles []string
	if icon.Background != "" {
		styles = append(styles, "background: "+icon.Background)
	}
	if icon.Color != "" {
		styles = append(styles, "color: "+icon.Color)
	}
	return strings.Join(styles, "; ")
}

// Presentation renders a project's icon or image.
func Presentation(p *models.Project, iconClass string) templ.Component {
	return component(func(h *htmlWriter) {
		switch pr := p.Presentation.(type) {
		case models.ImagePresentation:
			alt := pr.Alt
			if alt == "" {
				alt = p.Title
			}
			h.raw(`<img`)
			h.attr("class", iconClass+"-image")
			h.attr("src", string(templ.URL(pr.Src)))
			h.attr("alt", alt)
			h.raw(` loading="lazy">`)
		default:
			icon, ok := pr.(models.IconPresentation)
			if !ok || icon.Class == "" {
				icon.Class = models.DefaultIconClass
			}
			h.raw(`<div`)
			h.attr("class", iconClass)
			if style := presentationStyle(icon); style != "" {
				h.attr("style", style)
			}
			h.raw(`><i`)
			h.attr("class", icon.Class)
			h.raw(` aria-hidden="true"></i></div>`)
		}
	})
}

// Card renders one focusable, activatable project card. Activation by click
// or Enter posts the card's generation and index.
func Card(gen uint64, index int, p *models.Project) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article class="project-card group flex h-full cursor-pointer flex-col gap-6 overflow-hidden rounded-3xl border border-white/10 bg-slate-900/70 p-6"`)
		h.raw(` tabindex="0" role="button"`)
		h.attr("data-project-id", itoa(p.ID))
		h.attr("style", fmt.Sprintf("animation-delay: %ss", ftoa(float64(index)*0.1, 1)))
		h.trigger("post", CardURL(gen, index), "")
		h.raw(` hx-trigger="click, keyup[key=='Enter']">`)

		h.raw(`<div class="project-media relative overflow-hidden rounded-2xl border border-white/10"><div class="project-media-overlay"></div><div class="project-icon-wrapper">`)
		h.component(Presentation(p, "project-icon"))
		h.raw(`</div></div>`)

		h.raw(`<div class="project-content flex flex-1 flex-col gap-4"><div><h3 class="project-title text-xl font-semibold text-white">`)
		h.text(p.Title)
		h.raw(`</h3><p class="project-description text-base text-slate-300">`)
		h.text(p.Description)
		h.raw(`</p></div><div class="project-technologies">`)
		h.component(TechBadges(p.Technologies))
		h.raw(`</div></div></article>`)
	})
}

// Grid renders the project grid region. The whole region is replaced on
// every render, so cards of older generations disappear from the document.
func Grid(view ui.View, pr *message.Printer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div`)
		h.region(GridID)
		h.raw(` class="projects-grid grid gap-8 md:grid-cols-2">`)
		if view.GridEnabled {
			for i, p := range view.Projects {
				h.component(Card(view.Generation, i, p))
			}
			if len(view.Projects) == 0 {
				h.raw(`<p class="projects-empty">`)
				h.text(pr.Sprintf("projects.empty"))
				h.raw(`</p>`)
			}
		}
		h.raw(`</div>`)
	})
}

// FilterBarID is the element id of the filter buttons container.
const FilterBarID = "projectFilters"

// FilterBar renders the filter buttons with exactly the current value active.
func FilterBar(view ui.View, pr *message.Printer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div`)
		h.region(FilterBarID)
		h.raw(` class="project-filters flex flex-wrap gap-3" role="toolbar">`)
		if view.GridEnabled {
			for _, v := range view.Filters {
				active := v == view.ActiveFilter
				label := v
				if v == models.FilterAll {
					label = pr.Sprintf("filter.all")
				}
				h.raw(`<button type="button"`)
				h.attr("class", classes("filter-btn", when(active, "active")))
				h.attr("data-filter", v)
				h.attr("aria-pressed", fmt.Sprint(active))
				h.trigger("post", "/ui/filter", jsonVals("filter", v))
				h.raw(`>`)
				h.text(label)
				h.raw(`</button>`)
			}
		}
		h.raw(`</div>`)
	})
}
