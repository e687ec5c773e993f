package views

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"tperticaro.dev/internal/ui"
)

// ModalID is the element id of the detail modal.
const ModalID = "projectModal"

// Modal renders the detail modal region. While closing, the region asks for
// itself again once the exit animation is over.
func Modal(view ui.View, pr *message.Printer, closeDelayMs int) templ.Component {
	return component(func(h *htmlWriter) {
		phase := view.ModalPhase
		h.raw(`<div`)
		h.region(ModalID)
		h.attr("class", classes("modal fixed inset-0 z-50 items-center justify-center bg-slate-950/80 p-4",
			when(phase == ui.ModalClosed, "hidden"),
			when(phase != ui.ModalClosed, "flex")))
		h.attr("data-phase", phase.String())
		h.raw(` role="dialog" aria-modal="true" aria-labelledby="modalTitle"`)
		switch phase {
		case ui.ModalClosed:
			h.raw(` aria-hidden="true"></div>`)
			return
		case ui.ModalOpen:
			h.trigger("post", "/ui/modal/close", jsonVals("reason", "backdrop"))
			h.raw(` hx-trigger="click[target===this]"`)
		default:
			h.trigger("get", "/ui/modal", "")
			h.attr("hx-trigger", "load delay:"+itoa(closeDelayMs)+"ms")
		}
		h.raw(`>`)

		p := view.ModalProject
		h.raw(`<div`)
		h.attr("class", classes("modal-content relative w-full max-w-2xl rounded-3xl bg-slate-900 p-8", when(phase == ui.ModalOpen, "modal-open")))
		h.raw(`><button type="button" class="modal-close absolute right-6 top-6"`)
		h.attr("aria-label", pr.Sprintf("modal.close"))
		h.trigger("post", "/ui/modal/close", jsonVals("reason", "button"))
		h.raw(`><i class="fa-solid fa-xmark" aria-hidden="true"></i></button>`)

		if p != nil {
			h.raw(`<div id="modalIcon" class="modal-icon">`)
			h.component(Presentation(p, "modal-icon-inner"))
			h.raw(`</div><h3 id="modalTitle" class="text-2xl font-semibold text-white">`)
			h.text(p.Title)
			h.raw(`</h3><div id="modalDescription" class="modal-description text-slate-300">`)
			h.component(Markdown(p.FullDescription))
			h.raw(`</div><h4 class="modal-technologies-title">`)
			h.text(pr.Sprintf("modal.technologies"))
			h.raw(`</h4><div id="modalTechnologies" class="modal-technologies flex flex-wrap gap-2">`)
			for _, tech := range p.Technologies {
				h.raw(`<span class="modal-tech-tag">`)
				h.text(tech)
				h.raw(`</span>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`</div></div>`)
	})
}

// BodyStateID is the element id of the document state marker.
const BodyStateID = "bodyState"

// BodyState renders the marker the stylesheet reads to lock page scroll
// while the modal or the mobile menu is shown.
func BodyState(view ui.View) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div`)
		h.region(BodyStateID)
		h.attr("data-scroll-locked", boolAttr(view.ScrollLocked))
		h.attr("data-nav-open", boolAttr(view.Nav.Open))
		h.raw(` hidden></div>`)
	})
}
