package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tperticaro.dev/internal/i18n"
	"tperticaro.dev/internal/session"
	"tperticaro.dev/internal/ui"
	"tperticaro.dev/internal/views"
)

// UIHandler turns browser interactions into page events and answers with
// the regions they changed.
type UIHandler struct {
	base
	sessions *session.Store
	opts     views.Options
}

// NewUIHandler creates a new UIHandler
func NewUIHandler(b base, sessions *session.Store, opts views.Options) *UIHandler {
	return &UIHandler{base: b, sessions: sessions, opts: opts}
}

// Index handles GET /
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)
	pr, tag, explicit := h.printer(r)
	if explicit {
		i18n.SetLanguageCookie(w, tag)
	}
	opts := h.opts
	opts.Lang = tag.String()
	h.respondHTML(w, r, http.StatusOK, views.Page(page.View(), pr, opts))
}

// dispatch applies ev to the visitor's page and writes the result.
func (h *UIHandler) dispatch(w http.ResponseWriter, r *http.Request, events ...ui.Event) {
	page := h.sessions.Page(w, r)
	var fx ui.Effects
	for _, ev := range events {
		fx = fx.Merge(page.Dispatch(ev))
	}
	h.respondEffects(w, r, page, fx)
}

// respondEffects renders every region fx names as an out-of-band swap. An
// event that changed nothing answers 204.
func (h *UIHandler) respondEffects(w http.ResponseWriter, r *http.Request, page *ui.Page, fx ui.Effects) {
	if !fx.Changed() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	view := page.View()
	pr, _, _ := h.printer(r)

	var regions []templ.Component
	if fx.Filters {
		regions = append(regions, views.FilterBar(view, pr))
	}
	if fx.Grid {
		regions = append(regions, views.Grid(view, pr))
	}
	if fx.Modal {
		regions = append(regions, views.Modal(view, pr, h.modalMs()))
	}
	if fx.Nav {
		regions = append(regions, views.Nav(view, pr, h.navMs()))
	}
	if fx.Modal || fx.Nav {
		regions = append(regions, views.BodyState(view))
	}
	if fx.Notifications {
		regions = append(regions, views.Notifications(view, pr))
	}
	h.respondHTML(w, r, http.StatusOK, regions...)
}

func (h *UIHandler) modalMs() int { return int(h.opts.ModalCloseDelay.Milliseconds()) }
func (h *UIHandler) navMs() int   { return int(h.opts.NavCloseDelay.Milliseconds()) }

func (h *UIHandler) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.log.Debug("rejected interaction", zap.String("path", r.URL.Path), zap.String("reason", msg))
	http.Error(w, msg, http.StatusBadRequest)
}

// SelectFilter handles POST /ui/filter
func (h *UIHandler) SelectFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || !r.PostForm.Has("filter") {
		h.badRequest(w, r, "missing filter")
		return
	}
	h.dispatch(w, r, ui.FilterSelected{Value: r.PostForm.Get("filter")})
}

// ActivateCard handles POST /ui/cards/{gen}/{index}
func (h *UIHandler) ActivateCard(w http.ResponseWriter, r *http.Request) {
	gen, err := strconv.ParseUint(chi.URLParam(r, "gen"), 10, 64)
	if err != nil {
		h.badRequest(w, r, "invalid generation")
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.badRequest(w, r, "invalid index")
		return
	}
	h.dispatch(w, r, ui.CardActivated{Generation: gen, Index: index})
}

// CloseModal handles POST /ui/modal/close
func (h *UIHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	switch r.PostForm.Get("reason") {
	case "backdrop":
		h.dispatch(w, r, ui.ModalBackdropClicked{})
	case "button", "":
		h.dispatch(w, r, ui.ModalCloseClicked{})
	default:
		h.badRequest(w, r, "unknown reason")
	}
}

// ModalRegion handles GET /ui/modal
func (h *UIHandler) ModalRegion(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)
	pr, _, _ := h.printer(r)
	view := page.View()
	h.respondHTML(w, r, http.StatusOK, views.Modal(view, pr, h.modalMs()), views.BodyState(view))
}

// KeyPress handles POST /ui/keys
func (h *UIHandler) KeyPress(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	key := r.PostForm.Get("key")
	if key == "" {
		h.badRequest(w, r, "missing key")
		return
	}
	h.dispatch(w, r, ui.KeyPressed{Key: key})
}

// NavAction handles POST /ui/nav
func (h *UIHandler) NavAction(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	var ev ui.Event
	switch r.PostForm.Get("action") {
	case "toggle":
		ev = ui.NavToggleClicked{}
	case "backdrop":
		ev = ui.NavBackdropClicked{}
	case "link":
		ev = ui.NavLinkClicked{}
	case "outside":
		ev = ui.OutsideClicked{}
	default:
		h.badRequest(w, r, "unknown action")
		return
	}
	h.dispatch(w, r, ev)
}

// NavRegion handles GET /ui/nav
func (h *UIHandler) NavRegion(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)
	pr, _, _ := h.printer(r)
	view := page.View()
	h.respondHTML(w, r, http.StatusOK, views.Nav(view, pr, h.navMs()), views.BodyState(view))
}

// Viewport handles POST /ui/viewport. Either value may be omitted.
func (h *UIHandler) Viewport(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	var events []ui.Event
	if v := r.PostForm.Get("width"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width < 0 {
			h.badRequest(w, r, "invalid width")
			return
		}
		events = append(events, ui.ViewportResized{Width: width})
	}
	if v := r.PostForm.Get("scroll"); v != "" {
		y, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.badRequest(w, r, "invalid scroll")
			return
		}
		events = append(events, ui.Scrolled{Y: int(y)})
	}
	h.dispatch(w, r, events...)
}

// Reveal handles POST /ui/reveal/{id}. It answers 200 only when the
// element was revealed by this request.
func (h *UIHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	ratio, err := strconv.ParseFloat(r.PostForm.Get("ratio"), 64)
	if err != nil {
		h.badRequest(w, r, "invalid ratio")
		return
	}
	h.dispatch(w, r, ui.ElementIntersected{ID: chi.URLParam(r, "id"), Ratio: ratio})
}

// Technology handles POST /ui/tech/{name}
func (h *UIHandler) Technology(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		h.badRequest(w, r, "invalid technology")
		return
	}
	h.dispatch(w, r, ui.TechnologyClicked{Name: name})
}

// NotificationsRegion handles GET /ui/notifications
func (h *UIHandler) NotificationsRegion(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)
	pr, _, _ := h.printer(r)
	h.respondHTML(w, r, http.StatusOK, views.Notifications(page.View(), pr))
}
