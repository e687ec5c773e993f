package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tperticaro.dev/internal/services"
	"tperticaro.dev/internal/ui"
	"tperticaro.dev/internal/views"
)

// Contact handles POST /contact. The visitor is sent to their mail client
// with the message prefilled.
func (h *UIHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r, "invalid form")
		return
	}
	form := services.ContactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}

	page := h.sessions.Page(w, r)
	fx := page.Dispatch(ui.ContactSubmitted{Form: form})
	if fx.NavigateTo == "" {
		http.Error(w, "contact form unavailable", http.StatusServiceUnavailable)
		return
	}
	h.log.Info("contact message prepared", zap.Bool("htmx", isHTMX(r)))

	if !isHTMX(r) {
		http.Redirect(w, r, fx.NavigateTo, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Trigger", views.EventContactReset+", "+views.EventNotificationsChanged)
	w.Header().Set("HX-Redirect", fx.NavigateTo)
	w.WriteHeader(http.StatusOK)
}
