package views

import (
	"fmt"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"tperticaro.dev/internal/models"
	"tperticaro.dev/internal/ui"
)

// Client events raised through the HX-Trigger response header.
const (
	EventNotificationsChanged = "notifications-changed"
	EventContactReset         = "contact-reset"
)

// NotificationsID is the element id of the notification stack.
const NotificationsID = "notifications"

// Particles renders the decorative particle layer.
func Particles(particles []models.Particle) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div id="particles" class="particles pointer-events-none absolute inset-0 overflow-hidden" aria-hidden="true">`)
		for _, p := range particles {
			h.raw(`<div class="particle"`)
			h.attr("style", fmt.Sprintf(
				"position: absolute; width: %spx; height: %spx; background: rgba(255, 255, 255, %s); border-radius: 50%%; left: %s%%; top: %s%%; animation: float %ss ease-in-out infinite; animation-delay: %ss;",
				ftoa(p.Width, 2), ftoa(p.Height, 2), ftoa(p.Opacity, 3),
				ftoa(p.Left, 2), ftoa(p.Top, 2),
				ftoa(p.Duration.Seconds(), 2), ftoa(p.Delay.Seconds(), 2)))
			h.raw(`></div>`)
		}
		h.raw(`</div>`)
	})
}

func notificationIcon(kind ui.NotificationKind) string {
	if kind == ui.NotifySuccess {
		return "fas fa-check-circle"
	}
	return "fas fa-info-circle"
}

// Notifications renders the notification stack. It polls while any
// notification is still on screen.
func Notifications(view ui.View, pr *message.Printer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div`)
		h.region(NotificationsID)
		h.raw(` class="notifications" aria-live="polite"`)
		h.trigger("get", "/ui/notifications", "")
		trigger := EventNotificationsChanged + " from:body"
		if len(view.Notifications) > 0 {
			trigger = "every 1s, " + trigger
		}
		h.attr("hx-trigger", trigger)
		h.raw(`>`)
		for _, n := range view.Notifications {
			h.raw(`<div`)
			h.attr("class", classes("notification", "notification-"+string(n.Kind), when(n.Shown, "show")))
			h.attr("data-id", fmt.Sprint(n.ID))
			h.raw(`><div class="notification-content"><i`)
			h.attr("class", notificationIcon(n.Kind))
			h.raw(`></i><span>`)
			h.text(pr.Sprintf(n.Key, n.Args...))
			h.raw(`</span></div></div>`)
		}
		h.raw(`</div>`)
	})
}

// revealAttrs writes the attributes of a scroll-revealed section. The
// section reports its first intersection and animates in when the server
// confirms it was newly revealed.
func revealAttrs(h *htmlWriter, id string, revealed bool) {
	h.attr("id", id)
	h.attr("class", classes("scroll-animate", when(revealed, "animate-in")))
	if revealed {
		return
	}
	threshold := ftoa(ui.RevealThreshold, 1)
	h.trigger("post", "/ui/reveal/"+id, jsonVals("ratio", threshold))
	h.attr("hx-trigger", "intersect threshold:"+threshold+" once")
	h.raw(` hx-on::after-request="if (event.detail.elt === this && event.detail.xhr.status === 200) this.classList.add('animate-in')"`)
}
