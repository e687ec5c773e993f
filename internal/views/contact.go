package views

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// ContactFormID is the element id of the contact form.
const ContactFormID = "contactForm"

// ContactForm renders an empty contact form. A disabled form is omitted.
// Without htmx the form posts normally and follows the redirect.
func ContactForm(enabled bool, pr *message.Printer) templ.Component {
	return component(func(h *htmlWriter) {
		if !enabled {
			return
		}
		h.raw(`<form`)
		h.attr("id", ContactFormID)
		h.raw(` class="contact-form grid gap-4" method="post" action="/contact"`)
		h.trigger("post", "/contact", "")
		h.attr("hx-on:"+EventContactReset, "this.reset()")
		h.raw(`>`)
		field := func(name, kind, key string) {
			h.raw(`<label class="grid gap-2"><span>`)
			h.text(pr.Sprintf(key))
			h.raw(`</span>`)
			if kind == "textarea" {
				h.raw(`<textarea rows="5"`)
				h.attr("name", name)
				h.raw(`></textarea>`)
			} else {
				h.raw(`<input`)
				h.attr("type", kind)
				h.attr("name", name)
				h.raw(`>`)
			}
			h.raw(`</label>`)
		}
		field("name", "text", "contact.name")
		field("email", "email", "contact.email")
		field("message", "textarea", "contact.message")
		h.raw(`<button type="submit" class="btn-primary">`)
		h.text(pr.Sprintf("contact.submit"))
		h.raw(`</button></form>`)
	})
}
