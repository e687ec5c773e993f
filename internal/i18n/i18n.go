// Package i18n holds the page's message catalogs and request language resolution.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "portfolio_lang"
)

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.Spanish: {
		"notification.contact_sent": "Mensaje enviado correctamente. Serás redirigido a tu correo para enviarlo.",
		"notification.technology":   "Tecnología: %s",
		"filter.all":                "Todos",
		"nav.toggle":                "Abrir menú",
		"nav.about":                 "Sobre mí",
		"nav.skills":                "Habilidades",
		"nav.projects":              "Proyectos",
		"nav.contact":               "Contacto",
		"hero.title":                "Perticaro · Portfolio",
		"hero.subtitle":             "Cloud y DevOps en AWS",
		"about.title":               "Sobre mí",
		"about.body":                "Diseño, despliego y opero aplicaciones en la nube con foco en la automatización.",
		"skills.title":              "Habilidades",
		"projects.title":            "Proyectos",
		"projects.empty":            "No hay proyectos para este filtro.",
		"modal.close":               "Cerrar",
		"modal.technologies":        "Tecnologías",
		"contact.title":             "Contacto",
		"contact.name":              "Nombre",
		"contact.email":             "Email",
		"contact.message":           "Mensaje",
		"contact.submit":            "Enviar mensaje",
	},
	language.English: {
		"notification.contact_sent": "Message ready. You will be redirected to your email client to send it.",
		"notification.technology":   "Technology: %s",
		"filter.all":                "All",
		"nav.toggle":                "Open menu",
		"nav.about":                 "About",
		"nav.skills":                "Skills",
		"nav.projects":              "Projects",
		"nav.contact":               "Contact",
		"hero.title":                "Perticaro · Portfolio",
		"hero.subtitle":             "Cloud and DevOps on AWS",
		"about.title":               "About me",
		"about.body":                "I design, deploy and run cloud applications with a focus on automation.",
		"skills.title":              "Skills",
		"projects.title":            "Projects",
		"projects.empty":            "No projects match this filter.",
		"modal.close":               "Close",
		"modal.technologies":        "Technologies",
		"contact.title":             "Contact",
		"contact.name":              "Name",
		"contact.email":             "Email",
		"contact.message":           "Message",
		"contact.submit":            "Send message",
	},
}

func init() {
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: " + err.Error())
			}
		}
	}
}

// Default returns the fallback language.
func Default() language.Tag { return supported[0] }

// Supported returns the languages with a catalog.
func Supported() []language.Tag { return supported }

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Parse matches s against the supported languages.
func Parse(s string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.Und, false
	}
	return Match(tag), true
}

// Match returns the supported language closest to tags.
func Match(tags ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// ResolveTag picks the language for r: query parameter, then cookie, then
// Accept-Language. The bool reports whether the query parameter chose it.
func ResolveTag(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if r == nil {
		return fallback, false
	}
	if v := r.URL.Query().Get(LangParam); v != "" {
		if tag, ok := Parse(v); ok {
			return tag, true
		}
	}
	if c, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(c.Value); ok {
			return tag, false
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return fallback, false
}

// SetLanguageCookie persists tag for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
