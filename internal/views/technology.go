package views

import (
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
)

// technologyIcons maps technology names to icon font classes.
var technologyIcons = map[string]string{
	"Angular":             "fa-brands fa-angular",
	"Amazon S3":           "fa-solid fa-database",
	"CloudFront":          "fa-solid fa-globe",
	"Route 53":            "fa-solid fa-route",
	"Certificate Manager": "fa-solid fa-shield-halved",
	"Docker":              "fa-brands fa-docker",
	"Kubernetes":          "fa-solid fa-network-wired",
	"Minikube":            "fa-solid fa-cubes",
	"YAML":                "fa-solid fa-code",
	"Node.js":             "fa-brands fa-node-js",
	"Amazon ECR":          "fa-solid fa-layer-group",
	"EC2":                 "fa-solid fa-server",
	"VPC":                 "fa-solid fa-diagram-project",
	"MongoDB":             "fa-solid fa-leaf",
	"Amazon SES":          "fa-solid fa-envelope-open-text",
}

// TechnologyIcon returns the icon class for name.
func TechnologyIcon(name string) (string, bool) {
	class, ok := technologyIcons[name]
	return class, ok
}

// Initials derives a badge label from up to the first two words of name.
// Each word contributes its first letter or digit, or its first character
// when it has none. The result is upper-cased; blank input gives "".
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	var b strings.Builder
	for _, tok := range tokens {
		if c, ok := firstAlnum(tok); ok {
			b.WriteByte(c)
			continue
		}
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func firstAlnum(s string) (byte, bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			return c, true
		}
	}
	return 0, false
}

// TechBadge renders one technology pill.
func TechBadge(name string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="tech-pill group/tech"><span class="tech-icon" aria-hidden="true">`)
		if class, ok := TechnologyIcon(name); ok {
			h.raw(`<i`)
			h.attr("class", class)
			h.raw(` aria-hidden="true"></i>`)
		} else {
			h.raw(`<span class="tech-icon-initial" aria-hidden="true">`)
			h.text(Initials(name))
			h.raw(`</span>`)
		}
		h.raw(`</span><span class="tech-pill-label">`)
		h.text(name)
		h.raw(`</span></div>`)
	})
}

// TechBadges renders the pills for technologies, in order.
func TechBadges(technologies []string) templ.Component {
	return component(func(h *htmlWriter) {
		for _, tech := range technologies {
			h.component(TechBadge(tech))
		}
	})
}
