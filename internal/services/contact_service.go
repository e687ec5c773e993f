package services

import (
	"strings"
)

const (
	// DefaultRecipient receives contact form messages.
	DefaultRecipient = "tperticaro@gmail.com"
	// DefaultSubject is the subject line of contact form messages.
	DefaultSubject = "Contacto desde el portfolio"
)

// ContactForm holds the submitted fields. Missing fields are empty strings.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// ContactService turns contact form submissions into mailto: URIs.
type ContactService struct {
	recipient string
	subject   string
}

// NewContactService creates a ContactService. Empty arguments fall back to the defaults.
func NewContactService(recipient, subject string) *ContactService {
	if recipient == "" {
		recipient = DefaultRecipient
	}
	if subject == "" {
		subject = DefaultSubject
	}
	return &ContactService{recipient: recipient, subject: subject}
}

// Recipient returns the fixed destination address.
func (s *ContactService) Recipient() string {
	return s.recipient
}

// Body assembles the plain-text message body.
func (s *ContactService) Body(form ContactForm) string {
	lines := []string{
		"Nombre: " + form.Name,
		"Email: " + form.Email,
		"",
		"Mensaje:",
		form.Message,
	}
	return strings.Join(lines, "\n")
}

// Mailto builds the mailto: URI for form.
func (s *ContactService) Mailto(form ContactForm) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(s.recipient)
	b.WriteString("?subject=")
	b.WriteString(EncodeURIComponent(s.subject))
	b.WriteString("&body=")
	b.WriteString(EncodeURIComponent(s.Body(form)))
	return b.String()
}

// EncodeURIComponent percent-encodes s as UTF-8, leaving only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) unescaped.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func uriUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
