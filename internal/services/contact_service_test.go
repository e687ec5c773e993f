package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoScenario(t *testing.T) {
	svc := NewContactService("", "")

	uri := svc.Mailto(ContactForm{Name: "Ana", Email: "a@x.com", Message: "Hola"})

	require.True(t, strings.HasPrefix(uri, "mailto:"+DefaultRecipient+"?subject="))
	assert.Contains(t, uri, "Nombre%3A%20Ana")
	assert.NotContains(t, uri, " ")

	_, query, ok := strings.Cut(uri, "?")
	require.True(t, ok)
	values, err := url.ParseQuery(query)
	require.NoError(t, err)

	assert.Equal(t, DefaultSubject, values.Get("subject"))
	lines := strings.Split(values.Get("body"), "\n")
	assert.Contains(t, lines, "Nombre: Ana")
	assert.Contains(t, lines, "Email: a@x.com")
	assert.Equal(t, "Hola", lines[len(lines)-1])
}

func TestMailtoEmptyForm(t *testing.T) {
	svc := NewContactService("me@example.com", "Hi")

	uri := svc.Mailto(ContactForm{})

	assert.Equal(t,
		"mailto:me@example.com?subject=Hi&body=Nombre%3A%20%0AEmail%3A%20%0A%0AMensaje%3A%0A",
		uri)
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abcXYZ019", "abcXYZ019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a b", "a%20b"},
		{"a+b&c=d", "a%2Bb%26c%3Dd"},
		{"ñ", "%C3%B1"},
		{"line\nbreak", "line%0Abreak"},
		{"a@x.com", "a%40x.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeURIComponent(tt.in), "input %q", tt.in)
	}
}
