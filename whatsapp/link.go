package whatsapp

import "strings"

// PlaceholderLink is returned when the configured phone has no digits.
// It renders as a dead anchor instead of a broken wa.me URL.
const PlaceholderLink = "#"

// DigitsOnly strips every non-digit character from a phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink builds the wa.me deep link for a destination phone and a
// prepared message. The phone is reduced to digits first; if nothing is
// left, the placeholder link is returned instead of an error.
func BuildLink(phone, message string) string {
	digits := DigitsOnly(phone)
	if digits == "" {
		return PlaceholderLink
	}
	return "https://wa.me/" + digits + "?text=" + EncodeComponent(message)
}

// EncodeComponent percent-encodes a string exactly like the JavaScript
// encodeURIComponent function: bytes outside A-Z a-z 0-9 - _ . ! ~ * ' ( )
// are encoded as %XX over their UTF-8 representation, space included.
// url.QueryEscape is not a substitute here: it turns spaces into '+' and
// escapes !~*'(), and the destination app decodes component-style, so the
// message body must match byte for byte.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xf])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
