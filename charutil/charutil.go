// Package charutil provides the character classification primitives used by
// URL detection and normalization: hex/alpha/numeric tests, dot-equivalent
// code points, and whitespace handling.
package charutil

import "strings"

// Dot-equivalent code points. Browsers treat the full-width and halfwidth
// ideographic full stops as label separators identical to '.'.
const (
	IdeographicFullStop  = '。'
	FullWidthFullStop    = '．'
	HalfWidthIdeographic = '｡'
)

// IsHex reports whether r is an ASCII hexadecimal digit.
func IsHex(r rune) bool {
	return ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F') || IsNumeric(r)
}

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsNumeric reports whether r is an ASCII digit.
func IsNumeric(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsAlphaNumeric reports whether r is an ASCII letter or digit.
func IsAlphaNumeric(r rune) bool {
	return IsAlpha(r) || IsNumeric(r)
}

// IsDot reports whether r is '.' or one of its full-width equivalents
// (U+3002, U+FF0E, U+FF61).
func IsDot(r rune) bool {
	return r == '.' || r == IdeographicFullStop || r == FullWidthFullStop || r == HalfWidthIdeographic
}

// IsWhiteSpace reports whether r is a space, tab, newline, carriage return,
// or form feed.
func IsWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// SplitByDot splits s on '.' and its full-width equivalents, preserving
// empty labels so that consecutive or trailing separators are visible to
// the caller.
func SplitByDot(s string) []string {
	parts := make([]string, 0, strings.Count(s, ".")+1)
	var label strings.Builder
	for _, r := range s {
		if IsDot(r) {
			parts = append(parts, label.String())
			label.Reset()
			continue
		}
		label.WriteRune(r)
	}
	return append(parts, label.String())
}

// StripSpecialSpaces removes tab, newline, and carriage return characters.
// Browsers drop these anywhere inside a URL before parsing it.
func StripSpecialSpaces(s string) string {
	if !strings.ContainsAny(s, "\t\n\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
