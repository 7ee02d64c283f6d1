package urls

import (
	"fmt"
	"strings"

	"github.com/textsift/urlsift/charutil"
)

// decode percent-decodes s repeatedly until a pass produces no further
// change. Single-pass decoders turn "%2525" into "%25"; browsers keep going
// until the string is stable, and so do we. Invalid escapes pass through
// untouched.
func decode(s string) string {
	for {
		decoded, changed := decodeOnce(s)
		if !changed {
			return decoded
		}
		s = decoded
	}
}

// decodeOnce performs one left-to-right decoding pass over s.
func decodeOnce(s string) (string, bool) {
	if !strings.Contains(s, "%") {
		return s, false
	}
	var b strings.Builder
	b.Grow(len(s))
	changed := false
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexByte(s[i+1]) && isHexByte(s[i+2]) {
			b.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
			i += 2
			changed = true
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String(), changed
}

// encode re-encodes the bytes that cannot appear literally in a canonical
// URL component: controls, space, '%' itself, and everything past ASCII.
func encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c >= 0x7F || c == '%' {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isHexByte(c byte) bool {
	return charutil.IsHex(rune(c))
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
