package urls

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/textsift/urlsift/charutil"
	"golang.org/x/net/idna"
)

// normalizeHost produces the canonical host form: IPv6 literals are
// lowercased and recompressed, numeric hosts become dotted-decimal IPv4,
// and DNS labels are round-tripped through IDNA. Anything that cannot be
// canonicalized passes through unchanged; host normalization never fails.
func normalizeHost(host string) (string, []byte) {
	if host == "" {
		return host, nil
	}
	host = charutil.StripSpecialSpaces(host)
	host = decode(host)

	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return canonicalIPv6(host)
	}

	mapped := mapDotVariants(host)
	if dotted, ok := NumericIPv4(strings.TrimSuffix(mapped, ".")); ok {
		return dotted, net.ParseIP(dotted).To4()
	}

	labels := strings.Split(mapped, ".")
	for i, label := range labels {
		labels[i] = canonicalLabel(label)
	}
	return strings.Join(labels, "."), nil
}

// canonicalIPv6 canonicalizes a bracketed IPv6 literal. Literals the
// standard parser rejects are returned verbatim.
func canonicalIPv6(host string) (string, []byte) {
	inner := host[1 : len(host)-1]
	ip := net.ParseIP(inner)
	if ip == nil {
		return host, nil
	}
	canonical := ip.String()
	if strings.Contains(canonical, ":") {
		canonical = "[" + canonical + "]"
	}
	return canonical, ip
}

// canonicalLabel round-trips one host label through the IDNA punycode
// transform. Labels that cannot round-trip fall back to the lowercased
// original rather than failing the whole host.
func canonicalLabel(label string) string {
	lower := strings.ToLower(label)
	if lower == "" {
		return lower
	}
	if isASCII(lower) && !strings.HasPrefix(lower, "xn--") {
		return lower
	}
	unicode, err := idna.ToUnicode(lower)
	if err != nil {
		return lower
	}
	ascii, err := idna.ToASCII(unicode)
	if err != nil {
		return lower
	}
	return strings.ToLower(ascii)
}

// NumericIPv4 interprets host as a numeric IPv4 host in inet_aton style:
// one to four dot-separated groups, each decimal, hex ("0x"), or octal
// (leading zero), where the final group covers the remaining address bytes.
// It returns the canonical dotted-decimal form.
func NumericIPv4(host string) (string, bool) {
	if host == "" {
		return "", false
	}
	parts := charutil.SplitByDot(host)
	if len(parts) > 4 {
		return "", false
	}

	var addr [4]byte
	for i, part := range parts {
		value, ok := parseIPGroup(part)
		if !ok {
			return "", false
		}
		if i < len(parts)-1 {
			if value > 255 {
				return "", false
			}
			addr[i] = byte(value)
			continue
		}
		// Final group fills the remaining bytes.
		remaining := 4 - i
		if remaining < 4 && value >= 1<<(8*remaining) {
			return "", false
		}
		for j := 3; j >= i; j-- {
			addr[j] = byte(value)
			value >>= 8
		}
	}
	return fmt.Sprintf("%d.%d.%d.%d", addr[0], addr[1], addr[2], addr[3]), true
}

// parseIPGroup parses one numeric host group as decimal, hex, or octal.
func parseIPGroup(s string) (uint64, bool) {
	base := 10
	switch {
	case s == "":
		return 0, false
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case len(s) > 1 && s[0] == '0':
		s = s[1:]
		base = 8
	}
	value, err := strconv.ParseUint(s, base, 64)
	if err != nil || value > uint64(1)<<32-1 {
		return 0, false
	}
	return value, true
}

// mapDotVariants folds the full-width dot code points into '.'.
func mapDotVariants(host string) string {
	return strings.Map(func(r rune) rune {
		if charutil.IsDot(r) {
			return '.'
		}
		return r
	}, host)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
