package detect

import (
	"strings"

	"github.com/textsift/urlsift/charutil"
	"github.com/textsift/urlsift/urls"
)

// domainNextState tells the detector what to do after a host read: the host
// either completed the candidate, handed off to a sub-reader on its
// terminating character, turned out to be userinfo, or failed.
type domainNextState int

const (
	invalidDomainName domainNextState = iota
	validDomainName
	stateReadFragment
	stateReadPath
	stateReadPort
	stateReadQuery
	stateReadUserPass
)

const (
	// Hosts are capped at 255 characters including an implied trailing dot,
	// labels at 63 plus their separator.
	maxHostLength  = 255
	maxLabelLength = 64

	minTopLevelLength = 2
	maxTopLevelLength = 22

	// Non-ASCII label characters start here; anything at or above is kept
	// for the IDNA round-trip during normalization.
	internationalStart = 0xC0
)

// hostReader consumes the host literal of the current candidate. It starts
// from the portion of the detector buffer that was accumulated before the
// triggering character ("current") and keeps reading until it can classify
// the host as one of the three accepted shapes: a DNS name, a numeric
// (inet_aton style) address, or a bracketed IPv6 literal.
type hostReader struct {
	d *Detector

	current    []rune
	hasCurrent bool

	// startHost is the buffer offset where the host actually begins; a
	// pre-scan moves it past characters that cannot open a host.
	startHost int

	dots           int
	labelLength    int
	topLevelLength int

	numeric                bool
	seenBracket            bool
	seenCompleteBracketSet bool
	zoneIndex              bool
}

func newHostReader(d *Detector, current string, hasCurrent bool) *hostReader {
	return &hostReader{
		d:          d,
		current:    []rune(current),
		hasCurrent: hasCurrent,
	}
}

// read consumes the host and returns the next state for the detector.
func (r *hostReader) read() domainNextState {
	if r.prescan() == invalidDomainName {
		return invalidDomainName
	}

	done := false
	for !done && !r.d.input.eof() {
		curr := r.d.input.read()

		switch {
		case curr == '/':
			return r.finish(stateReadPath, curr)

		case curr == ':' && (!r.seenBracket || r.seenCompleteBracketSet):
			// A ':' in the middle of an IPv6 literal is not a port.
			return r.finish(stateReadPort, curr)

		case curr == '?':
			return r.finish(stateReadQuery, curr)

		case curr == '#':
			return r.finish(stateReadFragment, curr)

		case curr == '@':
			// This may not have been a host at all, but userinfo.
			r.d.input.goBack()
			return stateReadUserPass

		case charutil.IsDot(curr) || r.encodedDotAhead(curr):
			// Handles the "hello.." case: an empty label ends the host.
			if r.labelLength < 1 {
				done = true
				break
			}
			r.d.append(curr)
			if !charutil.IsDot(curr) {
				// Encoded dot; pull in the two hex runes.
				r.d.append(r.d.input.read())
				r.d.append(r.d.input.read())
			}
			if !r.zoneIndex {
				r.dots++
				r.labelLength = 0
			}

		case r.seenBracket && !r.seenCompleteBracketSet &&
			(charutil.IsHex(curr) || curr == ':' || curr == '[' || curr == ']' || curr == '%'):
			switch curr {
			case ':':
				r.labelLength = 0
			case '[':
				// A second '[' restarts the scan from this bracket.
				r.d.input.goBack()
				return invalidDomainName
			case ']':
				r.seenCompleteBracketSet = true
				r.zoneIndex = false
			case '%':
				r.zoneIndex = true
			default:
				r.labelLength++
			}
			r.d.append(curr)

		case charutil.IsAlphaNumeric(curr) || curr == '-' || curr >= internationalStart:
			if r.seenCompleteBracketSet {
				// Covers "[fe80::]www.example.com".
				r.d.input.goBack()
				done = true
				break
			}
			if !charutil.IsNumeric(curr) {
				r.numeric = false
			}
			r.d.append(curr)
			r.labelLength++
			r.topLevelLength = r.labelLength

		case curr == '[' && !r.seenBracket:
			r.seenBracket = true
			r.numeric = false
			r.d.append(curr)

		case curr == '[' && r.seenCompleteBracketSet:
			r.d.input.goBack()
			done = true

		case curr == '%' && r.d.input.canReadChars(2) &&
			charutil.IsHex(r.d.input.peekAt(0)) && charutil.IsHex(r.d.input.peekAt(1)):
			r.d.append(curr)
			r.d.append(r.d.input.read())
			r.d.append(r.d.input.read())
			r.labelLength += 3
			r.topLevelLength = r.labelLength

		default:
			// Not a host character; still feed the delimiter tracker.
			r.d.checkMatchingCharacter(curr)
			done = true
		}

		if r.labelLength > maxLabelLength {
			return invalidDomainName
		}
	}

	return r.finish(validDomainName, 0)
}

// encodedDotAhead reports whether curr starts a percent-encoded dot.
func (r *hostReader) encodedDotAhead(curr rune) bool {
	return curr == '%' && r.d.input.canReadChars(2) &&
		strings.EqualFold(r.d.input.peek(2), "2e")
}

// prescan walks the already-buffered part of the host, seeding the dot and
// label counters. When it hits a character that cannot belong to a host it
// restarts the host right after it, cutting the earlier text out of the
// buffer ("http-://example.com" restarts at "example.com").
func (r *hostReader) prescan() domainNextState {
	if !r.hasCurrent {
		r.startHost = len(r.d.buffer)
		r.numeric = true
		return validDomainName
	}

	if len(r.current) == 1 && charutil.IsDot(r.current[0]) {
		return invalidDomainName
	}
	if len(r.current) == 3 && strings.EqualFold(string(r.current), "%2e") {
		return invalidDomainName
	}

	r.startHost = len(r.d.buffer) - len(r.current)
	if r.startHost < 0 {
		r.startHost = 0
	}
	r.numeric = true

	newStart := 0
	length := len(r.current)

	// A leading "0x" group stays numeric through its hex digits.
	allHexSoFar := length > 2 && r.current[0] == '0' && (r.current[1] == 'x' || r.current[1] == 'X')

	index := 0
	if allHexSoFar {
		index = 2
	}

	for index < length {
		curr := r.current[index]
		r.labelLength++
		r.topLevelLength = r.labelLength

		switch {
		case r.labelLength > maxLabelLength:
			return invalidDomainName

		case charutil.IsDot(curr):
			r.dots++
			r.labelLength = 0

		case curr == '[':
			r.seenBracket = true
			r.numeric = false

		case curr == '%' && index+2 < length &&
			charutil.IsHex(r.current[index+1]) && charutil.IsHex(r.current[index+2]):
			if r.current[index+1] == '2' && (r.current[index+2] == 'e' || r.current[index+2] == 'E') {
				r.dots++
				r.labelLength = 0
			} else {
				r.numeric = false
			}
			index += 2

		case allHexSoFar:
			if !charutil.IsHex(curr) {
				r.numeric = false
				allHexSoFar = false
				// Re-run this character knowing it is not hex.
				index--
				r.labelLength--
			}

		case charutil.IsAlpha(curr) || curr == '-' || curr >= internationalStart:
			r.numeric = false

		case !charutil.IsNumeric(curr) && !r.d.opts.Has(AllowSingleLevelDomain):
			// Not a host character; restart the host from the next one.
			newStart = index + 1
			r.labelLength = 0
			r.topLevelLength = 0
			r.numeric = true
			r.dots = 0
		}
		index++
	}

	if newStart > 0 {
		if newStart >= len(r.current) {
			return invalidDomainName
		}
		r.d.buffer = append(r.d.buffer[:0], r.current[newStart:]...)
		r.startHost = 0
		r.d.marker.SetIndex(urls.Host, 0)
	}
	return validDomainName
}

// finish validates the host accumulated in the buffer. On success the
// terminating character (if any) is appended and next is returned; on
// failure the input is rewound one rune and the candidate is rejected.
func (r *hostReader) finish(next domainNextState, terminator rune) domainNextState {
	valid := false

	hostLength := len(r.d.buffer) - r.startHost
	if r.labelLength > 0 {
		hostLength++ // implied trailing dot
	}
	dotCount := r.dots
	if r.labelLength > 0 {
		dotCount++
	}

	switch {
	case hostLength >= maxHostLength:

	case r.seenBracket:
		valid = r.seenCompleteBracketSet && validIPv6(r.hostText())

	case r.numeric:
		valid = validNumericHost(r.hostText(), r.dots)

	case (r.labelLength > 0 && r.dots >= 1) || (r.dots >= 2 && r.labelLength == 0) ||
		(r.d.opts.Has(AllowSingleLevelDomain) && r.dots == 0 && dotCount > 0):
		valid = r.validDNSHost()
	}

	if valid {
		if terminator != 0 {
			r.d.append(terminator)
		}
		return next
	}

	// Roll back one rune so text like "00:41.<br />" is not picked up
	// again as "41.br".
	r.d.input.goBack()
	return invalidDomainName
}

// hostText returns the lowercased host accumulated so far.
func (r *hostReader) hostText() string {
	start := r.startHost
	if start > len(r.d.buffer) {
		start = len(r.d.buffer)
	}
	return strings.ToLower(string(r.d.buffer[start:]))
}

// validDNSHost applies the label rules: the top-level label is 2-22
// characters and starts with a letter (internationalized "xn--" labels are
// exempt), and no label starts or ends with a hyphen.
func (r *hostReader) validDNSHost() bool {
	topStart := len(r.d.buffer) - r.topLevelLength
	if r.labelLength == 0 {
		topStart--
	}
	if topStart < r.startHost {
		topStart = r.startHost
	}
	if topStart >= len(r.d.buffer) {
		return false
	}

	topEnd := topStart + 4
	if topEnd > len(r.d.buffer) {
		topEnd = len(r.d.buffer)
	}
	international := strings.EqualFold(string(r.d.buffer[topStart:topEnd]), "xn--")

	if !international {
		if r.topLevelLength < minTopLevelLength || r.topLevelLength > maxTopLevelLength {
			return false
		}
		if !charutil.IsAlpha(r.d.buffer[topStart]) {
			return false
		}
	}

	for _, label := range charutil.SplitByDot(r.hostText()) {
		if label == "" {
			continue
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
	}
	return true
}

// validNumericHost accepts inet_aton style numeric hosts: one to four
// dot-separated decimal, hex or octal groups, the last spanning the
// remaining address bytes.
func validNumericHost(host string, dots int) bool {
	if host == "" || dots > 3 {
		return false
	}
	_, ok := urls.NumericIPv4(strings.TrimSuffix(host, "."))
	return ok
}

// validIPv6 checks a bracketed IPv6 literal structurally: hex groups of at
// most four digits separated by ':', at most one "::" compression, at most
// eight groups, and exactly eight when there is no compression.
func validIPv6(host string) bool {
	if len(host) < 4 || host[0] != '[' || host[len(host)-1] != ']' {
		return false
	}
	inner := host[1 : len(host)-1]
	if i := strings.Index(inner, "%"); i >= 0 {
		// Zone index; the address part is what matters.
		inner = inner[:i]
	}
	if strings.Count(inner, "::") > 1 || strings.Contains(inner, ":::") {
		return false
	}
	compressed := strings.Contains(inner, "::")
	if inner == "::" {
		return true
	}

	groups := strings.Split(inner, ":")
	nonEmpty := 0
	for _, group := range groups {
		if group == "" {
			if !compressed {
				return false
			}
			continue
		}
		if len(group) > 4 {
			return false
		}
		for _, c := range group {
			if !charutil.IsHex(c) {
				return false
			}
		}
		nonEmpty++
	}

	if compressed {
		return nonEmpty >= 1 && nonEmpty <= 7
	}
	return nonEmpty == 8
}
