package detect

import (
	"strings"
	"time"

	"github.com/textsift/urlsift/charutil"
	"github.com/textsift/urlsift/urls"
)

// mailtoScheme is checked for (and rejected) in the scheme position when
// SkipMailto is set: "mailto:bob@example.com" is an address, not a URL.
const mailtoScheme = "mailto:"

// charMatch is the delimiter tracker's verdict on one character.
type charMatch int

const (
	// charNotMatched: the character is not a tracked delimiter.
	charNotMatched charMatch = iota
	// charMatchStop: the character closes a balanced span and must
	// terminate the current candidate.
	charMatchStop
	// charMatchStart: the character opens (or sits inside) a balanced span.
	charMatchStart
)

// endState tells readEnd whether the candidate that just finished is kept.
type endState int

const (
	invalidURL endState = iota
	validURL
)

// Detector is a single-pass backtracking scanner that finds URLs inside
// free-form text. One Detector works over one input; it carries no shared
// state, so separate Detectors may run concurrently on separate goroutines.
type Detector struct {
	opts  Options
	input *cursor

	// buffer accumulates the candidate currently being evaluated.
	buffer []rune

	hasScheme        bool
	quoteStart       bool
	singleQuoteStart bool

	// dontMatchIPv6 is latched after a failed IPv6 read so the '[' is
	// treated as an ordinary delimiter on the retry instead of looping.
	dontMatchIPv6 bool

	// counts tracks seen delimiters for the balance tracker.
	counts map[rune]int

	marker *urls.Marker
	found  []*urls.URL

	// done latches after the first Detect call.
	done bool
}

// New returns a detector over content with the given option set.
func New(content string, opts Options) *Detector {
	return &Detector{
		opts:   opts,
		input:  newCursor(content),
		counts: make(map[rune]int),
		marker: urls.NewMarker(),
	}
}

// Detect scans the input and returns the detected URLs in the order they
// appear. It runs to completion on the calling goroutine. The scan happens
// once; further calls return the same result without rescanning.
func (d *Detector) Detect() []*urls.URL {
	if d.done {
		return d.found
	}
	d.done = true

	start := time.Now()
	d.readDefault()

	detectDuration.Observe(time.Since(start).Seconds())
	urlsFound.Add(float64(len(d.found)))
	backtrackedRunes.Add(float64(d.input.backtracked))
	return d.found
}

// readDefault is the main loop: it dispatches on the character class of
// each rune and hands off to the sub-readers on candidate triggers.
func (d *Detector) readDefault() {
	// Offset in the buffer where the pending host candidate starts.
	length := 0
	position := 0

	for !d.input.eof() {
		curr := d.input.read()

		switch curr {
		case ' ':
			// A space ends the candidate, but under single-level-domain
			// mode a pending "scheme://host" may still be valid.
			if d.opts.Has(AllowSingleLevelDomain) && len(d.buffer) > 0 && d.hasScheme {
				d.input.goBack()
				if !d.readDomainName(d.pending(length), true) {
					d.readEnd(invalidURL)
				}
			}
			d.append(curr)
			d.readEnd(invalidURL)
			length = 0

		case '%':
			if d.input.canReadChars(2) {
				if strings.EqualFold(d.input.peek(2), "3a") {
					// Encoded colon; treat as a literal ':'.
					d.append(curr)
					d.append(d.input.read())
					d.append(d.input.read())
					length = d.processColon(length)
				} else if charutil.IsHex(d.input.peekAt(0)) && charutil.IsHex(d.input.peekAt(1)) {
					d.append(curr)
					d.append(d.input.read())
					d.append(d.input.read())
					if !d.readDomainName(d.pending(length), true) {
						d.readEnd(invalidURL)
					}
					length = 0
				}
			}

		case '。', '．', '｡', '.':
			// A dot (standard or full-width) triggers a host read.
			d.append(curr)
			if !d.readDomainName(d.pending(length), true) {
				d.readEnd(invalidURL)
			}
			length = 0

		case '@':
			if len(d.buffer) > 0 {
				d.marker.SetIndex(urls.UsernamePassword, length)
				d.append(curr)
				if !d.readDomainName("", false) {
					d.readEnd(invalidURL)
				}
				length = 0
			}

		case '[':
			if d.dontMatchIPv6 {
				// The bracket is a plain delimiter this time around.
				if d.checkMatchingCharacter(curr) != charNotMatched {
					d.readEnd(invalidURL)
					length = 0
				}
			}

			beginning := d.input.position()
			if !d.hasScheme {
				d.buffer = d.buffer[:0]
			}
			d.append(curr)

			if !d.readDomainName(d.pending(length), true) {
				// No IPv6 literal here; re-scan the bracket interior for
				// URLs instead.
				d.readEnd(invalidURL)
				d.input.seek(beginning)
				d.dontMatchIPv6 = true
			}
			length = 0

		case '/':
			if d.hasScheme || (d.opts.Has(AllowSingleLevelDomain) && len(d.buffer) > 1) {
				// "scheme://host/path" or a single-level "host/path":
				// un-read the '/' and validate the host first. The
				// buffer length guard weeds out endless backtracking on
				// protocol-relative roots.
				d.input.goBack()
				if !d.readDomainName(d.pending(length), true) {
					d.readEnd(invalidURL)
				}
				length = 0
			} else {
				// Maybe the protocol-relative form "//host/...".
				d.readEnd(invalidURL)
				d.append(curr)
				d.hasScheme = d.readProtocolRelative()
				length = len(d.buffer)
			}

		case ':':
			d.append(curr)
			length = d.processColon(length)

		default:
			if d.checkMatchingCharacter(curr) != charNotMatched {
				d.readEnd(invalidURL)
				length = 0
			} else {
				d.append(curr)
			}
		}

		// Liveness: a full iteration with no cursor progress force-advances
		// one rune.
		if position == d.input.position() && !d.input.eof() {
			d.input.read()
		}
		position = d.input.position()
	}

	if d.opts.Has(AllowSingleLevelDomain) && len(d.buffer) > 0 && d.hasScheme {
		if !d.readDomainName(d.pending(length), true) {
			d.readEnd(invalidURL)
		}
	}
}

// pending returns the buffered text from offset start, the part of the
// candidate not yet claimed by an earlier component.
func (d *Detector) pending(start int) string {
	if start < 0 {
		start = 0
	}
	if start > len(d.buffer) {
		start = len(d.buffer)
	}
	return string(d.buffer[start:])
}

func (d *Detector) append(r rune) {
	d.buffer = append(d.buffer, r)
}

// processColon disambiguates a freshly buffered ':': scheme separator,
// userinfo separator, or the port shorthand of single-level-domain mode.
// It returns the new offset of the pending host within the buffer.
func (d *Detector) processColon(length int) int {
	if d.hasScheme {
		// A second ':' after the scheme can only introduce userinfo.
		if d.readUserPass(length) {
			return 0
		}

		// Not userinfo: un-read the ':' so the host reader can treat it
		// as a port separator, and retry as a host.
		d.input.goBack()
		if len(d.buffer) > 0 {
			d.buffer = d.buffer[:len(d.buffer)-1]
		} else {
			length = 0
		}

		backtrackOnFail := d.input.position() - len(d.buffer) + length
		if !d.readDomainName(d.pending(length), true) {
			d.input.seek(backtrackOnFail)
			d.readEnd(invalidURL)
		}
		return 0
	}

	if d.readScheme() && len(d.buffer) > 0 {
		d.hasScheme = true
		return len(d.buffer) // the host starts right after the scheme
	}

	if len(d.buffer) > 0 && d.opts.Has(AllowSingleLevelDomain) && d.input.canReadChars(1) {
		// Cases like "host:8080": un-read the ':' so the host reader can
		// pick up the port.
		d.input.goBack()
		d.buffer = d.buffer[:len(d.buffer)-1]
		if !d.readDomainName(string(d.buffer), true) {
			d.readEnd(invalidURL)
		}
		return length
	}

	d.readEnd(invalidURL)
	return 0
}

// checkMatchingCharacter updates the delimiter balance tracker with curr
// and reports whether the character opens a span, closes one (terminating
// the candidate), or is not tracked. Quotes are checked first, then
// brackets, then markup.
func (d *Detector) checkMatchingCharacter(curr rune) charMatch {
	if (curr == '"' && d.opts.Has(QuoteMatch)) || (curr == '\'' && d.opts.Has(SingleQuoteMatch)) {
		var alreadyOpen bool
		if curr == '"' {
			alreadyOpen = d.quoteStart
			d.quoteStart = true
		} else {
			alreadyOpen = d.singleQuoteStart
			d.singleQuoteStart = true
		}

		d.counts[curr]++
		if alreadyOpen || d.counts[curr]%2 == 0 {
			return charMatchStop
		}
		return charMatchStart
	}

	if d.opts.Has(BracketMatch) && (curr == '[' || curr == '{' || curr == '(') {
		d.counts[curr]++
		return charMatchStart
	}

	if d.opts.Has(MarkupMode) && curr == '<' {
		d.counts[curr]++
		return charMatchStart
	}

	if (d.opts.Has(BracketMatch) && (curr == ']' || curr == '}' || curr == ')')) ||
		(d.opts.Has(MarkupMode) && curr == '>') {
		d.counts[curr]++

		var open rune
		switch curr {
		case ']':
			open = '['
		case '}':
			open = '{'
		case ')':
			open = '('
		case '>':
			open = '<'
		}

		// Only a genuine excess close terminates the candidate; a close
		// inside a balanced span does not.
		if d.counts[open] > d.counts[curr] {
			return charMatchStop
		}
		return charMatchStart
	}

	return charNotMatched
}

// readProtocolRelative recognizes the "//host/..." form after one '/' has
// been buffered.
func (d *Detector) readProtocolRelative() bool {
	if d.input.eof() {
		return false
	}

	curr := d.input.read()
	if curr == '/' {
		d.append(curr)
		return true
	}

	d.input.goBack()
	d.readEnd(invalidURL)
	return false
}

// readScheme tries to recognize a scheme ending at the buffered ':'. It
// consumes up to "//" and matches the buffer suffix against the scheme
// table; anything that stops looking like a scheme is retried as userinfo.
func (d *Detector) readScheme() bool {
	if d.opts.Has(SkipMailto) && len(d.buffer) >= len(mailtoScheme) {
		tail := string(d.buffer[len(d.buffer)-len(mailtoScheme):])
		if strings.EqualFold(tail, mailtoScheme) {
			return d.readEnd(invalidURL)
		}
	}

	originalLength := len(d.buffer)
	numSlashes := 0

	for !d.input.eof() {
		curr := d.input.read()

		switch {
		case curr == '/':
			d.append(curr)
			if numSlashes == 1 {
				start := findSchemeStart(string(d.buffer), d.opts)
				if start < 0 {
					return false
				}
				d.buffer = append(d.buffer[:0], d.buffer[start:]...)
				d.marker.SetIndex(urls.Scheme, 0)
				return true
			}
			numSlashes++

		case curr == ' ' || d.checkMatchingCharacter(curr) != charNotMatched:
			d.append(curr)
			return d.readEnd(invalidURL)

		case curr == '[':
			// Could be an IPv6 literal; let the main loop handle it.
			d.input.goBack()
			return false

		case originalLength > 0 || numSlashes > 0 || !charutil.IsAlpha(curr):
			// Stopped looking like a scheme; retry as username/password.
			d.input.goBack()
			return d.readUserPass(0)
		}
	}

	return false
}

// readUserPass scans for a userinfo component starting at buffer offset
// beginning and, when confirmed by an '@', continues with a host read.
func (d *Detector) readUserPass(beginning int) bool {
	ok, retryDomain := d.scanUserPass(beginning)
	if retryDomain {
		return d.readDomainName("", true)
	}
	return ok
}

// scanUserPass consumes candidate userinfo text. It reports
// (false, true) when an '@' confirmed userinfo and the host should be read
// next, and (ok, false) when the attempt ended for good. Without a
// confirming '@' the consumed span is un-read so it can be retried as a
// plain host.
func (d *Detector) scanUserPass(beginning int) (bool, bool) {
	start := len(d.buffer)

	done := false
	rollback := false
	for !done && !d.input.eof() {
		curr := d.input.read()

		switch {
		case curr == '@':
			d.append(curr)
			d.marker.SetIndex(urls.UsernamePassword, beginning)
			return false, true

		case charutil.IsDot(curr) || curr == '[':
			// Might really be a domain; remember to roll back.
			d.append(curr)
			rollback = true

		case curr == '#' || curr == ' ' || curr == '/' ||
			d.checkMatchingCharacter(curr) != charNotMatched:
			rollback = true
			done = true

		default:
			d.append(curr)
		}
	}

	if rollback {
		distance := len(d.buffer) - start
		d.buffer = d.buffer[:start]

		position := d.input.position() - distance
		if done {
			position--
		}
		if position < 0 {
			position = 0
		}
		d.input.seek(position)
		return false, false
	}

	return d.readEnd(invalidURL), false
}

// readDomainName runs the host reader over the pending candidate text and
// drives the automaton from whatever state the host read hands back.
// hasCurrent distinguishes "no pre-buffered host" (an '@' trigger) from an
// empty current string.
func (d *Detector) readDomainName(current string, hasCurrent bool) bool {
	for {
		hostIndex := len(d.buffer)
		if hasCurrent {
			hostIndex -= len([]rune(current))
		}
		if hostIndex < 0 {
			hostIndex = 0
		}
		d.marker.SetIndex(urls.Host, hostIndex)

		switch newHostReader(d, current, hasCurrent).read() {
		case validDomainName:
			return d.readEnd(validURL)
		case stateReadFragment:
			return d.scanFragment()
		case stateReadPath:
			return d.scanPath()
		case stateReadPort:
			return d.scanPort()
		case stateReadQuery:
			return d.scanQuery()
		case stateReadUserPass:
			hostStart := d.marker.IndexOf(urls.Host)
			d.marker.UnsetIndex(urls.Host)
			ok, retryDomain := d.scanUserPass(hostStart)
			if !retryDomain {
				return ok
			}
			current, hasCurrent = "", true
		default:
			return false
		}
	}
}

// scanFragment consumes the fragment; everything up to a space or a
// delimiter stop belongs to it.
func (d *Detector) scanFragment() bool {
	d.marker.SetIndex(urls.Fragment, len(d.buffer)-1)

	for !d.input.eof() {
		curr := d.input.read()
		if curr == ' ' || d.checkMatchingCharacter(curr) != charNotMatched {
			return d.readEnd(validURL)
		}
		d.append(curr)
	}

	return d.readEnd(validURL)
}

// scanQuery consumes the query string, handing off to the fragment reader
// on '#'.
func (d *Detector) scanQuery() bool {
	d.marker.SetIndex(urls.Query, len(d.buffer)-1)

	for !d.input.eof() {
		curr := d.input.read()

		switch {
		case curr == '#':
			d.append(curr)
			return d.scanFragment()
		case curr == ' ' || d.checkMatchingCharacter(curr) != charNotMatched:
			return d.readEnd(validURL)
		default:
			d.append(curr)
		}
	}

	return d.readEnd(validURL)
}

// scanPort consumes the port digits. A ':' that introduced no digits backs
// off to the host-only form: the junk after it is skipped up to the next
// component introducer instead of failing the whole candidate.
func (d *Detector) scanPort() bool {
	d.marker.SetIndex(urls.Port, len(d.buffer))

	digits := 0
	for !d.input.eof() {
		curr := d.input.read()

		switch {
		case curr == '/':
			d.append(curr)
			return d.scanPath()
		case curr == '?':
			d.append(curr)
			return d.scanQuery()
		case curr == '#':
			d.append(curr)
			return d.scanFragment()
		case d.checkMatchingCharacter(curr) == charMatchStop || !charutil.IsNumeric(curr):
			d.input.goBack()
			if digits == 0 {
				// "host:notaport" keeps the host and drops the ':'.
				d.buffer = d.buffer[:len(d.buffer)-1]
				d.marker.UnsetIndex(urls.Port)
				return d.skipToComponent()
			}
			return d.readEnd(validURL)
		default:
			d.append(curr)
			digits++
		}
	}

	return d.readEnd(validURL)
}

// skipToComponent drops input up to the next path/query/fragment introducer
// and resumes with that sub-reader, emitting the candidate as-is if none
// appears before the candidate ends.
func (d *Detector) skipToComponent() bool {
	for !d.input.eof() {
		curr := d.input.read()

		switch {
		case curr == '/':
			d.append(curr)
			return d.scanPath()
		case curr == '?':
			d.append(curr)
			return d.scanQuery()
		case curr == '#':
			d.append(curr)
			return d.scanFragment()
		case curr == ' ' || d.checkMatchingCharacter(curr) != charNotMatched:
			return d.readEnd(validURL)
		}
	}

	return d.readEnd(validURL)
}

// scanPath consumes the path, handing off on '?' and '#'.
func (d *Detector) scanPath() bool {
	d.marker.SetIndex(urls.Path, len(d.buffer)-1)

	for !d.input.eof() {
		curr := d.input.read()

		if curr == ' ' || d.checkMatchingCharacter(curr) != charNotMatched {
			return d.readEnd(validURL)
		}
		d.append(curr)

		switch curr {
		case '?':
			return d.scanQuery()
		case '#':
			return d.scanFragment()
		}
	}

	return d.readEnd(validURL)
}

// readEnd finishes the current candidate: a valid one is frozen into a URL
// and recorded, and either way every piece of per-candidate state is reset
// so the automaton is immediately restartable.
func (d *Detector) readEnd(state endState) bool {
	if state == validURL && len(d.buffer) > 0 {
		// A candidate that opened on an unmatched quote keeps its closing
		// quote out of the token.
		if d.quoteStart && d.buffer[len(d.buffer)-1] == '"' {
			d.buffer = d.buffer[:len(d.buffer)-1]
		}

		if len(d.buffer) > 0 {
			d.marker.SetOriginal(string(d.buffer))
			d.found = append(d.found, d.marker.URL())
		}
	}

	d.buffer = d.buffer[:0]
	d.quoteStart = false
	d.singleQuoteStart = false
	d.hasScheme = false
	d.dontMatchIPv6 = false
	clear(d.counts)
	d.marker = urls.NewMarker()

	return state == validURL
}
