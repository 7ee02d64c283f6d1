package detect

// Options is a set of independent detection flags combined with bitwise or.
type Options uint32

const (
	// QuoteMatch treats '"' as a balanced delimiter pair.
	QuoteMatch Options = 1 << iota

	// SingleQuoteMatch treats '\'' as a balanced delimiter pair.
	SingleQuoteMatch

	// BracketMatch treats (), {} and [] as balanced delimiter pairs.
	BracketMatch

	// MarkupMode treats '<' and '>' as a balanced delimiter pair, for
	// scanning tag-delimited text.
	MarkupMode

	// SkipMailto rejects candidates whose scheme position holds "mailto:".
	SkipMailto

	// AllowSingleLevelDomain accepts single-label hosts and the
	// "host:port" / "host/path" shorthands without a scheme.
	AllowSingleLevelDomain

	// ExtendedSchemeDetection matches schemes against the full IANA
	// registry instead of the small web-scheme table.
	ExtendedSchemeDetection
)

// Default is the base behavior with no extras.
const Default Options = 0

// Composite profiles for common input formats.
const (
	JSON       = QuoteMatch | BracketMatch
	Javascript = QuoteMatch | SingleQuoteMatch | BracketMatch
	XML        = QuoteMatch | MarkupMode
	HTML       = QuoteMatch | SingleQuoteMatch | MarkupMode | SkipMailto
)

// Has reports whether every bit of flag is set in o.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}
