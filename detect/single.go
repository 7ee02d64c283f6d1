package detect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/textsift/urlsift/charutil"
	"github.com/textsift/urlsift/urls"
)

var (
	// ErrNoURLFound is returned by Single when the input holds no URL.
	ErrNoURLFound = errors.New("no url found in input")

	// ErrMultipleURLsFound is returned by Single when the input holds more
	// than one URL.
	ErrMultipleURLsFound = errors.New("multiple urls found in input")
)

// Single parses raw, which is expected to hold exactly one URL. Interior
// spaces are treated as encoded path characters rather than candidate
// terminators, and single-label hosts are accepted.
func Single(raw string) (*urls.URL, error) {
	formatted := strings.ReplaceAll(strings.TrimSpace(raw), " ", "%20")
	formatted = charutil.StripSpecialSpaces(formatted)

	found := New(formatted, AllowSingleLevelDomain).Detect()
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNoURLFound, raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrMultipleURLsFound, raw)
	}
}
