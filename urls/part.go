package urls

// Part identifies one component of a detected URL. The declaration order
// matters: it is the left-to-right order of components inside a URL, and
// component boundaries are computed by diffing the offsets of consecutive
// present parts.
type Part int

const (
	Scheme Part = iota
	UsernamePassword
	Host
	Port
	Path
	Query
	Fragment

	numParts
)

var partNames = [numParts]string{
	"scheme", "userinfo", "host", "port", "path", "query", "fragment",
}

// String returns the lowercase component name.
func (p Part) String() string {
	if p < 0 || p >= numParts {
		return "invalid"
	}
	return partNames[p]
}

// next returns the part that follows p, or numParts after Fragment.
func (p Part) next() Part {
	return p + 1
}
