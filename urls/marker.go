package urls

// Marker records, per URL part, the starting rune offset of that part within
// the detected token. Offsets of present parts are monotonically
// non-decreasing in Part order; -1 means the part is absent. A Marker is
// mutable only while the detector is working on one candidate; URL takes a
// frozen copy of it.
type Marker struct {
	original string
	indices  [numParts]int
}

// NewMarker returns a marker with every part unset.
func NewMarker() *Marker {
	m := &Marker{}
	for i := range m.indices {
		m.indices[i] = -1
	}
	return m
}

// SetIndex records the starting offset of part p.
func (m *Marker) SetIndex(p Part, index int) {
	if p >= 0 && p < numParts {
		m.indices[p] = index
	}
}

// UnsetIndex clears the offset of part p.
func (m *Marker) UnsetIndex(p Part) {
	m.SetIndex(p, -1)
}

// IndexOf returns the starting offset of part p, or -1 if absent.
func (m *Marker) IndexOf(p Part) int {
	if p < 0 || p >= numParts {
		return -1
	}
	return m.indices[p]
}

// SetOriginal records the full token text as it appeared in the input.
func (m *Marker) SetOriginal(original string) {
	m.original = original
}

// Original returns the full token text.
func (m *Marker) Original() string {
	return m.original
}

// URL freezes the marker and returns the URL view over it. Later mutations
// of the marker do not affect the returned URL.
func (m *Marker) URL() *URL {
	return &URL{
		marker:   *m,
		original: m.original,
		runes:    []rune(m.original),
	}
}
