package urls

// Normalize returns a copy of u carrying canonical host and path forms.
// Escapes in both are decoded to a fixed point and re-encoded, the host is
// canonicalized (IDNA round-trip, numeric hosts to dotted-decimal, IPv6
// recompression) and dot segments in the path are resolved. The receiver is
// left untouched, and normalizing twice is a no-op.
//
// For numeric and IPv6 hosts the copy also carries the raw address bytes,
// available through HostBytes.
func (u *URL) Normalize() *URL {
	if u.normalized {
		return u
	}
	n := *u
	n.normalized = true
	n.normHost, n.hostBytes = normalizeHost(u.Host())
	n.normPath = normalizePath(u.Path())
	return &n
}
