// Package detect finds URLs inside free-form text.
//
// The detector is a single-pass scanner with bounded backtracking: it
// buffers a candidate token, validates the host literal when it sees a
// trigger character (a dot, colon, slash, at-sign or bracket), and hands
// off to small sub-readers for the port, path, query and fragment. Rejected
// candidates are never surfaced; the scanner resumes right after them.
// Option flags control quote, bracket and markup delimiter matching,
// single-level-domain shorthands, and the size of the scheme table.
//
// A Detector works over one input and is not safe for concurrent use, but
// separate Detectors share nothing and may run in parallel.
package detect
