// Package urls models detected URLs: the Marker that records where each
// component starts inside a token, the URL view that slices components out
// lazily, and the normalization pipeline that produces canonical host and
// path forms for comparison and deduplication.
package urls
