// Package bulkscan runs URL detection over batches of documents with a
// bounded worker pool, optional rate limiting, and optional normalization
// of the detected URLs. Results come back in input order.
package bulkscan
