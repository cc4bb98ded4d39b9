// Package htmlrag provides an HTML-to-compact-HTML optimizer for feeding
// documents to retrieval and embedding pipelines. It strips scripts, styles,
// meta tags, comments, attributes, redundant whitespace and empty elements
// while keeping the visible text and its structure.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, html/, goquery/).
package htmlrag

// Engine rewrites an HTML document into its compact form.
//
// Implementations must be pure: no I/O, no shared mutable state, and no
// errors for malformed markup. Empty or whitespace-only input yields "".
type Engine interface {
	Optimize(html string, opts Options) string
}

// Transformer turns a raw HTML document into the content written to disk.
// It composes optional extraction, optimization and conversion steps.
type Transformer interface {
	Transform(html string) (string, error)
}
