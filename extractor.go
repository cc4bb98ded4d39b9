package htmlrag

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as HTML with boilerplate
	// (navigation, sidebars, footers, ads) removed.
	ContentHTML string
}

// Extractor isolates the main content of a page before optimization.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// An empty ContentHTML means nothing could be identified as content.
	Extract(html string) (*ExtractResult, error)
}
