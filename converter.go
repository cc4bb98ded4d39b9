package htmlrag

// Converter renders optimized HTML in another text format.
type Converter interface {
	// Convert transforms compact HTML into the target format.
	// Blank input converts to an empty string.
	Convert(html string) (string, error)
}
