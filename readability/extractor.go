// Package readability isolates the main content of a page with
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/htmlrag"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements htmlrag.Extractor at compile time.
var _ htmlrag.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Pages that are
// not article-like yield an empty ContentHTML rather than an error.
func (e *Extractor) Extract(rawHTML string) (*htmlrag.ExtractResult, error) {
	if htmlrag.IsBlank(rawHTML) {
		return nil, htmlrag.Errorf(htmlrag.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &htmlrag.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
