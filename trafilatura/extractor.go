// Package trafilatura isolates the main content of a page with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/htmlrag"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements htmlrag.Extractor at compile time.
var _ htmlrag.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// Option configures an Extractor.
type Option func(*trafilatura.Options)

// WithLinks keeps anchors in the extracted content. Enabled by default.
func WithLinks(include bool) Option {
	return func(o *trafilatura.Options) {
		o.IncludeLinks = include
	}
}

// WithImages keeps images in the extracted content.
func WithImages(include bool) Option {
	return func(o *trafilatura.Options) {
		o.IncludeImages = include
	}
}

// WithTables keeps tables in the extracted content. Enabled by default.
func WithTables(include bool) Option {
	return func(o *trafilatura.Options) {
		o.ExcludeTables = !include
	}
}

// NewExtractor creates a new Extractor. User comment sections are always
// dropped.
func NewExtractor(opts ...Option) *Extractor {
	o := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Extractor{opts: o}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*htmlrag.ExtractResult, error) {
	if htmlrag.IsBlank(rawHTML) {
		return nil, htmlrag.Errorf(htmlrag.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &htmlrag.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
