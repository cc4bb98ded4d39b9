package optimizer

import (
	"fmt"

	"github.com/fwojciec/htmlrag"
)

// Ensure Pipeline implements htmlrag.Transformer at compile time.
var _ htmlrag.Transformer = (*Pipeline)(nil)

// Pipeline turns raw HTML into the content written to disk:
// extract (optional) → optimize → convert (optional).
type Pipeline struct {
	Extractor htmlrag.Extractor
	Engine    htmlrag.Engine
	Converter htmlrag.Converter
	Options   htmlrag.Options
}

// NewPipeline returns a Pipeline that only optimizes, using opts.
func NewPipeline(opts htmlrag.Options) *Pipeline {
	return &Pipeline{
		Engine:  New(),
		Options: opts,
	}
}

// Transform runs the configured steps. An extraction that finds no
// content falls back to the full document.
func (p *Pipeline) Transform(html string) (string, error) {
	if htmlrag.IsBlank(html) {
		return "", nil
	}

	if p.Extractor != nil {
		result, err := p.Extractor.Extract(html)
		if err != nil {
			return "", fmt.Errorf("extract: %w", err)
		}
		if !htmlrag.IsBlank(result.ContentHTML) {
			html = result.ContentHTML
		}
	}

	out := p.Engine.Optimize(html, p.Options)

	if p.Converter != nil && out != "" {
		converted, err := p.Converter.Convert(out)
		if err != nil {
			return "", fmt.Errorf("convert: %w", err)
		}
		out = converted
	}

	return out, nil
}
