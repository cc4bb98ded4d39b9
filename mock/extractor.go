package mock

import "github.com/fwojciec/htmlrag"

var _ htmlrag.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmlrag.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*htmlrag.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*htmlrag.ExtractResult, error) {
	return e.ExtractFn(html)
}
