package mock

import "github.com/fwojciec/htmlrag"

var _ htmlrag.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmlrag.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
