package mock

import "github.com/fwojciec/htmlrag"

var _ htmlrag.Engine = (*Engine)(nil)

// Engine is a mock implementation of htmlrag.Engine.
type Engine struct {
	OptimizeFn func(html string, opts htmlrag.Options) string
}

func (e *Engine) Optimize(html string, opts htmlrag.Options) string {
	return e.OptimizeFn(html, opts)
}

var _ htmlrag.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of htmlrag.Transformer.
type Transformer struct {
	TransformFn func(html string) (string, error)
}

func (t *Transformer) Transform(html string) (string, error) {
	return t.TransformFn(html)
}
