// Package optimizer is the entrypoint of the optimization engine. It routes
// each call to the pattern or the structural engine and composes the
// optional extraction and conversion steps around it.
package optimizer

import (
	"github.com/fwojciec/htmlrag"
	raghtml "github.com/fwojciec/htmlrag/html"
	ragregexp "github.com/fwojciec/htmlrag/regexp"
)

// Ensure Optimizer implements htmlrag.Engine at compile time.
var _ htmlrag.Engine = (*Optimizer)(nil)

// Optimizer dispatches between two engines sharing one contract.
type Optimizer struct {
	Patterns   htmlrag.Engine
	Structural htmlrag.Engine

	// ForceStructural routes every call to the structural engine.
	ForceStructural bool
}

// New returns an Optimizer wired to the regexp and html engines.
func New() *Optimizer {
	return &Optimizer{
		Patterns:   ragregexp.NewEngine(),
		Structural: raghtml.NewEngine(),
	}
}

// Optimize returns the compact form of html. An inclusion list needs the
// element identity at every depth, which text patterns cannot provide, so
// a non-empty KeepTags always selects the structural engine.
func (o *Optimizer) Optimize(html string, opts htmlrag.Options) string {
	if htmlrag.IsBlank(html) {
		return ""
	}
	if o.ForceStructural || opts.KeepTags.Len() > 0 {
		return o.Structural.Optimize(html, opts)
	}
	return o.Patterns.Optimize(html, opts)
}

var defaultOptimizer = New()

// Optimize optimizes html with opts applied over the default options.
func Optimize(html string, opts ...htmlrag.Option) string {
	return defaultOptimizer.Optimize(html, htmlrag.NewOptions(opts...))
}
