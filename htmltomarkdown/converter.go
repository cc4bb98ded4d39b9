// Package htmltomarkdown renders optimized HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/htmlrag"
)

// Ensure Converter implements htmlrag.Converter at compile time.
var _ htmlrag.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

type config struct {
	tables bool
}

// Option configures a Converter.
type Option func(*config)

// WithTables renders tables as GitHub-flavored Markdown tables. Enabled by
// default; when disabled table text is emitted as plain paragraphs.
func WithTables(enabled bool) Option {
	return func(c *config) {
		c.tables = enabled
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	cfg := config{tables: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	}
	if cfg.tables {
		plugins = append(plugins, table.NewTablePlugin())
	}

	return &Converter{conv: converter.NewConverter(converter.WithPlugins(plugins...))}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if htmlrag.IsBlank(html) {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", htmlrag.Errorf(htmlrag.EINVALID, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(result), nil
}
