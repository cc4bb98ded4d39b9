// Package regexp implements the pattern engine: an ordered chain of text
// substitutions applied directly to the raw document string.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/htmlrag"
)

// Ensure Engine implements htmlrag.Engine at compile time.
var _ htmlrag.Engine = (*Engine)(nil)

const space = htmlrag.SpacePattern

var (
	doctypeRe = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	scriptRe  = regexp.MustCompile(`(?is)<script\b.*?</script` + space + `*>`)
	styleRe   = regexp.MustCompile(`(?is)<style\b.*?</style` + space + `*>`)
	metaRe    = regexp.MustCompile(`(?i)<meta\b[^>]*>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

	// openTagRe matches an opening tag carrying at least one attribute.
	// Quoted values may contain '>'.
	openTagRe = regexp.MustCompile(`<(` + htmlrag.TagNamePattern + `)` + space + `(?:[^>"']|"[^"]*"|'[^']*')*>`)

	betweenTagsRe = regexp.MustCompile(`>` + space + `+<`)
	spaceRunRe    = regexp.MustCompile(space + `+`)
	afterTagRe    = regexp.MustCompile(`>` + space + `+`)
	beforeTagRe   = regexp.MustCompile(space + `+<`)
)

// Engine optimizes documents with text patterns only. It cannot honor
// Options.KeepTags, which needs the element tree; callers route such
// requests to the structural engine.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Optimize applies the substitution chain in a fixed order. Later stages
// depend on earlier ones: attributes must be gone before "<div></div>" can
// be recognized as empty.
func (e *Engine) Optimize(html string, opts htmlrag.Options) string {
	if htmlrag.IsBlank(html) {
		return ""
	}

	s := doctypeRe.ReplaceAllString(html, "")

	if !opts.ExcludeTags.Has("script") {
		s = scriptRe.ReplaceAllString(s, "")
	}
	if !opts.ExcludeTags.Has("style") {
		s = styleRe.ReplaceAllString(s, "")
	}
	if !opts.ExcludeTags.Has("meta") {
		s = metaRe.ReplaceAllString(s, "")
	}

	if opts.RemoveComments {
		s = commentRe.ReplaceAllString(s, "")
	}

	if !opts.KeepAttributes {
		s = stripAttributes(s, opts.ExcludeTags)
	}

	if opts.NormalizesWhitespace() {
		s = collapseWhitespace(s)
	}

	return htmlrag.Finalize(s, opts)
}

// stripAttributes rewrites `<name attr="v" ...>` to `<name>` for every tag
// whose name is not in keep.
func stripAttributes(s string, keep htmlrag.TagSet) string {
	matches := openTagRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		name := s[m[2]:m[3]]
		if keep.Has(name) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteByte('<')
		b.WriteString(name)
		b.WriteByte('>')
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func collapseWhitespace(s string) string {
	s = betweenTagsRe.ReplaceAllString(s, "><")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = afterTagRe.ReplaceAllString(s, ">")
	return beforeTagRe.ReplaceAllString(s, "<")
}
