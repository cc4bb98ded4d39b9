package htmlrag

import (
	"regexp"
	"strings"
)

// TagNamePattern matches a whole tag-name token.
const TagNamePattern = `[A-Za-z][\w:-]*`

// SpacePattern matches one whitespace character, including NBSP, BOM and
// the Unicode space separators.
const SpacePattern = `[\s\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// MaxEmptyPasses bounds the empty-element fixed-point loop.
const MaxEmptyPasses = 64

var (
	emptyElementRe = regexp.MustCompile(`<(` + TagNamePattern + `)>` + SpacePattern + `*</(` + TagNamePattern + `)>`)
	selfClosingRe  = regexp.MustCompile(`<(` + TagNamePattern + `)` + SpacePattern + `*/>`)
	spaceRunRe     = regexp.MustCompile(SpacePattern + `+`)
)

// RemoveEmptyElements deletes attribute-less element pairs with empty or
// whitespace-only content until a pass changes nothing or MaxEmptyPasses
// is reached. Removing "<p></p>" from "<div><p></p></div>" exposes the
// empty div to the next pass.
func RemoveEmptyElements(s string) string {
	for range MaxEmptyPasses {
		next := removeEmptyPairs(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func removeEmptyPairs(s string) string {
	matches := emptyElementRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		open, closing := s[m[2]:m[3]], s[m[4]:m[5]]
		if !strings.EqualFold(open, closing) {
			continue
		}
		b.WriteString(s[last:m[0]])
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// NormalizeSelfClosing rewrites "<br/>" and "<br />" to "<br>".
func NormalizeSelfClosing(s string) string {
	return selfClosingRe.ReplaceAllString(s, "<$1>")
}

// Finalize runs the post-processing shared by every engine: empty-element
// pruning when enabled, self-closing normalization and a final trim.
func Finalize(s string, opts Options) string {
	if opts.RemoveEmpty {
		s = RemoveEmptyElements(s)
	}
	s = NormalizeSelfClosing(s)
	return strings.TrimSpace(s)
}

// CollapseSpace replaces every whitespace run with a single space and trims
// both ends.
func CollapseSpace(s string) string {
	return strings.Trim(spaceRunRe.ReplaceAllString(s, " "), " ")
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
