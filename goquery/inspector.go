// Package goquery profiles documents using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmlrag"
)

// Ensure Inspector implements htmlrag.Inspector.
var _ htmlrag.Inspector = (*Inspector)(nil)

// invisibleSelector matches elements whose content is never rendered as text.
const invisibleSelector = "script, style, noscript, template"

// Inspector computes document profiles with goquery.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses html and summarizes it. The html, head and body wrappers
// the parser adds to fragments are not counted as elements.
func (i *Inspector) Inspect(html string) (*htmlrag.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, htmlrag.Errorf(htmlrag.EINVALID, "failed to parse HTML: %v", err)
	}

	p := &htmlrag.Profile{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Bytes: len(html),
	}

	elements := doc.Find("head *, body *")
	p.Elements = elements.Length()
	elements.Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			p.Attributes += len(n.Attr)
		}
	})

	body := doc.Find("body")
	body.Find(invisibleSelector).Remove()
	p.TextBytes = len(htmlrag.CollapseSpace(body.Text()))

	return p, nil
}
