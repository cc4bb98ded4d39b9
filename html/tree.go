// Package html implements the structural engine: documents are parsed into
// an element tree with golang.org/x/net/html's tokenizer, rebuilt
// depth-first under the optimization rules and serialized back.
package html

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeType identifies the kind of a Node.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

// Attribute is a single name/value pair of an element, in source order.
type Attribute struct {
	Key string
	Val string
}

// Node is an element, text or comment.
type Node struct {
	Type NodeType

	// Tag is the lowercased element name.
	Tag   string
	Attrs []Attribute

	// Leaf marks void elements, which cannot hold children. Other elements
	// written in self-closing form are parsed with no children.
	Leaf     bool
	Children []*Node

	// Data holds the source text of text and comment nodes, entities
	// left as written.
	Data string
}

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Parse builds a tree from s without inventing elements: no implicit
// html, head or body is added, end tags that close nothing are dropped and
// elements still open at the end are closed. Doctype declarations are
// discarded. The returned slice holds the top-level nodes.
func Parse(s string) []*Node {
	root := &Node{Type: ElementNode}
	stack := []*Node{root}
	top := func() *Node { return stack[len(stack)-1] }

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF, or a tokenizer limit; either way keep what was read.
			return root.Children

		case html.TextToken:
			appendChild(top(), &Node{Type: TextNode, Data: string(z.Raw())})

		case html.CommentToken:
			appendChild(top(), &Node{Type: CommentNode, Data: string(z.Raw())})

		case html.StartTagToken, html.SelfClosingTagToken:
			n := readElement(z)
			n.Leaf = voidElements[n.Tag]
			appendChild(top(), n)
			if !n.Leaf && tt == html.StartTagToken {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Tag == tag {
					stack = stack[:i]
					break
				}
			}

		case html.DoctypeToken:
		}
	}
}

func readElement(z *html.Tokenizer) *Node {
	name, hasAttr := z.TagName()
	n := &Node{Type: ElementNode, Tag: string(name)}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		n.Attrs = append(n.Attrs, Attribute{Key: string(key), Val: string(val)})
	}
	return n
}

func appendChild(parent, child *Node) {
	parent.Children = append(parent.Children, child)
}
