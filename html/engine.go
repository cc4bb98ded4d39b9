package html

import "github.com/fwojciec/htmlrag"

// Ensure Engine implements htmlrag.Engine at compile time.
var _ htmlrag.Engine = (*Engine)(nil)

// Engine optimizes documents by rebuilding their element tree. It is the
// only engine that honors Options.KeepTags.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Optimize parses s, rebuilds the tree depth-first and serializes the
// result through the shared post-processing.
func (e *Engine) Optimize(s string, opts htmlrag.Options) string {
	if htmlrag.IsBlank(s) {
		return ""
	}

	w := &walker{opts: opts}
	nodes := w.rebuild(Parse(s))

	// The text post-pass catches empties the tree could not see, such as
	// pairs left by unclosed markup.
	return htmlrag.Finalize(Render(nodes), opts)
}

// walker never mutates the parsed tree; each level produces a new child
// slice from a pass over the original one.
type walker struct {
	opts htmlrag.Options
}

func (w *walker) rebuild(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if kept := w.visit(n); kept != nil {
			out = append(out, kept)
		}
	}
	return out
}

func (w *walker) visit(n *Node) *Node {
	switch n.Type {
	case CommentNode:
		if w.opts.RemoveComments {
			return nil
		}
		return n
	case TextNode:
		return w.visitText(n)
	}
	return w.visitElement(n)
}

func (w *walker) visitText(n *Node) *Node {
	if !w.opts.NormalizesWhitespace() {
		return n
	}
	text := htmlrag.CollapseSpace(n.Data)
	if text == "" && w.opts.RemoveEmpty {
		return nil
	}
	return &Node{Type: TextNode, Data: text}
}

func (w *walker) visitElement(n *Node) *Node {
	// The inclusion list is checked first and nothing overrides it.
	if w.opts.KeepTags.Len() > 0 && !w.opts.KeepTags.Has(n.Tag) {
		return nil
	}
	if w.removedByName(n.Tag) {
		return nil
	}

	el := &Node{Type: ElementNode, Tag: n.Tag, Leaf: n.Leaf}
	if w.opts.KeepAttributes || w.opts.ExcludeTags.Has(n.Tag) {
		el.Attrs = n.Attrs
	}
	el.Children = w.rebuild(n.Children)

	// Children are final at this point, so emptiness is judged post-order.
	if w.opts.RemoveEmpty && !el.Leaf && isBlank(el.Children) {
		return nil
	}
	return el
}

// removedByName reports whether tag is one of the always-stripped tags and
// has not been exempted, either through ExcludeTags or by naming it in
// KeepTags.
func (w *walker) removedByName(tag string) bool {
	return htmlrag.RemovableTags.Has(tag) &&
		!w.opts.ExcludeTags.Has(tag) &&
		!w.opts.KeepTags.Has(tag)
}

func isBlank(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Type != TextNode || !htmlrag.IsBlank(n.Data) {
			return false
		}
	}
	return true
}
