package optimizer_test

import (
	"testing"

	"github.com/fwojciec/htmlrag"
	"github.com/fwojciec/htmlrag/mock"
	"github.com/fwojciec/htmlrag/optimizer"
	"github.com/stretchr/testify/assert"
)

func TestOptimizer_Dispatch(t *testing.T) {
	t.Parallel()

	newOptimizer := func(calls *[]string) *optimizer.Optimizer {
		return &optimizer.Optimizer{
			Patterns: &mock.Engine{OptimizeFn: func(html string, _ htmlrag.Options) string {
				*calls = append(*calls, "patterns")
				return html
			}},
			Structural: &mock.Engine{OptimizeFn: func(html string, _ htmlrag.Options) string {
				*calls = append(*calls, "structural")
				return html
			}},
		}
	}

	t.Run("uses pattern engine without inclusion list", func(t *testing.T) {
		t.Parallel()

		var calls []string
		o := newOptimizer(&calls)

		o.Optimize("<p>x</p>", htmlrag.NewOptions(htmlrag.WithExcludeTags("script")))

		assert.Equal(t, []string{"patterns"}, calls)
	})

	t.Run("uses structural engine with inclusion list", func(t *testing.T) {
		t.Parallel()

		var calls []string
		o := newOptimizer(&calls)

		o.Optimize("<p>x</p>", htmlrag.NewOptions(htmlrag.WithKeepTags("p")))

		assert.Equal(t, []string{"structural"}, calls)
	})

	t.Run("forced structural engine", func(t *testing.T) {
		t.Parallel()

		var calls []string
		o := newOptimizer(&calls)
		o.ForceStructural = true

		o.Optimize("<p>x</p>", htmlrag.DefaultOptions())

		assert.Equal(t, []string{"structural"}, calls)
	})

	t.Run("blank input bypasses both engines", func(t *testing.T) {
		t.Parallel()

		var calls []string
		o := newOptimizer(&calls)

		got := o.Optimize(" \n\t ", htmlrag.NewOptions(htmlrag.WithKeepTags("p")))

		assert.Empty(t, got)
		assert.Empty(t, calls)
	})
}

func TestOptimize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []htmlrag.Option
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace-only input",
			in:   "   \n\t  ",
			want: "",
		},
		{
			name: "nested empties collapse",
			in:   "<div><p><span></span></p></div><div>Content</div>",
			want: "<div>Content</div>",
		},
		{
			name: "whitespace normalization",
			in:   "<div>   Multiple   spaces   </div>",
			want: "<div>Multiple spaces</div>",
		},
		{
			name: "preserve whitespace",
			in:   "<div>   Multiple   spaces   </div>",
			opts: []htmlrag.Option{htmlrag.WithPreserveWhitespace(true)},
			want: "<div>   Multiple   spaces   </div>",
		},
		{
			name: "exclusion precedence",
			in:   "<div>Content</div><script>code</script><style>css</style>",
			opts: []htmlrag.Option{htmlrag.WithExcludeTags("script")},
			want: "<div>Content</div><script>code</script>",
		},
		{
			name: "attributes with exclusion",
			in:   `<div class="keep">Content</div><script>remove</script>`,
			opts: []htmlrag.Option{htmlrag.WithKeepAttributes(false), htmlrag.WithExcludeTags("script")},
			want: "<div>Content</div><script>remove</script>",
		},
		{
			name: "self-closing normalization",
			in:   `<br/><img src="x"/>`,
			want: "<br><img>",
		},
		{
			name: "inclusion list is absolute",
			in:   `<div>Content</div><p>Keep</p><span>Remove <b>me</b></span>`,
			opts: []htmlrag.Option{htmlrag.WithKeepTags("div", "p"), htmlrag.WithExcludeTags("span")},
			want: "<div>Content</div><p>Keep</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, optimizer.Optimize(tt.in, tt.opts...))
		})
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<!DOCTYPE html><html><head><meta charset="utf-8"><title>T</title></head><body><div id="x"> <p> a  b </p><p></p></div><!-- c --></body></html>`,
		`<ul class="list"><li>First item</li><li>Second item</li><li></li></ul>`,
		"<div/><p>x</p>",
		`<svg><path d="x"/><path d="y"/></svg>`,
		"<div><p>Unclosed tags<span>content</div><p>next",
		`<div class="a"> <widget/> <p>  a  b </p><br/><p></p></div>`,
	}
	optionSets := [][]htmlrag.Option{
		nil,
		{htmlrag.WithExcludeTags("script")},
		{htmlrag.WithRemoveEmpty(false)},
		{htmlrag.WithKeepTags("html", "body", "div", "p", "ul", "li")},
		{htmlrag.WithKeepTags("div", "p", "span", "svg", "path", "widget"), htmlrag.WithRemoveEmpty(false)},
	}

	for _, in := range inputs {
		for _, opts := range optionSets {
			once := optimizer.Optimize(in, opts...)
			twice := optimizer.Optimize(once, opts...)

			assert.Equal(t, once, twice, "input %q", in)
			assert.NotContains(t, once, "<!--")
			assert.NotContains(t, once, `="`)
		}
	}
}
