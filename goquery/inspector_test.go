package goquery_test

import (
	"testing"

	"github.com/fwojciec/htmlrag"
	"github.com/fwojciec/htmlrag/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Inspector implements htmlrag.Inspector at compile time.
var _ htmlrag.Inspector = (*goquery.Inspector)(nil)

func TestInspector_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("profiles a full document", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head>
	<title> Test Page </title>
	<meta charset="utf-8">
</head>
<body>
	<div class="main" id="content">
		<p>Hello   world</p>
		<script>var x = 1;</script>
	</div>
</body>
</html>`

		p, err := goquery.NewInspector().Inspect(html)

		require.NoError(t, err)
		assert.Equal(t, "Test Page", p.Title)
		assert.Equal(t, len(html), p.Bytes)
		assert.Equal(t, 5, p.Elements)
		assert.Equal(t, 3, p.Attributes)
		assert.Equal(t, len("Hello world"), p.TextBytes)
	})

	t.Run("does not count parser wrappers for fragments", func(t *testing.T) {
		t.Parallel()

		p, err := goquery.NewInspector().Inspect("<p>a</p><p>b</p>")

		require.NoError(t, err)
		assert.Equal(t, 2, p.Elements)
		assert.Equal(t, 0, p.Attributes)
		assert.Empty(t, p.Title)
		assert.Equal(t, len("ab"), p.TextBytes)
	})

	t.Run("ignores invisible text", func(t *testing.T) {
		t.Parallel()

		p, err := goquery.NewInspector().Inspect("<div>x<style>p{}</style><noscript>enable js</noscript><template>t</template></div>")

		require.NoError(t, err)
		assert.Equal(t, 1, p.TextBytes)
	})

	t.Run("profiles empty input", func(t *testing.T) {
		t.Parallel()

		p, err := goquery.NewInspector().Inspect("")

		require.NoError(t, err)
		assert.Equal(t, 0, p.Bytes)
		assert.Equal(t, 0, p.Elements)
		assert.Equal(t, 0, p.TextBytes)
	})

	t.Run("reports reduction between profiles", func(t *testing.T) {
		t.Parallel()

		in := `<div class="wrapper"><p class="text">Hello</p></div>`
		out := `<div><p>Hello</p></div>`
		i := goquery.NewInspector()

		before, err := i.Inspect(in)
		require.NoError(t, err)
		after, err := i.Inspect(out)
		require.NoError(t, err)

		assert.Equal(t, 2, before.Attributes)
		assert.Equal(t, 0, after.Attributes)
		assert.Equal(t, before.TextBytes, after.TextBytes)
		assert.InDelta(t, 1-float64(len(out))/float64(len(in)), before.Reduction(after), 1e-9)
	})
}
