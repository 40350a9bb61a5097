package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Filter implements urldoc.ContentFilter at compile time.
var _ urldoc.ContentFilter = (*trafilatura.Filter)(nil)

func TestFilter_Filter(t *testing.T) {
	t.Parallel()

	t.Run("keeps main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>City council approves budget</h1>
<p>The council voted on Tuesday to approve the annual budget after a long debate.</p>
<p>Spending on public transport will increase by ten percent next year.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		content, err := trafilatura.NewFilter().Filter(html)

		require.NoError(t, err)
		assert.Contains(t, content, "approve the annual budget")
		assert.Contains(t, content, "public transport")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want to keep for analysis.</p>
</main>
</body>
</html>`

		content, err := trafilatura.NewFilter().Filter(html)

		require.NoError(t, err)
		assert.Contains(t, content, "actual content we want")
		assert.NotContains(t, content, "main-nav")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewFilter().Filter("  ")

		require.Error(t, err)
		assert.Equal(t, urldoc.EINVALID, urldoc.ErrorCode(err))
	})
}
