package htmltomarkdown_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/htmltomarkdown"
	"github.com/fwojciec/urldoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure TextExtractor implements urldoc.TextExtractor at compile time.
var _ urldoc.TextExtractor = (*htmltomarkdown.TextExtractor)(nil)

func writeHTML(t *testing.T, html string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}

func TestTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("converts document structure", func(t *testing.T) {
		t.Parallel()

		path := writeHTML(t, `<html><head><title>Ignored</title></head><body>
<h1>Title</h1>
<p>Visit <a href="https://example.com">Example</a> for <strong>more</strong> info.</p>
<ul><li>First</li><li>Second</li></ul>
<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr></tbody>
</table>
</body></html>`)

		result, err := htmltomarkdown.NewTextExtractor(nil).ExtractText(path, urldoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "# Title")
		assert.Contains(t, result.Text, "[Example](https://example.com)")
		assert.Contains(t, result.Text, "**more**")
		assert.Contains(t, result.Text, "- First")
		assert.Contains(t, result.Text, "Alice")
		assert.Contains(t, result.Text, "|")
		assert.Equal(t, 1, result.Pages)
	})

	t.Run("drops script and style", func(t *testing.T) {
		t.Parallel()

		path := writeHTML(t, `<html><head><style>p { color: red; }</style></head><body>
<script>var secret = 1;</script>
<p>Visible text</p>
</body></html>`)

		result, err := htmltomarkdown.NewTextExtractor(nil).ExtractText(path, urldoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Visible text")
		assert.NotContains(t, result.Text, "secret")
		assert.NotContains(t, result.Text, "color: red")
	})

	t.Run("applies content filter", func(t *testing.T) {
		t.Parallel()

		path := writeHTML(t, `<p>Everything</p>`)
		filter := &mock.ContentFilter{
			FilterFn: func(html string) (string, error) {
				return "<h2>Only this</h2>", nil
			},
		}

		result, err := htmltomarkdown.NewTextExtractor(filter).ExtractText(path, urldoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "## Only this", result.Text)
	})

	t.Run("records filter failure and converts whole document", func(t *testing.T) {
		t.Parallel()

		path := writeHTML(t, `<p>Everything</p>`)
		filter := &mock.ContentFilter{
			FilterFn: func(html string) (string, error) {
				return "", errors.New("no main content")
			},
		}

		result, err := htmltomarkdown.NewTextExtractor(filter).ExtractText(path, urldoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "Everything", result.Text)
		assert.Len(t, result.PageErrors, 1)
	})

	t.Run("returns empty text for empty file", func(t *testing.T) {
		t.Parallel()

		path := writeHTML(t, "")

		result, err := htmltomarkdown.NewTextExtractor(nil).ExtractText(path, urldoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Empty(t, result.Text)
	})

	t.Run("rejects pdf content", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewTextExtractor(nil).ExtractText("doc.pdf", urldoc.ContentTypePDF)

		require.Error(t, err)
		assert.Equal(t, urldoc.EINVALID, urldoc.ErrorCode(err))
	})
}
