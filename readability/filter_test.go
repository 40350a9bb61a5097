package readability_test

import (
	"testing"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Filter implements urldoc.ContentFilter at compile time.
var _ urldoc.ContentFilter = (*readability.Filter)(nil)

func TestFilter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewFilter().Filter("")

	require.Error(t, err)
	assert.Equal(t, urldoc.EINVALID, urldoc.ErrorCode(err))
}

func TestFilter_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	content, err := readability.NewFilter().Filter(html)

	require.NoError(t, err)
	assert.Contains(t, content, "main article content")
	assert.NotContains(t, content, "Home Nav Link")
	assert.NotContains(t, content, "About Nav Link")
}
