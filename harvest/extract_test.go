package harvest_test

import (
	"testing"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/harvest"
	"github.com/fwojciec/urldoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	named := func(name string) *mock.TextExtractor {
		return &mock.TextExtractor{
			ExtractTextFn: func(_ string, _ urldoc.ContentType) (*urldoc.ExtractResult, error) {
				return &urldoc.ExtractResult{Text: name}, nil
			},
		}
	}

	t.Run("routes pdf to the pdf extractor", func(t *testing.T) {
		t.Parallel()

		e := &harvest.Extractor{HTML: named("html"), PDF: named("pdf")}

		result, err := e.ExtractText("doc.pdf", urldoc.ContentTypePDF)

		require.NoError(t, err)
		assert.Equal(t, "pdf", result.Text)
	})

	t.Run("routes html to the html extractor", func(t *testing.T) {
		t.Parallel()

		e := &harvest.Extractor{HTML: named("html"), PDF: named("pdf")}

		result, err := e.ExtractText("page.html", urldoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "html", result.Text)
	})

	t.Run("returns EINVALID when no extractor is configured", func(t *testing.T) {
		t.Parallel()

		e := &harvest.Extractor{HTML: named("html")}

		result, err := e.ExtractText("doc.pdf", urldoc.ContentTypePDF)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, urldoc.EINVALID, urldoc.ErrorCode(err))
	})
}
