// Package htmltomarkdown implements urldoc.TextExtractor by rendering HTML
// documents as Markdown with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/fs"
)

// Ensure TextExtractor implements urldoc.TextExtractor at compile time.
var _ urldoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor converts stored HTML documents to Markdown. Script, style
// and head content are dropped by the converter's base plugin.
type TextExtractor struct {
	conv   *converter.Converter
	filter urldoc.ContentFilter
}

// NewTextExtractor creates a new TextExtractor. A non-nil filter narrows
// documents to their main content before conversion.
func NewTextExtractor(filter urldoc.ContentFilter) *TextExtractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &TextExtractor{conv: conv, filter: filter}
}

// ExtractText reads the HTML file at path and returns it as Markdown.
func (e *TextExtractor) ExtractText(path string, ct urldoc.ContentType) (*urldoc.ExtractResult, error) {
	if ct != urldoc.ContentTypeHTML {
		return nil, urldoc.Errorf(urldoc.EINVALID, "unsupported content type %q", ct)
	}

	html, err := fs.ReadHTMLFile(path)
	if err != nil {
		return nil, err
	}

	result := &urldoc.ExtractResult{Pages: 1}
	if strings.TrimSpace(html) == "" {
		return result, nil
	}

	if e.filter != nil {
		filtered, err := e.filter.Filter(html)
		if err != nil {
			result.PageErrors = append(result.PageErrors, urldoc.PageError{Page: 0, Err: err})
		} else {
			html = filtered
		}
	}

	md, err := e.conv.ConvertString(html)
	if err != nil {
		return nil, err
	}
	result.Text = strings.TrimSpace(md)
	return result, nil
}
