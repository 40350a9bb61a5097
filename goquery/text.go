package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/fs"
)

// Ensure TextExtractor implements urldoc.TextExtractor at compile time.
var _ urldoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts normalized plain text from stored HTML documents.
type TextExtractor struct {
	filter urldoc.ContentFilter
}

// Option configures a TextExtractor.
type Option func(*TextExtractor)

// WithContentFilter narrows documents to their main content before text
// extraction. If the filter fails, the whole document is used.
func WithContentFilter(f urldoc.ContentFilter) Option {
	return func(e *TextExtractor) {
		e.filter = f
	}
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor(opts ...Option) *TextExtractor {
	e := &TextExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText reads the HTML file at path and returns its visible text.
func (e *TextExtractor) ExtractText(path string, ct urldoc.ContentType) (*urldoc.ExtractResult, error) {
	if ct != urldoc.ContentTypeHTML {
		return nil, urldoc.Errorf(urldoc.EINVALID, "unsupported content type %q", ct)
	}

	html, err := fs.ReadHTMLFile(path)
	if err != nil {
		return nil, err
	}

	result := &urldoc.ExtractResult{Pages: 1}
	if e.filter != nil {
		filtered, err := e.filter.Filter(html)
		if err != nil {
			result.PageErrors = append(result.PageErrors, urldoc.PageError{Page: 0, Err: err})
		} else {
			html = filtered
		}
	}

	result.Text, err = Text(html)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Text returns the text content of an HTML document with script and style
// elements removed, normalized by NormalizeText.
func Text(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", urldoc.Errorf(urldoc.EINVALID, "failed to parse HTML: %v", err)
	}

	// Removed before reading text so their source never leaks into it.
	doc.Find("script, style").Remove()

	return NormalizeText(doc.Text()), nil
}

// NormalizeText trims every line, breaks lines on double spaces (merged
// headlines), drops empty chunks and joins the rest with newlines.
func NormalizeText(text string) string {
	var chunks []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		for _, chunk := range strings.Split(strings.TrimSpace(line), "  ") {
			if chunk = strings.TrimSpace(chunk); chunk != "" {
				chunks = append(chunks, chunk)
			}
		}
	}
	return strings.Join(chunks, "\n")
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
