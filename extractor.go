package urldoc

import "fmt"

// ContentType classifies a fetched resource for text extraction.
type ContentType string

// ContentType constants. The values double as file extensions.
const (
	ContentTypeHTML ContentType = ".html"
	ContentTypePDF  ContentType = ".pdf"
)

// ContentTypeFromExt returns ContentTypePDF when ext is exactly ".pdf"
// and ContentTypeHTML for everything else.
func ContentTypeFromExt(ext string) ContentType {
	if ext == string(ContentTypePDF) {
		return ContentTypePDF
	}
	return ContentTypeHTML
}

// PageError records a page whose text could not be extracted.
// HTML documents report filter failures as page 0.
type PageError struct {
	Page int
	Err  error
}

func (e PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e PageError) Unwrap() error {
	return e.Err
}

// ExtractResult holds the text extracted from a stored resource.
type ExtractResult struct {
	Text string

	// Pages is the number of pages in the source, or 1 for HTML.
	Pages int

	// PageErrors lists pages omitted from Text.
	PageErrors []PageError
}

// TextExtractor converts a stored resource into normalized plain text.
type TextExtractor interface {
	// ExtractText reads the file at path and returns its text.
	// A returned error means no text could be extracted at all; partial
	// failures are reported through ExtractResult.PageErrors.
	ExtractText(path string, ct ContentType) (*ExtractResult, error)
}

// ContentFilter narrows an HTML document down to its main content,
// removing navigation, footers and similar boilerplate.
type ContentFilter interface {
	Filter(html string) (string, error)
}
