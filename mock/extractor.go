package mock

import "github.com/fwojciec/urldoc"

var _ urldoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of urldoc.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(path string, ct urldoc.ContentType) (*urldoc.ExtractResult, error)
}

func (e *TextExtractor) ExtractText(path string, ct urldoc.ContentType) (*urldoc.ExtractResult, error) {
	return e.ExtractTextFn(path, ct)
}

var _ urldoc.ContentFilter = (*ContentFilter)(nil)

// ContentFilter is a mock implementation of urldoc.ContentFilter.
type ContentFilter struct {
	FilterFn func(html string) (string, error)
}

func (f *ContentFilter) Filter(html string) (string, error) {
	return f.FilterFn(html)
}
