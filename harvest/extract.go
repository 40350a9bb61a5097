package harvest

import "github.com/fwojciec/urldoc"

// Ensure Extractor implements urldoc.TextExtractor at compile time.
var _ urldoc.TextExtractor = (*Extractor)(nil)

// Extractor routes each document to the extractor for its content type.
type Extractor struct {
	HTML urldoc.TextExtractor
	PDF  urldoc.TextExtractor
}

// ExtractText delegates to PDF for ContentTypePDF and to HTML otherwise.
func (e *Extractor) ExtractText(path string, ct urldoc.ContentType) (*urldoc.ExtractResult, error) {
	next := e.HTML
	if ct == urldoc.ContentTypePDF {
		next = e.PDF
	}
	if next == nil {
		return nil, urldoc.Errorf(urldoc.EINVALID, "no extractor for content type %q", ct)
	}
	return next.ExtractText(path, ct)
}
