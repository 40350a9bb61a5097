package harvest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/urldoc"
)

// Ensure Processor implements urldoc.DocumentProcessor at compile time.
var _ urldoc.DocumentProcessor = (*Processor)(nil)

// Processor handles a single URL: it derives the stored filename, fetches
// the resource into FilesDir and extracts its text.
type Processor struct {
	Fetcher   urldoc.Fetcher
	Extractor urldoc.TextExtractor
	FilesDir  string
}

// Process fetches url and returns its Record. Fetch failures are returned
// as errors. Extraction failures are not: the record is still produced,
// with whatever text could be extracted.
//
// Content type comes from the URL suffix only, so a PDF served from a path
// without ".pdf" is stored and extracted as HTML.
func (p *Processor) Process(ctx context.Context, url string) (*urldoc.Record, error) {
	url = strings.TrimSpace(url)

	target, err := urldoc.ParseTarget(url)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(p.FilesDir, target.Filename())
	if _, err := p.Fetcher.Fetch(ctx, url, path); err != nil {
		return nil, fmt.Errorf("processing %s: %w", target.Name, err)
	}

	return &urldoc.Record{
		Name: target.Name,
		Ext:  target.Ext,
		URL:  url,
		Text: p.extract(path, target.ContentType()),
	}, nil
}

func (p *Processor) extract(path string, ct urldoc.ContentType) string {
	result, err := p.Extractor.ExtractText(path, ct)
	if err != nil || result == nil {
		return ""
	}
	return result.Text
}
