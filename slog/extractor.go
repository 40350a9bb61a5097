package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/urldoc"
)

// Ensure LoggingTextExtractor implements urldoc.TextExtractor.
var _ urldoc.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with logging. Failed
// extractions and failed pages are logged as warnings, since callers
// keep the record and continue.
type LoggingTextExtractor struct {
	next   urldoc.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next urldoc.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the operation.
func (e *LoggingTextExtractor) ExtractText(path string, ct urldoc.ContentType) (result *urldoc.ExtractResult, err error) {
	begin := time.Now()
	result, err = e.next.ExtractText(path, ct)
	if err != nil {
		e.logger.Warn("text extraction failed",
			"path", path,
			"content_type", string(ct),
			"duration", time.Since(begin),
			"err", err,
		)
		return result, err
	}
	if result == nil {
		return nil, nil
	}

	for _, pe := range result.PageErrors {
		e.logger.Warn("page skipped",
			"path", path,
			"page", pe.Page,
			"err", pe.Err,
		)
	}
	e.logger.Debug("extract text",
		"path", path,
		"content_type", string(ct),
		"pages", result.Pages,
		"chars", len(result.Text),
		"duration", time.Since(begin),
	)
	return result, nil
}
