// Package slog provides logging decorators for urldoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urldoc"
)

// Ensure LoggingFetcher implements urldoc.Fetcher.
var _ urldoc.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   urldoc.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next urldoc.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url, dst string) (result *urldoc.FetchResult, err error) {
	defer func(begin time.Time) {
		var (
			bytes       int64
			status      int
			contentType string
		)
		if result != nil {
			bytes, status, contentType = result.Bytes, result.StatusCode, result.ContentType
		}
		f.logger.Debug("fetch",
			"url", url,
			"path", dst,
			"status", status,
			"content_type", contentType,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, dst)
}
