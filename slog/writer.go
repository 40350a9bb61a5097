package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urldoc"
)

// Ensure LoggingRecordWriter implements urldoc.RecordWriter.
var _ urldoc.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   urldoc.RecordWriter
	name   string
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter. name identifies
// the destination in log lines, e.g. a file path.
func NewLoggingRecordWriter(next urldoc.RecordWriter, name string, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, name: name, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []*urldoc.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"dest", w.name,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}
