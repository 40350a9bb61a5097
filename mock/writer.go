package mock

import (
	"context"

	"github.com/fwojciec/urldoc"
)

var _ urldoc.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of urldoc.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*urldoc.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*urldoc.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

var _ urldoc.URLReader = (*URLReader)(nil)

// URLReader is a mock implementation of urldoc.URLReader.
type URLReader struct {
	ReadURLsFn func(ctx context.Context, column string) ([]urldoc.URLEntry, error)
}

func (r *URLReader) ReadURLs(ctx context.Context, column string) ([]urldoc.URLEntry, error) {
	return r.ReadURLsFn(ctx, column)
}
