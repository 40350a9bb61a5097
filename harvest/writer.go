package harvest

import (
	"context"

	"github.com/fwojciec/urldoc"
)

// Ensure MultiWriter implements urldoc.RecordWriter at compile time.
var _ urldoc.RecordWriter = (MultiWriter)(nil)

// MultiWriter writes records to each writer in turn, stopping at the
// first error.
type MultiWriter []urldoc.RecordWriter

// WriteRecords implements urldoc.RecordWriter.
func (m MultiWriter) WriteRecords(ctx context.Context, records []*urldoc.Record) error {
	for _, w := range m {
		if err := w.WriteRecords(ctx, records); err != nil {
			return err
		}
	}
	return nil
}
