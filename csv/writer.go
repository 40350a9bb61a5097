package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/fwojciec/urldoc"
)

// Ensure RecordWriter implements urldoc.RecordWriter at compile time.
var _ urldoc.RecordWriter = (*RecordWriter)(nil)

// contentHeader is the header of the content table. The leading empty
// column holds the 0-based row index.
var contentHeader = []string{"", "name", "ext", "url", "text"}

// RecordWriter writes records to a CSV file, replacing any existing file.
type RecordWriter struct {
	Path string
}

// WriteRecords writes the header and one row per record. An empty slice
// still produces a file containing the header.
func (w *RecordWriter) WriteRecords(ctx context.Context, records []*urldoc.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create content table: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(contentHeader); err != nil {
		f.Close()
		return fmt.Errorf("write content header: %w", err)
	}
	for i, r := range records {
		row := []string{strconv.Itoa(i), r.Name, r.Ext, r.URL, r.Text}
		if err := cw.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write content row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush content table: %w", err)
	}

	return f.Close()
}
