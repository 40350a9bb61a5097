// Package csv reads the input URL table and writes the content table.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/urldoc"
)

// Ensure URLReader implements urldoc.URLReader at compile time.
var _ urldoc.URLReader = (*URLReader)(nil)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// URLReader reads URLs from one column of a CSV file with a header row.
type URLReader struct {
	Path string
}

// ReadURLs returns the value of column for every data row. Empty cells are
// kept so that each input row maps to exactly one entry.
func (r *URLReader) ReadURLs(ctx context.Context, column string) ([]urldoc.URLEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open input table: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, urldoc.Errorf(urldoc.EINVALID, "input table %s is empty", r.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	idx := columnIndex(header, column)
	if idx < 0 {
		return nil, urldoc.Errorf(urldoc.EINVALID, "column %q not found; available columns: %s",
			column, strings.Join(header, ", "))
	}

	var entries []urldoc.URLEntry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input table: %w", err)
		}

		var value string
		if idx < len(rec) {
			value = rec[idx]
		}
		entries = append(entries, urldoc.URLEntry{Row: len(entries) + 1, URL: value})
	}
	return entries, nil
}

func columnIndex(header []string, column string) int {
	for i, name := range header {
		if name == column {
			return i
		}
	}
	return -1
}
