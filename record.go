package urldoc

import (
	"context"
	"time"
)

// URLEntry is a single row read from the input table.
type URLEntry struct {
	// Row is the 1-based position of the entry in the input table.
	Row int
	URL string
}

// Record is the result of successfully processing one URL.
// Name+Ext always names a file written under the output files directory.
type Record struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Filename returns the name of the stored file for the record.
func (r *Record) Filename() string {
	return r.Name + r.Ext
}

// URLReader reads the list of URLs to process.
type URLReader interface {
	// ReadURLs returns one entry per input row, in input order.
	// Returns EINVALID if column is not one of the table's columns; the
	// error message lists the available columns.
	ReadURLs(ctx context.Context, column string) ([]URLEntry, error)
}

// RecordWriter persists the collected records once a batch completes.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*Record) error
}

// DocumentProcessor turns one URL into a Record.
type DocumentProcessor interface {
	// Process fetches url, stores it under its derived filename and
	// extracts its text. A returned error means the URL must be skipped.
	Process(ctx context.Context, url string) (*Record, error)
}

// Run is one batch persisted by a record store.
type Run struct {
	ID        string
	CreatedAt time.Time
	// Records is the number of records written by the run.
	Records int
}

// StoredRecord is a Record as persisted by a record store.
type StoredRecord struct {
	Record
	RunID string
	// Position is the 0-based index of the record within its run.
	Position    int
	ContentHash string
}

// RecordFilter restricts a record query. Nil fields match everything.
type RecordFilter struct {
	RunID *string
	URL   *string

	Offset int
	Limit  int
}
