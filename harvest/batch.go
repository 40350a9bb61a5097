// Package harvest orchestrates a batch: reading the URL list, processing
// each URL in order, and writing the collected records once at the end.
package harvest

import (
	"context"
	"fmt"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/bloom"
)

// collisionFPRate is the false positive rate of the filename filter.
const collisionFPRate = 0.001

// Batch processes every URL of an input table sequentially.
type Batch struct {
	Source    urldoc.URLReader
	Processor urldoc.DocumentProcessor
	Writer    urldoc.RecordWriter
}

// Result holds the outcome of a batch.
type Result struct {
	// Records holds one record per successfully processed URL, in the
	// order they completed.
	Records []*urldoc.Record
	Total   int
	Failed  int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Row       int
	Completed int
	Total     int
	URL       string
	Filename  string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted is sent once the URL list has been read.
	ProgressStarted ProgressType = iota
	// ProgressProcessing is sent before each row is processed.
	ProgressProcessing
	ProgressFailed
	// ProgressOverwrite is sent when a row's file name was already
	// produced earlier in the batch; the earlier file has been replaced.
	ProgressOverwrite
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run reads the URLs in column from Source, processes them in input order
// and writes the successful records through Writer.
//
// A read error (including a missing column) aborts the batch before any URL
// is fetched. Per-row failures are reported through progress and skipped.
// Records are written once, after the last row; if ctx is canceled first,
// nothing is written.
func (b *Batch) Run(ctx context.Context, column string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	entries, err := b.Source.ReadURLs(ctx, column)
	if err != nil {
		return nil, err
	}

	result := &Result{Total: len(entries)}
	progress(ProgressEvent{Type: ProgressStarted, Total: result.Total})

	seen := bloom.NewFilter(uint(len(entries)), collisionFPRate)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		event := ProgressEvent{
			Row:       entry.Row,
			Completed: i + 1,
			Total:     result.Total,
			URL:       entry.URL,
		}

		event.Type = ProgressProcessing
		progress(event)

		record, err := b.process(ctx, entry.URL)
		if err != nil {
			result.Failed++
			event.Type, event.Error = ProgressFailed, err
			progress(event)
			continue
		}

		if seen.TestAndAdd(record.Filename()) {
			event.Type, event.Filename = ProgressOverwrite, record.Filename()
			progress(event)
		}
		result.Records = append(result.Records, record)
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if b.Writer != nil {
		if err := b.Writer.WriteRecords(ctx, result.Records); err != nil {
			return result, fmt.Errorf("write records: %w", err)
		}
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: result.Total, Total: result.Total})
	return result, nil
}

// process runs the processor for one row, turning a panic into an error
// so one bad URL cannot abort the batch.
func (b *Batch) process(ctx context.Context, url string) (record *urldoc.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			record, err = nil, fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	record, err = b.Processor.Process(ctx, url)
	if err == nil && record == nil {
		err = urldoc.Errorf(urldoc.EINTERNAL, "no record produced for %s", url)
	}
	return record, err
}
