package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where RecordWriter is expected
	var _ urldoc.RecordWriter = &mock.RecordWriter{}
}

func TestRecordWriter_WriteRecords(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordsFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*urldoc.Record
		w := &mock.RecordWriter{
			WriteRecordsFn: func(_ context.Context, records []*urldoc.Record) error {
				calledWith = records
				return nil
			},
		}

		records := []*urldoc.Record{{
			Name: "a",
			Ext:  ".html",
			URL:  "https://example.com/a.html",
			Text: "Test content",
		}}

		err := w.WriteRecords(context.Background(), records)

		require.NoError(t, err)
		assert.Equal(t, records, calledWith)
	})
}
