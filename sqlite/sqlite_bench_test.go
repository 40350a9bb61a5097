package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/sqlite"
	"github.com/stretchr/testify/require"
)

func benchRecords(n int) []*urldoc.Record {
	records := make([]*urldoc.Record, n)
	for i := range records {
		records[i] = &urldoc.Record{
			Name: fmt.Sprintf("page%d", i),
			Ext:  ".html",
			URL:  fmt.Sprintf("https://example.com/docs/page%d.html", i),
			Text: fmt.Sprintf("Page %d\nContent for page %d. Lorem ipsum dolor sit amet.", i, i),
		}
	}
	return records
}

// BenchmarkRecordStore_WriteRecords measures storing one run of records.
func BenchmarkRecordStore_WriteRecords(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("records_%d", n), func(b *testing.B) {
			db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
			require.NoError(b, db.Open())
			defer db.Close()

			store := sqlite.NewRecordStore(db)
			records := benchRecords(n)
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := store.WriteRecords(ctx, records); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
