package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/urldoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ urldoc.RecordWriter = (*RecordStore)(nil)

// RecordStore persists each batch as a run with its records.
type RecordStore struct {
	db  *DB
	now func() time.Time
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(content)))
}

// WriteRecords stores records as a new run. Either every record of the
// run is stored or none is.
func (s *RecordStore) WriteRecords(ctx context.Context, records []*urldoc.Record) error {
	_, err := s.CreateRun(ctx, records)
	return err
}

// CreateRun stores records as a new run and returns it.
func (s *RecordStore) CreateRun(ctx context.Context, records []*urldoc.Record) (*urldoc.Run, error) {
	run := &urldoc.Run{
		ID:        uuid.New().String(),
		CreatedAt: s.now().UTC().Truncate(time.Second),
		Records:   len(records),
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, record_count, created_at)
		VALUES (?, ?, ?)
	`, run.ID, run.Records, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, position, name, ext, url, text, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, run.ID, i, r.Name, r.Ext, r.URL, r.Text, hashContent(r.Text)); err != nil {
			return nil, fmt.Errorf("failed to insert record %s: %w", r.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}
	return run, nil
}

// FindRunByID retrieves a run by ID.
func (s *RecordStore) FindRunByID(ctx context.Context, id string) (*urldoc.Run, error) {
	var run urldoc.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, record_count, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Records, &createdAt)

	if err == sql.ErrNoRows {
		return nil, urldoc.Errorf(urldoc.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &run, nil
}

// FindRecords retrieves stored records matching the filter, ordered by
// run and position.
func (s *RecordStore) FindRecords(ctx context.Context, filter urldoc.RecordFilter) ([]*urldoc.StoredRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT r.run_id, r.position, r.name, r.ext, r.url, r.text, r.content_hash
		FROM records r JOIN runs u ON u.id = r.run_id WHERE 1=1`)

	if filter.RunID != nil {
		query.WriteString(" AND r.run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND r.url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY u.created_at ASC, r.run_id ASC, r.position ASC")

	if filter.Offset > 0 && filter.Limit <= 0 {
		// SQLite requires LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*urldoc.StoredRecord
	for rows.Next() {
		var r urldoc.StoredRecord
		if err := rows.Scan(&r.RunID, &r.Position, &r.Name, &r.Ext, &r.URL, &r.Text, &r.ContentHash); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}
