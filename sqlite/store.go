package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lksrz/mcpfinder"
)

// Compile-time interface verification.
var _ mcpfinder.CollectionStore = (*Store)(nil)

// Store implements mcpfinder.CollectionStore using SQLite. Save follows
// the collection contract and replaces the whole stored collection;
// positions preserve collection order across loads.
type Store struct {
	db *DB
}

// NewStore creates a new Store on an opened DB.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Load reads the collection ordered by position.
func (s *Store) Load(ctx context.Context) ([]*mcpfinder.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, source_url, fields
		FROM entries
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*mcpfinder.Entry{}
	for rows.Next() {
		var e mcpfinder.Entry
		var fields string
		if err := rows.Scan(&e.ID, &e.SourceURL, &fields); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(fields), &e.Fields); err != nil {
			return nil, mcpfinder.Errorf(mcpfinder.EINTERNAL, "decoding fields for %q: %v", e.ID, err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Save replaces the stored collection with entries, in one transaction.
func (s *Store) Save(ctx context.Context, entries []*mcpfinder.Entry) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		fields, err := json.Marshal(e.Fields)
		if err != nil {
			return mcpfinder.Errorf(mcpfinder.EINTERNAL, "encoding fields for %q: %v", e.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO entries (id, record_id, source_url, fields, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), e.ID, e.SourceURL, string(fields), i, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
