// Package fs provides the JSON-file collection store.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/lksrz/mcpfinder"
)

// Ensure Store implements mcpfinder.CollectionStore at compile time.
var _ mcpfinder.CollectionStore = (*Store)(nil)

// Store persists the collection as an indented JSON array at a fixed
// path. The whole file is rewritten on every save; a save whose
// serialized content hash matches the previous write is skipped.
// Writes are not crash-safe mid-write, which is acceptable for a
// manually operated batch tool.
type Store struct {
	path     string
	logger   *slog.Logger
	lastHash uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for load/save diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store writing to path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the collection file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection. A missing or empty file is an empty
// collection. An unreadable file is moved aside to <path>.corrupt and
// the collection starts empty; the old contents stay on disk instead
// of being silently overwritten by the next save.
func (s *Store) Load(ctx context.Context) ([]*mcpfinder.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*mcpfinder.Entry{}, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*mcpfinder.Entry{}, nil
	}

	var entries []*mcpfinder.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		backup := s.path + ".corrupt"
		s.logger.Warn("collection file is not a JSON array, starting empty",
			"path", s.path, "backup", backup, "error", err)
		if renameErr := os.Rename(s.path, backup); renameErr != nil {
			s.logger.Warn("could not move corrupt collection file aside",
				"path", s.path, "error", renameErr)
		}
		return []*mcpfinder.Entry{}, nil
	}
	return entries, nil
}

// Save rewrites the collection file with stable four-space indentation.
func (s *Store) Save(ctx context.Context, entries []*mcpfinder.Entry) error {
	if entries == nil {
		entries = []*mcpfinder.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return mcpfinder.Errorf(mcpfinder.EINTERNAL, "serializing collection: %v", err)
	}
	data = append(data, '\n')

	h := xxhash.Sum64(data)
	if h == s.lastHash {
		s.logger.Debug("collection unchanged, skipping write", "path", s.path)
		return nil
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return mcpfinder.Errorf(mcpfinder.EINTERNAL, "writing collection file %s: %v", s.path, err)
	}
	s.lastHash = h
	return nil
}
