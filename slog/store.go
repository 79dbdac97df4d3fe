package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/lksrz/mcpfinder"
)

// Ensure LoggingStore implements mcpfinder.CollectionStore.
var _ mcpfinder.CollectionStore = (*LoggingStore)(nil)

// LoggingStore wraps a CollectionStore with structured logging.
type LoggingStore struct {
	next   mcpfinder.CollectionStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next mcpfinder.CollectionStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Load(ctx context.Context) (entries []*mcpfinder.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("collection load",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, entries []*mcpfinder.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("collection save",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, entries)
}
