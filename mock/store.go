package mock

import (
	"context"

	"github.com/lksrz/mcpfinder"
)

var _ mcpfinder.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is a mock implementation of mcpfinder.CollectionStore.
type CollectionStore struct {
	LoadFn func(ctx context.Context) ([]*mcpfinder.Entry, error)
	SaveFn func(ctx context.Context, entries []*mcpfinder.Entry) error
}

func (s *CollectionStore) Load(ctx context.Context) ([]*mcpfinder.Entry, error) {
	return s.LoadFn(ctx)
}

func (s *CollectionStore) Save(ctx context.Context, entries []*mcpfinder.Entry) error {
	return s.SaveFn(ctx, entries)
}
