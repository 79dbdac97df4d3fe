package mock

import (
	"context"

	"github.com/lksrz/mcpfinder"
)

var _ mcpfinder.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of mcpfinder.URLSource.
type URLSource struct {
	URLsFn func(ctx context.Context) ([]string, error)
}

func (s *URLSource) URLs(ctx context.Context) ([]string, error) {
	return s.URLsFn(ctx)
}
