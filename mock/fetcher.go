// Package mock provides function-field mock implementations of the
// root package interfaces for use in tests.
package mock

import (
	"context"

	"github.com/lksrz/mcpfinder"
)

var _ mcpfinder.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mcpfinder.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*mcpfinder.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*mcpfinder.Page, error) {
	return f.FetchFn(ctx, url)
}
