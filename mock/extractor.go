package mock

import (
	"github.com/lksrz/mcpfinder"
)

var _ mcpfinder.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mcpfinder.Extractor.
type Extractor struct {
	ExtractFn func(page *mcpfinder.Page) (mcpfinder.DiscoveredSet, error)
}

func (e *Extractor) Extract(page *mcpfinder.Page) (mcpfinder.DiscoveredSet, error) {
	return e.ExtractFn(page)
}
