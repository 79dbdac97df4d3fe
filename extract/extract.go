// Package extract implements the multi-strategy cascade that locates MCP
// server definitions in fetched pages. Strategies are tried in a fixed
// priority order and the first one producing a non-empty result wins:
// direct JSON body, embedded script tags, fenced code blocks, free-text
// key search, npx command phrases.
package extract

import (
	"log/slog"

	"github.com/lksrz/mcpfinder"
)

// ServersKey is the designated collection key pages use to wrap a
// mapping of server definitions.
const ServersKey = "mcpServers"

// strategy is one extraction heuristic. attempt returns an empty set
// when the heuristic finds nothing usable; failures inside a strategy
// are logged, never propagated.
type strategy interface {
	name() string
	attempt(page *mcpfinder.Page) mcpfinder.DiscoveredSet
}

// Ensure Cascade implements mcpfinder.Extractor at compile time.
var _ mcpfinder.Extractor = (*Cascade)(nil)

// Cascade runs the extraction strategies in priority order.
type Cascade struct {
	strategies []strategy
	logger     *slog.Logger
}

// Option configures a Cascade.
type Option func(*Cascade)

// WithLogger sets the logger used for strategy diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cascade) {
		c.logger = logger
	}
}

// NewCascade creates a Cascade with the full strategy list.
func NewCascade(opts ...Option) *Cascade {
	c := &Cascade{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.strategies = []strategy{
		&bodyStrategy{logger: c.logger},
		&scriptStrategy{logger: c.logger},
		newFenceStrategy(c.logger),
		&keyScanStrategy{logger: c.logger},
		&npxStrategy{logger: c.logger},
	}
	return c
}

// Extract runs the cascade over the page. An empty set signals "nothing
// relevant on this page", not an error.
func (c *Cascade) Extract(page *mcpfinder.Page) (mcpfinder.DiscoveredSet, error) {
	for _, s := range c.strategies {
		if set := s.attempt(page); len(set) > 0 {
			c.logger.Debug("extraction strategy matched",
				"strategy", s.name(),
				"url", page.URL,
				"records", len(set),
			)
			return set, nil
		}
	}
	return mcpfinder.DiscoveredSet{}, nil
}

// serversFrom applies the two mapping heuristics shared by the script
// and fence strategies: a designated-key wrapper, or a non-empty mapping
// that is itself entirely server definitions.
func serversFrom(v any) (mcpfinder.DiscoveredSet, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if inner, ok := m[ServersKey].(map[string]any); ok {
		return trimSet(inner), true
	}
	if len(m) == 0 {
		return nil, false
	}
	for _, val := range m {
		if !mcpfinder.LooksLikeServerDef(val) {
			return nil, false
		}
	}
	return trimSet(m), true
}

// trimSet whitespace-normalizes a mapping into a DiscoveredSet.
func trimSet(m map[string]any) mcpfinder.DiscoveredSet {
	return mcpfinder.DiscoveredSet(mcpfinder.Trim(m).(map[string]any))
}

// snippet truncates a fragment for log output.
func snippet(s string) string {
	const max = 100
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
