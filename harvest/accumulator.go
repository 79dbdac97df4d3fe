// Package harvest orchestrates the fetch, extract, and accumulate
// pipeline over a list of candidate URLs.
package harvest

import (
	"sort"

	"github.com/lksrz/mcpfinder"
)

// entryKey identifies an entry within a collection. Two discoveries of
// the same server name from different pages are distinct entries.
type entryKey struct {
	id        string
	sourceURL string
}

// Accumulator merges newly discovered server definitions into a
// collection, dropping duplicates by (id, source URL).
type Accumulator struct {
	entries []*mcpfinder.Entry
	index   map[entryKey]struct{}
}

// NewAccumulator creates an Accumulator seeded with existing entries.
func NewAccumulator(existing []*mcpfinder.Entry) *Accumulator {
	a := &Accumulator{
		entries: make([]*mcpfinder.Entry, 0, len(existing)),
		index:   make(map[entryKey]struct{}, len(existing)),
	}
	for _, e := range existing {
		k := entryKey{id: e.ID, sourceURL: e.SourceURL}
		if _, ok := a.index[k]; ok {
			continue
		}
		a.index[k] = struct{}{}
		a.entries = append(a.entries, e)
	}
	return a
}

// Merge folds a discovered set from a single page into the collection
// and reports how many entries were actually added. Names are visited
// in sorted order so repeated runs append in a stable order.
func (a *Accumulator) Merge(set mcpfinder.DiscoveredSet, sourceURL string) int {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	added := 0
	for _, name := range names {
		e := newEntry(name, sourceURL, set[name])
		k := entryKey{id: e.ID, sourceURL: e.SourceURL}
		if _, ok := a.index[k]; ok {
			continue
		}
		a.index[k] = struct{}{}
		a.entries = append(a.entries, e)
		added++
	}
	return added
}

// Entries returns the accumulated collection in insertion order.
func (a *Accumulator) Entries() []*mcpfinder.Entry {
	return a.entries
}

// Len returns the number of entries in the collection.
func (a *Accumulator) Len() int {
	return len(a.entries)
}

// newEntry builds an Entry from a discovered definition body. Bodies
// that are not mappings (the npx strategy produces command lists) are
// wrapped under a "command" field so every entry stays a flat object.
func newEntry(id, sourceURL string, body any) *mcpfinder.Entry {
	fields, ok := body.(map[string]any)
	if !ok {
		fields = map[string]any{"command": body}
	}
	return &mcpfinder.Entry{
		ID:        id,
		SourceURL: sourceURL,
		Fields:    fields,
	}
}
