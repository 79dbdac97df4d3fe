package mcpfinder

import (
	"context"
	"encoding/json"
)

// Entry is one persisted server definition, tagged with the record name
// it was discovered under and the URL it came from. Entries are never
// mutated after creation; they leave the collection only by external
// edits of the stored file.
type Entry struct {
	ID        string
	SourceURL string

	// Fields holds the remaining definition fields (command, args, env,
	// and whatever else the page carried).
	Fields map[string]any
}

// Validate returns an error if the entry is missing identity fields.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "entry id required")
	}
	if e.SourceURL == "" {
		return Errorf(EINVALID, "entry source URL required")
	}
	return nil
}

// MarshalJSON serializes the entry flat: definition fields at the top
// level beside id and source_url, matching the stored collection format.
func (e *Entry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		m[k] = v
	}
	m["id"] = e.ID
	m["source_url"] = e.SourceURL
	return json.Marshal(m)
}

// UnmarshalJSON splits id and source_url back out of the flat object.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	id, _ := m["id"].(string)
	src, _ := m["source_url"].(string)
	delete(m, "id")
	delete(m, "source_url")
	e.ID = id
	e.SourceURL = src
	e.Fields = m
	return nil
}

// CollectionStore persists the full entry collection. Save rewrites the
// whole collection; partial updates are not part of the contract.
type CollectionStore interface {
	// Load reads the stored collection. A missing store is an empty
	// collection, not an error.
	Load(ctx context.Context) ([]*Entry, error)

	// Save replaces the stored collection with entries.
	Save(ctx context.Context, entries []*Entry) error
}

// ProcessedURLs derives the set of source URLs that have already
// contributed entries to the collection. A URL in this set is never
// re-fetched within a run.
func ProcessedURLs(entries []*Entry) map[string]bool {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.SourceURL != "" {
			seen[e.SourceURL] = true
		}
	}
	return seen
}
