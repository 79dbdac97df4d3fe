package mcpfinder_test

import (
	"encoding/json"
	"testing"

	"github.com/lksrz/mcpfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_MarshalJSON(t *testing.T) {
	t.Parallel()

	e := &mcpfinder.Entry{
		ID:        "weather",
		SourceURL: "https://example.com/servers.json",
		Fields:    map[string]any{"command": "python", "args": []any{"weather.py"}},
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "weather", m["id"])
	assert.Equal(t, "https://example.com/servers.json", m["source_url"])
	assert.Equal(t, "python", m["command"])
}

func TestEntry_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var e mcpfinder.Entry
	require.NoError(t, json.Unmarshal([]byte(`{"id":"fetch","source_url":"https://x.test","command":"npx"}`), &e))

	assert.Equal(t, "fetch", e.ID)
	assert.Equal(t, "https://x.test", e.SourceURL)
	assert.Equal(t, map[string]any{"command": "npx"}, e.Fields)
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	err := (&mcpfinder.Entry{SourceURL: "https://x.test"}).Validate()
	assert.Equal(t, mcpfinder.EINVALID, mcpfinder.ErrorCode(err))

	err = (&mcpfinder.Entry{ID: "weather"}).Validate()
	assert.Equal(t, mcpfinder.EINVALID, mcpfinder.ErrorCode(err))

	assert.NoError(t, (&mcpfinder.Entry{ID: "weather", SourceURL: "https://x.test"}).Validate())
}

func TestProcessedURLs(t *testing.T) {
	t.Parallel()

	entries := []*mcpfinder.Entry{
		{ID: "a", SourceURL: "https://one.test"},
		{ID: "b", SourceURL: "https://one.test"},
		{ID: "c", SourceURL: "https://two.test"},
		{ID: "d"},
	}

	seen := mcpfinder.ProcessedURLs(entries)

	assert.Equal(t, map[string]bool{
		"https://one.test": true,
		"https://two.test": true,
	}, seen)
}
