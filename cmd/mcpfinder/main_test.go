package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Run("no arguments shows help and errors", func(t *testing.T) {
		stdout, _, err := runCLI(t)

		require.Error(t, err)
		assert.Contains(t, stdout, "mcpfinder")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Harvest MCP server definitions")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		_, _, err := runCLI(t, "frobnicate")

		require.Error(t, err)
	})
}

func TestRunCommand(t *testing.T) {
	t.Run("harvests a JSON page into the collection file", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mcpServers": {"weather": {"command": "python", "args": ["weather.py"]}}}`))
		}))
		defer srv.Close()

		output := filepath.Join(t.TempDir(), "servers.json")
		stdout, _, err := runCLI(t, "run", "--output", output, "--no-retry", srv.URL)

		require.NoError(t, err)
		assert.Contains(t, stdout, "1 contributed 1 new entries")

		data, err := os.ReadFile(output)
		require.NoError(t, err)

		var entries []map[string]any
		require.NoError(t, json.Unmarshal(data, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "weather", entries[0]["id"])
		assert.Equal(t, srv.URL, entries[0]["source_url"])
		assert.Equal(t, "python", entries[0]["command"])
	})

	t.Run("second run over the same url adds nothing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mcpServers": {"weather": {"command": "python"}}}`))
		}))
		defer srv.Close()

		output := filepath.Join(t.TempDir(), "servers.json")
		_, _, err := runCLI(t, "run", "--output", output, "--no-retry", srv.URL)
		require.NoError(t, err)

		stdout, _, err := runCLI(t, "run", "--output", output, "--no-retry", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Checked 0 URLs")
	})

	t.Run("errors when no url source is given", func(t *testing.T) {
		_, _, err := runCLI(t, "run")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no URLs to process")
	})

	t.Run("stores in sqlite when a database path is given", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mcpServers": {"fetch": {"command": "npx"}}}`))
		}))
		defer srv.Close()

		dbPath := filepath.Join(t.TempDir(), "servers.db")
		_, _, err := runCLI(t, "run", "--db", dbPath, "--no-retry", srv.URL)
		require.NoError(t, err)

		stdout, _, err := runCLI(t, "list", "--db", dbPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "fetch")
		assert.Contains(t, stdout, srv.URL)
	})
}

func TestListCommand(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "servers.json")
		stdout, _, err := runCLI(t, "list", "--output", output)

		require.NoError(t, err)
		assert.Contains(t, stdout, "No entries found")
	})

	t.Run("full output includes definition fields", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "servers.json")
		entries := `[{"command": "python", "id": "weather", "source_url": "https://a.test"}]`
		require.NoError(t, os.WriteFile(output, []byte(entries), 0644))

		stdout, _, err := runCLI(t, "list", "--output", output, "--full")

		require.NoError(t, err)
		assert.Contains(t, stdout, `"command": "python"`)
		assert.Contains(t, stdout, `"id": "weather"`)
	})
}

func TestURLsCommand(t *testing.T) {
	t.Run("prints urls found in a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "links.txt")
		content := "see https://example.com/a and https://example.com/b plus https://example.com/icon.png"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		stdout, _, err := runCLI(t, "urls", path)

		require.NoError(t, err)
		assert.Contains(t, stdout, "https://example.com/a")
		assert.Contains(t, stdout, "https://example.com/b")
		assert.NotContains(t, stdout, "icon.png")
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, _, err := runCLI(t, "urls", filepath.Join(t.TempDir(), "nope.txt"))

		require.Error(t, err)
	})
}
