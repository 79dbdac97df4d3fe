package mcpfinder

// DiscoveredSet maps a record name to the server definition discovered
// under that name on a single page. Definition bodies are normally
// mappings (command, args, env, ...); the command-phrase strategy yields
// ordered token lists instead.
type DiscoveredSet map[string]any

// Extractor extracts server definitions from a fetched page.
// An empty set means "nothing relevant on this page", not an error.
type Extractor interface {
	Extract(page *Page) (DiscoveredSet, error)
}

// LooksLikeServerDef reports whether v has the shape of a server
// definition: a mapping whose command is a string or a list, or whose
// args is a list.
func LooksLikeServerDef(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	switch m["command"].(type) {
	case string, []any:
		return true
	}
	_, ok = m["args"].([]any)
	return ok
}
