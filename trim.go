package mcpfinder

import "strings"

// Trim returns a copy of v with every string key and string value
// whitespace-trimmed, recursing depth-first through mappings and lists.
// Non-string scalars pass through unchanged. The input is never mutated,
// so results do not alias the structure they were discovered in.
func Trim(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[strings.TrimSpace(k)] = Trim(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Trim(item)
		}
		return out
	case string:
		return strings.TrimSpace(val)
	default:
		return v
	}
}
