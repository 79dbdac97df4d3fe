package extract

import (
	"encoding/json"
	"regexp"

	"github.com/kaptinlin/jsonrepair"
)

var (
	lineCommentRE   = regexp.MustCompile(`(?m)//.*$`)
	blockCommentRE  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	ellipsisRE      = regexp.MustCompile(`\.{3}`)
	trailingCommaRE = regexp.MustCompile(`,\s*([}\]])`)
)

// parseStrict parses text as strict JSON.
func parseStrict(text string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// parseTolerant parses a JSON fragment with progressively more
// permissive rules: strict as-is; then with // and /* */ comments,
// ellipsis tokens, and trailing commas stripped; then after jsonrepair.
// Pages routinely embed illustrative snippets with exactly these
// defects, and a strict-only parse would discard most real matches.
// The boolean reports success; an unusable fragment is not an error.
func parseTolerant(text string) (any, bool) {
	if v, ok := parseStrict(text); ok {
		return v, true
	}

	cleaned := lineCommentRE.ReplaceAllString(text, "")
	cleaned = blockCommentRE.ReplaceAllString(cleaned, "")
	cleaned = ellipsisRE.ReplaceAllString(cleaned, "")
	cleaned = trailingCommaRE.ReplaceAllString(cleaned, "$1")
	if v, ok := parseStrict(cleaned); ok {
		return v, true
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, false
	}
	return parseStrict(repaired)
}
