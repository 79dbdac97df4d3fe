package extract

import "strings"

// findBalanced locates the smallest depth-balanced substring that starts
// at the first occurrence of open at or after start. Only the given
// delimiter pair is counted; delimiters inside quoted string literals
// are not special-cased, so callers must validate the result with the
// tolerant parser, which rejects false-balance carve-outs.
func findBalanced(text string, start int, open, close byte) (string, bool) {
	if start < 0 || start > len(text) {
		return "", false
	}
	rel := strings.IndexByte(text[start:], open)
	if rel < 0 {
		return "", false
	}

	openIdx := start + rel
	depth := 0
	for i := openIdx; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[openIdx : i+1], true
			}
		}
	}
	return "", false // unbalanced
}
