package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lksrz/mcpfinder"
)

// keyScanStrategy searches the plain-text rendering of the body for the
// quoted designated key and carves a brace-balanced candidate after each
// occurrence. A candidate that fails the tolerant parse does not stop
// the scan; the search continues past it.
type keyScanStrategy struct {
	logger *slog.Logger
}

func (s *keyScanStrategy) name() string { return "key-scan" }

func (s *keyScanStrategy) attempt(page *mcpfinder.Page) mcpfinder.DiscoveredSet {
	text := plainText(page, s.logger)
	token := `"` + ServersKey + `"`

	searchFrom := 0
	for {
		rel := strings.Index(text[searchFrom:], token)
		if rel < 0 {
			return nil
		}
		afterKey := searchFrom + rel + len(token)
		searchFrom = afterKey

		colon := strings.IndexByte(text[afterKey:], ':')
		if colon < 0 {
			continue
		}

		candidate, ok := findBalanced(text, afterKey+colon+1, '{', '}')
		if !ok {
			continue
		}
		v, ok := parseTolerant(candidate)
		if !ok {
			s.logger.Debug("balanced candidate failed tolerant parse",
				"url", page.URL, "snippet", snippet(candidate))
			continue
		}
		if m, ok := v.(map[string]any); ok && len(m) > 0 {
			return trimSet(m)
		}
	}
}

// plainText renders the page for the free-text strategies. Markup is
// stripped via goquery unless the declared type is already JSON; a
// markup parse failure falls back to the raw body so the remaining
// strategies still get a chance.
func plainText(page *mcpfinder.Page, logger *slog.Logger) string {
	if page.IsJSON() {
		return page.Body
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		logger.Debug("markup parse failed, using raw body", "url", page.URL, "error", err)
		return page.Body
	}
	return doc.Text()
}
