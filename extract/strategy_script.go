package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lksrz/mcpfinder"
)

// scriptStrategy parses the body as markup and inspects every
// <script type="application/json"> element in document order. A script
// matches when it wraps definitions under the designated key, or when
// the whole object is itself a mapping of server definitions. The first
// matching script wins.
type scriptStrategy struct {
	logger *slog.Logger
}

func (s *scriptStrategy) name() string { return "script-tag" }

func (s *scriptStrategy) attempt(page *mcpfinder.Page) mcpfinder.DiscoveredSet {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		s.logger.Debug("markup parse failed", "url", page.URL, "error", err)
		return nil
	}

	var found mcpfinder.DiscoveredSet
	doc.Find(`script[type="application/json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}

		v, ok := parseStrict(text)
		if !ok {
			s.logger.Debug("script tag failed strict parse", "url", page.URL, "snippet", snippet(text))
			return true
		}
		if set, ok := serversFrom(v); ok && len(set) > 0 {
			found = set
			return false
		}
		return true
	})
	return found
}
