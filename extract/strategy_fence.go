package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/lksrz/mcpfinder"
)

var fenceRE = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")

// fenceStrategy scans for fenced code blocks tagged as JSON. The raw
// body is scanned first; when it carries no fences and looks like
// markup, the body is rendered to markdown so blocks served as
// <pre><code> elements become visible to the same scan.
type fenceStrategy struct {
	logger *slog.Logger
	conv   *converter.Converter
}

func newFenceStrategy(logger *slog.Logger) *fenceStrategy {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &fenceStrategy{logger: logger, conv: conv}
}

func (s *fenceStrategy) name() string { return "fenced-block" }

func (s *fenceStrategy) attempt(page *mcpfinder.Page) mcpfinder.DiscoveredSet {
	if set := s.scan(page, page.Body); len(set) > 0 {
		return set
	}
	if page.IsJSON() || !strings.Contains(page.Body, "<") {
		return nil
	}

	markdown, err := s.conv.ConvertString(page.Body)
	if err != nil {
		s.logger.Debug("markdown conversion failed", "url", page.URL, "error", err)
		return nil
	}
	return s.scan(page, markdown)
}

// scan parses each fenced block strictly and applies the shared mapping
// heuristics. The first block producing a match wins; failed blocks do
// not stop the scan.
func (s *fenceStrategy) scan(page *mcpfinder.Page, text string) mcpfinder.DiscoveredSet {
	for _, match := range fenceRE.FindAllStringSubmatch(text, -1) {
		block := strings.TrimSpace(match[1])
		v, ok := parseStrict(block)
		if !ok {
			s.logger.Debug("fenced block failed strict parse", "url", page.URL, "snippet", snippet(block))
			continue
		}
		if set, ok := serversFrom(v); ok && len(set) > 0 {
			return set
		}
	}
	return nil
}
