package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/lksrz/mcpfinder"
)

var (
	npxRE           = regexp.MustCompile(`npx\s+-y\s+([@\w.-]+(?:/[@\w.-]+)?)\s+(?:mcp\s+)?([^\n\r<]+)`)
	trailingPunctRE = regexp.MustCompile(`[.,;!?()*'"]+$`)
)

// npxStrategy synthesizes definitions from "npx -y <package> ..."
// invocation phrases in the plain-text rendering. The same package
// appearing more than once keeps the last occurrence; repeated phrases
// on one page are expected to be near-duplicates.
type npxStrategy struct {
	logger *slog.Logger
}

func (s *npxStrategy) name() string { return "npx-phrase" }

func (s *npxStrategy) attempt(page *mcpfinder.Page) mcpfinder.DiscoveredSet {
	text := plainText(page, s.logger)
	matches := npxRE.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	set := make(mcpfinder.DiscoveredSet, len(matches))
	for _, m := range matches {
		pkg := strings.TrimSpace(m[1])
		arg := trailingPunctRE.ReplaceAllString(strings.TrimSpace(m[2]), "")
		tokens := []any{"npx", "-y", pkg, "mcp", strings.TrimSpace(arg)}
		set[pkg] = mcpfinder.Trim(tokens)
	}
	return set
}
