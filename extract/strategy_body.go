package extract

import (
	"log/slog"

	"github.com/lksrz/mcpfinder"
)

// bodyStrategy handles responses that declare a JSON content type and
// carry the designated key at the top level of the body. Only a strict
// parse is attempted here; a body served as application/json that does
// not parse strictly falls through to later strategies.
type bodyStrategy struct {
	logger *slog.Logger
}

func (s *bodyStrategy) name() string { return "json-body" }

func (s *bodyStrategy) attempt(page *mcpfinder.Page) mcpfinder.DiscoveredSet {
	if !page.IsJSON() {
		return nil
	}

	v, ok := parseStrict(page.Body)
	if !ok {
		s.logger.Debug("json body failed strict parse", "url", page.URL)
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	inner, ok := m[ServersKey].(map[string]any)
	if !ok {
		return nil
	}
	return trimSet(inner)
}
