package mcpfinder

import (
	"context"
	"strings"
)

// Page represents a fetched web page: the response body and its declared
// content type. Pages are transient inputs to extraction and are never
// persisted.
type Page struct {
	URL         string
	Body        string
	ContentType string
}

// IsJSON reports whether the declared content type indicates a JSON body.
func (p *Page) IsJSON() bool {
	return strings.Contains(strings.ToLower(p.ContentType), "application/json")
}

// Fetcher retrieves pages from URLs.
type Fetcher interface {
	// Fetch performs a blocking GET of the URL and returns the response
	// body together with its declared content type. The context controls
	// timeout and cancellation. A non-2xx status is an error.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// URLSource produces an ordered sequence of source URLs to process.
// Implementations hide where the URLs come from (a literal list, a text
// file, a sitemap).
type URLSource interface {
	URLs(ctx context.Context) ([]string, error)
}
