// Package http provides HTTP-based implementations of mcpfinder.Fetcher
// and mcpfinder.URLSource for plain static pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/lksrz/mcpfinder"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent mirrors a desktop browser; several registries and
// code hosts serve reduced content to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements mcpfinder.Fetcher at compile time.
var _ mcpfinder.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over plain HTTP. It does not execute
// JavaScript and is suitable for static pages and raw files.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL. Timeouts, transport
// failures, and non-2xx statuses return an EUNAVAILABLE error; callers
// treat these as "skip this URL".
func (f *Fetcher) Fetch(ctx context.Context, url string) (*mcpfinder.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, mcpfinder.Errorf(mcpfinder.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, mcpfinder.Errorf(mcpfinder.EUNAVAILABLE, "request failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mcpfinder.Errorf(mcpfinder.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mcpfinder.Errorf(mcpfinder.EUNAVAILABLE, "reading body for %s: %v", url, err)
	}

	return &mcpfinder.Page{
		URL:         url,
		Body:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
