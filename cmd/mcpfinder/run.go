package main

import (
	"fmt"
	"time"

	"github.com/lksrz/mcpfinder"
	"github.com/lksrz/mcpfinder/bloom"
	"github.com/lksrz/mcpfinder/extract"
	"github.com/lksrz/mcpfinder/harvest"
	mcphttp "github.com/lksrz/mcpfinder/http"
	mcpslog "github.com/lksrz/mcpfinder/slog"
	"github.com/lksrz/mcpfinder/xurls"
)

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URLs      []string      `arg:"" optional:"" help:"URLs to process"`
	FromFile  string        `short:"f" help:"Extract candidate URLs from a text file"`
	Sitemap   string        `help:"Discover candidate URLs from a site's sitemap"`
	Output    string        `short:"o" default:"mcp_servers.json" env:"MCPFINDER_OUTPUT" help:"Collection file path"`
	DB        string        `env:"MCPFINDER_DB" help:"Store the collection in a SQLite database instead"`
	Timeout   time.Duration `default:"10s" help:"Per-request fetch timeout"`
	UserAgent string        `help:"Override the fetch User-Agent header"`
	NoRetry   bool          `help:"Disable fetch retries"`
}

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	urls, err := c.gatherURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcpfinder.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs to process. Pass URLs, --from-file, or --sitemap")
	}

	store, closeStore, err := openStore(deps, c.Output, c.DB)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcpfinder.ErrorMessage(err))
		return err
	}
	defer closeStore()

	opts := []mcphttp.Option{mcphttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		opts = append(opts, mcphttp.WithUserAgent(c.UserAgent))
	}

	h := &harvest.Harvester{
		Fetcher:   mcpslog.NewLoggingFetcher(mcphttp.NewFetcher(opts...), deps.Logger),
		Extractor: extract.NewCascade(extract.WithLogger(deps.Logger)),
		Store:     store,
		Logger:    deps.Logger,
	}
	if c.NoRetry {
		h.RetryDelays = []time.Duration{}
	}

	result, err := h.Run(deps.Ctx, urls)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Checked %d URLs, %d contributed %d new entries (%d total).\n",
		result.URLsChecked, result.Contributing, result.EntriesAdded, result.Total)
	return nil
}

// gatherURLs combines the three candidate sources and drops duplicates
// while preserving first-seen order.
func (c *RunCmd) gatherURLs(deps *Dependencies) ([]string, error) {
	urls := append([]string(nil), c.URLs...)

	if c.FromFile != "" {
		found, err := xurls.NewFileSource(c.FromFile).URLs(deps.Ctx)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}

	if c.Sitemap != "" {
		found, err := mcphttp.NewSitemapSource(c.Sitemap, nil).URLs(deps.Ctx)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}

	return bloom.Dedupe(urls), nil
}
