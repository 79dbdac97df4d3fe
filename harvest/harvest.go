package harvest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lksrz/mcpfinder"
)

// Result summarizes a single harvest run.
type Result struct {
	URLsChecked  int // URLs actually fetched this run
	Contributing int // URLs that yielded at least one new entry
	EntriesAdded int // entries appended to the collection
	Total        int // collection size after the run
}

// Harvester walks a list of URLs sequentially, extracting server
// definitions from each page and persisting the growing collection.
type Harvester struct {
	Fetcher   mcpfinder.Fetcher
	Extractor mcpfinder.Extractor
	Store     mcpfinder.CollectionStore
	Logger    *slog.Logger

	// RetryDelays are the backoff delays between fetch attempts.
	// Nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// Run processes the given URLs in order. URLs that already contributed
// entries in a previous run are skipped. Fetch and extraction failures
// are logged and do not stop the run. The collection is saved after
// each contributing URL, so an interrupted run keeps its progress.
func (h *Harvester) Run(ctx context.Context, urls []string) (*Result, error) {
	logger := h.logger().With("run_id", uuid.New().String())
	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	existing, err := h.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	acc := NewAccumulator(existing)
	processed := mcpfinder.ProcessedURLs(acc.Entries())

	logger.Info("harvest started",
		"urls", len(urls),
		"existing_entries", acc.Len(),
	)

	result := &Result{}
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if processed[url] {
			logger.Debug("skipping processed url", "url", url)
			continue
		}

		added := h.processURL(ctx, logger, acc, url, delays)
		result.URLsChecked++
		if added == 0 {
			continue
		}
		result.Contributing++
		result.EntriesAdded += added

		if err := h.Store.Save(ctx, acc.Entries()); err != nil {
			logger.Error("save failed", "url", url, "err", err)
			continue
		}
		processed[url] = true
	}

	result.Total = acc.Len()
	logger.Info("harvest finished",
		"urls_checked", result.URLsChecked,
		"contributing", result.Contributing,
		"entries_added", result.EntriesAdded,
		"total", result.Total,
	)
	return result, nil
}

// processURL fetches and extracts a single page, merging any
// discoveries into the accumulator. Per-URL failures are contained
// here so one broken page cannot abort the run.
func (h *Harvester) processURL(ctx context.Context, logger *slog.Logger, acc *Accumulator, url string, delays []time.Duration) int {
	page, err := fetchWithRetry(ctx, h.Fetcher, url, delays, logger)
	if err != nil {
		logger.Warn("fetch failed", "url", url, "err", err)
		return 0
	}

	set, err := h.Extractor.Extract(page)
	if err != nil {
		logger.Warn("extraction failed", "url", url, "err", err)
		return 0
	}
	if len(set) == 0 {
		logger.Debug("no definitions found", "url", url)
		return 0
	}

	added := acc.Merge(set, url)
	logger.Info("page processed",
		"url", url,
		"found", len(set),
		"added", added,
	)
	return added
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
