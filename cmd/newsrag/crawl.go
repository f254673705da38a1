package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if deps.Crawler == nil {
		return newsrag.Errorf(newsrag.EINTERNAL, "crawler not configured")
	}

	fmt.Fprintf(deps.Stdout, "Crawling %s\n", deps.Crawler.Config.SeedURL)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  [%d saved, %d queued] %s\n",
				event.Saved, event.Queued, crawl.TruncateURL(event.URL, 80))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, progress)
	if err != nil && (result == nil || !errors.Is(err, context.Canceled)) {
		fmt.Fprintf(deps.Stderr, "error crawling: %s\n", newsrag.ErrorMessage(err))
		return err
	}
	if err != nil {
		fmt.Fprintln(deps.Stdout, "  Interrupted")
	}

	fmt.Fprintf(deps.Stdout, "  Visited %d sections, saved %d articles (%d duplicates, %d failed)\n",
		result.Sections, result.Saved, result.Duplicates, result.Failed)
	fmt.Fprintf(deps.Stdout, "  Stored %s, %s\n", crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	return nil
}
