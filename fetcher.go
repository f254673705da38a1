package newsrag

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch downloads the page at url and returns its HTML.
	// Network failures, timeouts and non-success HTTP statuses are
	// returned as errors; callers treat any error as "no document".
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Throttle inserts a politeness delay before a request.
type Throttle interface {
	// Wait blocks for the throttle's delay.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
