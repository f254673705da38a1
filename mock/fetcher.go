package mock

import (
	"context"

	"github.com/fwojciec/newsrag"
)

var _ newsrag.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsrag.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ newsrag.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsrag.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ newsrag.Throttle = (*Throttle)(nil)

// Throttle is a mock implementation of newsrag.Throttle.
type Throttle struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttle) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}
