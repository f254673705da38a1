package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/newsrag"
)

// Default politeness delay bounds applied before each article fetch.
const (
	DefaultMinDelay = 1 * time.Second
	DefaultMaxDelay = 4 * time.Second
)

var _ newsrag.Throttle = (*RandomDelay)(nil)

// RandomDelay waits a uniformly random duration in [Min, Max] so that
// consecutive requests do not fall into a fixed rhythm.
type RandomDelay struct {
	Min time.Duration
	Max time.Duration
}

// NewRandomDelay creates a RandomDelay. If max is less than min, the delay is
// fixed at min.
func NewRandomDelay(min, max time.Duration) *RandomDelay {
	return &RandomDelay{Min: min, Max: max}
}

// Next returns the next delay.
func (d *RandomDelay) Next() time.Duration {
	if d.Max <= d.Min {
		return max(d.Min, 0)
	}
	return d.Min + time.Duration(rand.Int64N(int64(d.Max-d.Min)+1))
}

// Wait blocks for the next delay.
// Returns the context error if the context is canceled first.
func (d *RandomDelay) Wait(ctx context.Context) error {
	delay := d.Next()
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
