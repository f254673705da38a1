package crawl

import (
	"sync"

	"github.com/fwojciec/newsrag/bloom"
)

// Frontier is a FIFO queue of canonical section URLs awaiting traversal.
//
// Every pushed URL is recorded in a Bloom filter and a URL the filter has
// seen is never queued again, even after it is popped. A false positive
// drops a URL that was never queued; the filter is sized so this is rare.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
	head  int
}

// NewFrontier creates an empty Frontier whose filter is sized for n
// expected URLs at the given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push appends url to the back of the queue.
// Returns false if url was already pushed, or the filter reports it as such.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestAndAdd(url) {
		return false
	}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the URL at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.head == len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++

	// Reclaim the consumed prefix once the queue drains.
	if f.head == len(f.queue) {
		f.queue = f.queue[:0]
		f.head = 0
	}
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue) - f.head
}
