package crawl

import "sync"

// VisitedSet records canonical URLs that have been claimed for processing.
// Membership is exact.
// It is safe for concurrent use by multiple goroutines.
type VisitedSet struct {
	mu   sync.Mutex
	urls map[string]struct{}
}

// NewVisitedSet creates an empty VisitedSet.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{
		urls: make(map[string]struct{}),
	}
}

// MarkIfNew atomically checks and marks url.
// It returns true if url was not visited before and is now marked.
func (s *VisitedSet) MarkIfNew(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.urls[url]; ok {
		return false
	}
	s.urls[url] = struct{}{}
	return true
}

// Has reports whether url has been marked.
func (s *VisitedSet) Has(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.urls[url]
	return ok
}

// Len returns the number of marked URLs.
func (s *VisitedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.urls)
}
