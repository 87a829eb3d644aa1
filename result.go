package scrapeview

import "sync"

// ResultReader is read-only access to the last stored response.
type ResultReader interface {
	// Load returns the stored response, or nil when empty.
	Load() *ScrapeResponse
}

// ResultSlot holds the most recent response worth exporting.
// It is overwritten, never merged. ResultSlot is safe for concurrent use.
type ResultSlot struct {
	mu   sync.RWMutex
	resp *ScrapeResponse
}

// Ensure ResultSlot implements ResultReader at compile time.
var _ ResultReader = (*ResultSlot)(nil)

// Store replaces the slot contents.
func (s *ResultSlot) Store(resp *ScrapeResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resp = resp
}

// Clear empties the slot.
func (s *ResultSlot) Clear() {
	s.Store(nil)
}

// Load returns the stored response, or nil when empty.
func (s *ResultSlot) Load() *ScrapeResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resp
}

// Empty reports whether the slot holds nothing.
func (s *ResultSlot) Empty() bool {
	return s.Load() == nil
}
