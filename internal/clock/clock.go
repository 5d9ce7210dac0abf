// Package clock abstracts the wall clock so simulation time can be
// shifted or frozen without touching the callers that ask for "now".
package clock

import (
	"sync"
	"time"
)

// Clock yields the current simulation time.
type Clock interface {
	Now() time.Time
}

// System is a wall clock with a mutable offset. The offset lets the
// whole scene be viewed at a past or future instant while animation
// still advances in real time.
type System struct {
	mu     sync.Mutex
	offset time.Duration
}

// NewSystem returns a clock tracking the wall time with zero offset.
func NewSystem() *System {
	return &System{}
}

// Now returns the wall time shifted by the current offset.
func (s *System) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().Add(s.offset)
}

// SetOffset replaces the offset outright.
func (s *System) SetOffset(d time.Duration) {
	s.mu.Lock()
	s.offset = d
	s.mu.Unlock()
}

// Advance shifts the offset by d. Negative values travel backwards.
func (s *System) Advance(d time.Duration) {
	s.mu.Lock()
	s.offset += d
	s.mu.Unlock()
}

// Offset reports the current shift from wall time.
func (s *System) Offset() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// Fixed is a clock pinned to a single instant, for headless summaries
// and tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
