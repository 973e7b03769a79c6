package mocks

import (
	"sync"
	"time"
)

// ManualScheduler records the scheduled callback and runs it only when Tick
// is called, so tests control time.
type ManualScheduler struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	starts   int
	stops    int
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Start(interval time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
	s.interval = interval
	s.starts++
}

func (s *ManualScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = nil
	s.stops++
}

// Tick runs the callback n times, stopping early once it is unscheduled.
// It reports how many ticks ran.
func (s *ManualScheduler) Tick(n int) int {
	ran := 0
	for range n {
		s.mu.Lock()
		fn := s.fn
		s.mu.Unlock()
		if fn == nil {
			break
		}
		fn()
		ran++
	}
	return ran
}

// Active reports whether a callback is scheduled.
func (s *ManualScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

func (s *ManualScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Callback returns the scheduled callback, or nil.
func (s *ManualScheduler) Callback() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn
}

func (s *ManualScheduler) Starts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}
