package concurrency

import (
	"sync"
	"time"

	"passwordSecurityDemo/internal/port"
)

// TickerScheduler runs one callback on a wall-clock ticker.
type TickerScheduler struct {
	mu   sync.Mutex
	stop chan struct{}
}

var _ port.Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Start cancels any running schedule before starting the new one.
func (s *TickerScheduler) Start(interval time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	stop := make(chan struct{})
	s.stop = stop
	go run(interval, fn, stop)
}

// Stop does not wait for a callback in flight, so fn may call it.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *TickerScheduler) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func run(interval time.Duration, fn func(), stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Both cases can be ready at once; stop wins.
			select {
			case <-stop:
				return
			default:
			}
			fn()
		}
	}
}
