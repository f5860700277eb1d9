package shell

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d. Timers are fire-and-forget.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler schedules with time.AfterFunc and can cancel everything
// still pending. Fired timers drop out of the pending set.
type TimerScheduler struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]*time.Timer
}

// AfterFunc implements Scheduler.
func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		s.pending = make(map[uint64]*time.Timer)
	}
	s.next++
	id := s.next
	s.pending[id] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		fn()
	})
}

// Stop cancels every pending timer.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil
}
