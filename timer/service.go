// Package timer schedules script callbacks by ID.
package timer

import (
	"sync"
	"time"
)

// FireFunc is called from the timer's goroutine when a timer fires. The
// receiver must hand the work to its own goroutine.
type FireFunc func(id int, repeating bool)

// Service owns timer IDs, scheduling, repeats and cancellation.
// Repeating timers reschedule as soon as they fire, so the interval does not
// drift with the receiver's latency.
type Service struct {
	fire   FireFunc
	timers map[int]*entry
	nextID int
	mu     sync.Mutex
}

type entry struct {
	interval time.Duration // 0 = one-shot
	stop     func() bool
}

// NewService creates a timer service that reports through fire.
func NewService(fire FireFunc) *Service {
	return &Service{
		fire:   fire,
		timers: make(map[int]*entry),
	}
}

// After schedules a one-shot timer and returns its ID.
func (s *Service) After(d time.Duration) int {
	return s.schedule(d, 0)
}

// Every schedules a repeating timer and returns its ID.
func (s *Service) Every(d time.Duration) int {
	return s.schedule(d, d)
}

func (s *Service) schedule(d, interval time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	t := time.AfterFunc(d, func() { s.expire(id) })
	s.timers[id] = &entry{interval: interval, stop: t.Stop}
	return id
}

func (s *Service) expire(id int) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return // cancelled
	}

	repeating := e.interval > 0
	if repeating {
		t := time.AfterFunc(e.interval, func() { s.expire(id) })
		e.stop = t.Stop
	} else {
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.fire(id, repeating)
}

// Cancel stops a timer. Unknown IDs are ignored.
func (s *Service) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.timers[id]; ok {
		e.stop()
		delete(s.timers, id)
	}
}

// CancelAll stops every timer. IDs keep counting so late fires from an old
// timer never match a new one.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timers {
		e.stop()
	}
	clear(s.timers)
}

// Active returns the number of scheduled timers.
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
