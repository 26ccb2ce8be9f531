package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/tenzies/internal/common/clock Scheduler

// Scheduler runs a function once after a delay. Implementations decide which
// goroutine fn runs on; the TUI scheduler runs it on the event loop.
type Scheduler interface {
	After(d time.Duration, fn func())
}

var _ Scheduler = (*Manual)(nil)

// Manual is a Scheduler that only fires when told to. Pending functions run
// in the order they were scheduled.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	pending []manualTask
}

type manualTask struct {
	at time.Time
	fn func()
}

// NewManual creates a manual scheduler starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After queues fn to run once the clock has advanced by d
func (m *Manual) After(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, manualTask{at: m.now.Add(d), fn: fn})
}

// Pending returns how many functions are waiting to fire
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Step advances the clock to the earliest pending task and runs it.
// It returns false when nothing is pending.
func (m *Manual) Step() bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	next := 0
	for i, task := range m.pending {
		if task.at.Before(m.pending[next].at) {
			next = i
		}
	}
	task := m.pending[next]
	m.pending = append(m.pending[:next], m.pending[next+1:]...)
	if task.at.After(m.now) {
		m.now = task.at
	}
	m.mu.Unlock()

	// fn may schedule again, so it runs without the lock held
	task.fn()
	return true
}

// RunAll steps until nothing is pending and returns the number of tasks run
func (m *Manual) RunAll() int {
	n := 0
	for m.Step() {
		n++
	}
	return n
}
