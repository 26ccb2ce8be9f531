package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// stepMsg carries a scheduled function back onto the event loop
type stepMsg struct {
	fn func()
}

// Scheduler implements clock.Scheduler on top of bubbletea ticks, so every
// animation step runs inside Update rather than on a timer goroutine.
type Scheduler struct {
	mu      sync.Mutex
	pending []tea.Cmd
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run on the event loop once d has elapsed. The tick
// starts when the queued command is returned from Update.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return stepMsg{fn: fn}
	}))
}

// Flush hands every queued tick to bubbletea
func (s *Scheduler) Flush() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmds := s.pending
	s.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
