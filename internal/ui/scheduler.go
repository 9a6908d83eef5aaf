package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg is delivered when a tick scheduled through tickScheduler
// elapses.
type timerFiredMsg struct {
	id uint64
}

// tickScheduler runs schedule callbacks on the Bubble Tea event loop. After
// queues a tea.Tick command; the model drains the queue after every Update
// and calls Fire when the tick message comes back, so callbacks always run
// on the Update goroutine.
type tickScheduler struct {
	nextID  uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: make(map[uint64]func())}
}

// After implements schedule.Scheduler.
func (s *tickScheduler) After(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return func() { delete(s.pending, id) }
}

// Fire runs the callback for id unless it was stopped.
func (s *tickScheduler) Fire(id uint64) {
	fn, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	fn()
}

// Drain returns the ticks queued since the last call.
func (s *tickScheduler) Drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Pending reports how many callbacks are still waiting.
func (s *tickScheduler) Pending() int {
	return len(s.pending)
}
