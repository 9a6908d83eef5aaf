// Package schedule provides timers that fire on the caller's event loop.
//
// The storefront runs single-threaded: handlers execute to completion and
// timers re-enter the loop rather than running on their own goroutine. A
// Scheduler hides how that re-entry happens (Bubble Tea messages in the UI,
// a virtual clock in tests).
package schedule

import (
	"sort"
	"time"
)

// Scheduler arranges for fn to run once after d. The returned stop function
// prevents fn from running if it has not fired yet; calling it more than once
// is harmless.
type Scheduler interface {
	After(d time.Duration, fn func()) (stop func())
}

// Manual is a deterministic Scheduler driven by Advance. It is not safe for
// concurrent use.
type Manual struct {
	now    time.Duration
	nextID uint64
	timers map[uint64]*manualTimer
}

type manualTimer struct {
	id  uint64
	due time.Duration
	fn  func()
}

// NewManual returns a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[uint64]*manualTimer)}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	m.nextID++
	id := m.nextID
	m.timers[id] = &manualTimer{id: id, due: m.now + d, fn: fn}
	return func() { delete(m.timers, id) }
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves the clock forward by d, firing due timers in order. Timers
// scheduled by a firing callback run in the same call if they fall due.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		next := m.earliest(target)
		if next == nil {
			break
		}
		delete(m.timers, next.id)
		if next.due > m.now {
			m.now = next.due
		}
		next.fn()
		fired++
	}
	m.now = target
	return fired
}

func (m *Manual) earliest(limit time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if t.due <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	return due[0]
}
