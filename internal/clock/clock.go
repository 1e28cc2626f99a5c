// Package clock abstracts time for throttle and debounce timers.
//
// The row registry throttles visible recomputation and the column resize
// controller debounces its stop notifications. Both take a Scheduler so the
// grid can route timer callbacks through its own lock and tests can fire
// timers deterministically.
package clock

import (
	"sync"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing.
	// Returns false if the callback already fired or was stopped.
	Stop() bool
}

// Scheduler provides the current time and delayed callbacks.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is a Scheduler backed by the time package.
type Real struct{}

// Now returns time.Now.
func (Real) Now() time.Time { return time.Now() }

// AfterFunc wraps time.AfterFunc.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Wrap returns a Scheduler whose callbacks are run through wrap.
// The grid uses it to take its lock before a timer callback touches state.
func Wrap(s Scheduler, wrap func(func())) Scheduler {
	return &wrapped{inner: s, wrap: wrap}
}

type wrapped struct {
	inner Scheduler
	wrap  func(func())
}

func (w *wrapped) Now() time.Time { return w.inner.Now() }

func (w *wrapped) AfterFunc(d time.Duration, f func()) Timer {
	return w.inner.AfterFunc(d, func() { w.wrap(f) })
}

// Manual is a Scheduler driven by the caller. Time only moves on Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

// NewManual creates a manual scheduler starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type manualTimer struct {
	m       *Manual
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to run once the manual time reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{m: m, at: m.now.Add(d), f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward and fires every due timer in deadline order.
// Callbacks run without the scheduler lock held.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.nextDue()
		if t == nil {
			return
		}
		t.f()
	}
}

// Pending returns the number of timers that have neither fired nor stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue() *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	var due *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.fired || t.at.After(m.now) {
			continue
		}
		if due == nil || t.at.Before(due.at) {
			due = t
		}
	}
	if due != nil {
		due.fired = true
	}
	return due
}
