// Package sched provides a single-threaded virtual-time scheduler.
//
// Timers never fire on their own: the owner advances the clock from its event
// loop and due tasks run synchronously, in due-time order, on the caller's
// goroutine. Ties are broken by creation order, so a given sequence of
// Advance calls always produces the same firing order.
package sched

import (
	"time"
)

// Task is the work run when a timer fires.
type Task func()

// Handle identifies a started timer. The zero Handle is never issued.
type Handle uint64

type timer struct {
	id     Handle
	due    time.Duration
	period time.Duration // 0 for one-shot timers
	task   Task
}

// Scheduler owns a virtual clock and its pending timers.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	nextID Handle
	timers map[Handle]*timer
}

// New creates a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{
		timers: make(map[Handle]*timer),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Start runs task every period, first at Now()+period.
// It panics if period is not positive.
func (s *Scheduler) Start(period time.Duration, task Task) Handle {
	if period <= 0 {
		panic("sched: non-positive period for Start")
	}
	return s.add(period, period, task)
}

// After runs task once, delay from now.
// It panics if delay is not positive.
func (s *Scheduler) After(delay time.Duration, task Task) Handle {
	if delay <= 0 {
		panic("sched: non-positive delay for After")
	}
	return s.add(delay, 0, task)
}

func (s *Scheduler) add(delay, period time.Duration, task Task) Handle {
	s.nextID++
	t := &timer{
		id:     s.nextID,
		due:    s.now + delay,
		period: period,
		task:   task,
	}
	s.timers[t.id] = t
	return t.id
}

// Cancel stops the timer. Cancelling an unknown, fired or already
// cancelled handle is a no-op.
func (s *Scheduler) Cancel(h Handle) {
	delete(s.timers, h)
}

// Active reports whether the timer is still scheduled.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.timers[h]
	return ok
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward by dt, firing every timer that comes due
// on the way. Timers started or cancelled by a task take effect immediately,
// including within the same Advance. Returns the number of tasks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}

		s.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			delete(s.timers, t.id)
		}

		t.task()
		fired++
	}

	s.now = target
	return fired
}

// nextDue returns the earliest timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
