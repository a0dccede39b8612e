package sched

import "time"

// Group tracks the timers belonging to one owner (for example a game
// session) so they can be disposed of together.
type Group struct {
	s       *Scheduler
	handles []Handle
}

// NewGroup creates an empty group on the given scheduler.
func NewGroup(s *Scheduler) *Group {
	return &Group{s: s}
}

// Start schedules a repeating task and tracks its handle.
func (g *Group) Start(period time.Duration, task Task) Handle {
	h := g.s.Start(period, task)
	g.handles = append(g.handles, h)
	return h
}

// After schedules a one-shot task and tracks its handle.
func (g *Group) After(delay time.Duration, task Task) Handle {
	h := g.s.After(delay, task)
	g.handles = append(g.handles, h)
	return h
}

// Cancel stops one timer of the group.
func (g *Group) Cancel(h Handle) {
	g.s.Cancel(h)
	for i, gh := range g.handles {
		if gh == h {
			g.handles = append(g.handles[:i], g.handles[i+1:]...)
			return
		}
	}
}

// CancelAll stops every timer of the group. Safe to call repeatedly.
func (g *Group) CancelAll() {
	for _, h := range g.handles {
		g.s.Cancel(h)
	}
	g.handles = g.handles[:0]
}

// Len returns the number of still-active timers in the group.
func (g *Group) Len() int {
	n := 0
	for _, h := range g.handles {
		if g.s.Active(h) {
			n++
		}
	}
	return n
}
