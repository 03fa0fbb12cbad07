package clock

import "time"

// Group scopes timers acquired together so they can be released together.
// The battle engine acquires one at Active entry and releases it on every
// exit from Active.
type Group struct {
	sched    *Scheduler
	timers   []*Timer
	released bool
}

// NewGroup creates an empty group bound to s
func NewGroup(s *Scheduler) *Group {
	return &Group{sched: s}
}

// Every registers a repeating timer owned by the group
func (g *Group) Every(name string, interval time.Duration, fn func(now time.Duration)) *Timer {
	return g.track(g.sched.Every(name, interval, fn))
}

// After registers a one-shot timer owned by the group
func (g *Group) After(name string, delay time.Duration, fn func(now time.Duration)) *Timer {
	return g.track(g.sched.After(name, delay, fn))
}

func (g *Group) track(t *Timer) *Timer {
	if g.released {
		t.Stop()
		return t
	}
	g.timers = append(g.timers, t)
	return t
}

// Release stops every timer in the group. Idempotent.
func (g *Group) Release() {
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
	g.released = true
}

// Released reports whether Release has been called
func (g *Group) Released() bool {
	return g.released
}

// Active returns the number of the group's timers that will still fire
func (g *Group) Active() int {
	n := 0
	for _, t := range g.timers {
		if t.Active() {
			n++
		}
	}
	return n
}
