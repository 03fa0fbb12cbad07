// Package clock provides the single logical tick source of a game session.
//
// A Scheduler owns a logical clock that only moves when Advance is called.
// Every repeating or one-shot timer derives its due time from that clock, so
// a host feeding fixed frame deltas (or a test feeding arbitrary ones) gets
// identical, drift-free firing sequences.
package clock

import "time"

// minInterval keeps repeating timers from spinning inside a single Advance
const minInterval = time.Millisecond

// Scheduler manages timers on a logical clock
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	seq    uint64
	closed bool
	firing bool
}

// Timer is a scheduled callback owned by a Scheduler
type Timer struct {
	name     string
	interval time.Duration
	due      time.Duration
	lastFire time.Duration
	repeat   bool
	active   bool
	seq      uint64
	fn       func(now time.Duration)
}

// NewScheduler creates a scheduler with its clock at zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the logical time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Closed reports whether Close has been called
func (s *Scheduler) Closed() bool {
	return s.closed
}

// Every registers a repeating timer first due one interval from now
func (s *Scheduler) Every(name string, interval time.Duration, fn func(now time.Duration)) *Timer {
	return s.add(name, interval, true, fn)
}

// After registers a one-shot timer due delay from now
func (s *Scheduler) After(name string, delay time.Duration, fn func(now time.Duration)) *Timer {
	return s.add(name, delay, false, fn)
}

func (s *Scheduler) add(name string, d time.Duration, repeat bool, fn func(now time.Duration)) *Timer {
	if d < minInterval {
		d = minInterval
	}
	t := &Timer{
		name:     name,
		interval: d,
		due:      s.now + d,
		lastFire: s.now,
		repeat:   repeat,
		fn:       fn,
	}
	// A closed scheduler hands out inert timers so teardown races cannot resurrect state
	if s.closed {
		return t
	}
	s.seq++
	t.seq = s.seq
	t.active = true
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt, firing due timers in due-time order.
// While a callback runs, Now reports that timer's due time.
// Returns the number of callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.closed || dt < 0 || s.firing {
		return 0
	}
	target := s.now + dt
	fired := 0

	s.firing = true
	for !s.closed {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.lastFire = next.due
		if next.repeat {
			next.due += next.interval
		} else {
			next.active = false
		}
		next.fn(s.now)
		fired++
	}
	s.firing = false

	if !s.closed {
		s.now = target
	}
	s.compact()
	return fired
}

// nextDue returns the earliest active timer due at or before target
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if !t.active || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.active {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Active returns the number of live timers
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if t.active {
			n++
		}
	}
	return n
}

// StopAll cancels every live timer but keeps the scheduler usable
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.active = false
	}
	if !s.firing {
		s.compact()
	}
}

// Close cancels every timer; later registrations return inert timers
func (s *Scheduler) Close() {
	s.StopAll()
	s.closed = true
}

// Name returns the label the timer was registered with
func (t *Timer) Name() string {
	return t.name
}

// Active reports whether the timer will still fire
func (t *Timer) Active() bool {
	return t.active
}

// Due returns the next logical time the timer fires
func (t *Timer) Due() time.Duration {
	return t.due
}

// Interval returns the current period (or delay for one-shots)
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Stop cancels the timer. Safe to call repeatedly and from callbacks.
func (t *Timer) Stop() {
	t.active = false
}

// SetInterval changes the period. The next fire moves to one new interval
// after the previous fire, clamped to now when that is already in the past.
func (t *Timer) SetInterval(d time.Duration, now time.Duration) {
	if d < minInterval {
		d = minInterval
	}
	t.interval = d
	due := t.lastFire + d
	if due < now {
		due = now
	}
	t.due = due
}
