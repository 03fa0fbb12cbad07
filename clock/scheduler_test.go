package clock

import (
	"testing"
	"time"
)

func TestEveryFiresOnAccumulatedTime(t *testing.T) {
	s := NewScheduler()
	var fires []time.Duration
	s.Every("spawn", 100*time.Millisecond, func(now time.Duration) {
		fires = append(fires, now)
	})

	// Uneven frame deltas must not cause drift
	for _, dt := range []time.Duration{30, 30, 30, 30, 130, 50} {
		s.Advance(dt * time.Millisecond)
	}

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if len(fires) != len(want) {
		t.Fatalf("fired %d times, want %d (%v)", len(fires), len(want), fires)
	}
	for i := range want {
		if fires[i] != want[i] {
			t.Errorf("fire %d at %v, want %v", i, fires[i], want[i])
		}
	}
	if s.Now() != 300*time.Millisecond {
		t.Errorf("Now() = %v, want 300ms", s.Now())
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	timer := s.After("toast", time.Second, func(time.Duration) { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early")
	}
	s.Advance(5 * time.Second)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if timer.Active() {
		t.Errorf("one-shot timer still active after firing")
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d, want 0", s.Active())
	}
}

func TestFiringOrderWithinOneAdvance(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Every("motion", 10*time.Millisecond, func(time.Duration) { order = append(order, "motion") })
	s.Every("spawn", 20*time.Millisecond, func(time.Duration) { order = append(order, "spawn") })

	s.Advance(20 * time.Millisecond)

	// Ties resolve by registration order
	want := []string{"motion", "motion", "spawn"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestStopFromCallback(t *testing.T) {
	s := NewScheduler()
	count := 0
	var timer *Timer
	timer = s.Every("tick", 10*time.Millisecond, func(time.Duration) {
		count++
		if count == 3 {
			timer.Stop()
		}
	})
	s.Advance(time.Second)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestSetIntervalReschedulesFromLastFire(t *testing.T) {
	s := NewScheduler()
	var fires []time.Duration
	timer := s.Every("spawn", 1000*time.Millisecond, func(now time.Duration) {
		fires = append(fires, now)
	})

	s.Advance(1000 * time.Millisecond) // fires at 1000
	s.Advance(200 * time.Millisecond)
	timer.SetInterval(700*time.Millisecond, s.Now())
	if timer.Due() != 1700*time.Millisecond {
		t.Fatalf("Due() = %v, want 1.7s", timer.Due())
	}

	// An interval that is already overdue fires at the current time
	timer.SetInterval(100*time.Millisecond, s.Now())
	if timer.Due() != s.Now() {
		t.Fatalf("Due() = %v, want %v", timer.Due(), s.Now())
	}
	s.Advance(0)
	if len(fires) != 2 || fires[1] != 1200*time.Millisecond {
		t.Errorf("fires = %v, want [1s 1.2s]", fires)
	}
}

func TestNonPositiveIntervalIsClamped(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every("zero", 0, func(time.Duration) { count++ })
	s.Advance(10 * time.Millisecond)
	if count != 10 {
		t.Errorf("count = %d, want 10", count)
	}
}

func TestCloseStopsEverything(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every("a", 10*time.Millisecond, func(time.Duration) { count++ })
	s.After("b", 10*time.Millisecond, func(time.Duration) { count++ })

	s.Close()
	if s.Active() != 0 {
		t.Fatalf("Active() = %d after Close, want 0", s.Active())
	}

	late := s.Every("late", 10*time.Millisecond, func(time.Duration) { count++ })
	if late.Active() {
		t.Errorf("timer registered after Close is active")
	}
	if fired := s.Advance(time.Second); fired != 0 {
		t.Errorf("Advance after Close fired %d callbacks", fired)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestCloseFromCallbackHaltsAdvance(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every("tick", 10*time.Millisecond, func(time.Duration) {
		count++
		s.Close()
	})
	s.Every("other", 10*time.Millisecond, func(time.Duration) { count++ })
	s.Advance(time.Second)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestGroupRelease(t *testing.T) {
	s := NewScheduler()
	g := NewGroup(s)
	count := 0
	g.Every("motion", 10*time.Millisecond, func(time.Duration) { count++ })
	g.Every("spawn", 20*time.Millisecond, func(time.Duration) { count++ })
	keep := s.Every("toast", 10*time.Millisecond, func(time.Duration) {})

	s.Advance(20 * time.Millisecond)
	if g.Active() != 2 {
		t.Fatalf("group Active() = %d, want 2", g.Active())
	}

	g.Release()
	g.Release()
	if g.Active() != 0 || !g.Released() {
		t.Fatalf("group not released")
	}
	if !keep.Active() {
		t.Errorf("timer outside the group was stopped")
	}

	before := count
	s.Advance(time.Second)
	if count != before {
		t.Errorf("released timers fired %d more times", count-before)
	}

	late := g.Every("late", 10*time.Millisecond, func(time.Duration) { count++ })
	if late.Active() {
		t.Errorf("timer added to a released group is active")
	}
}
