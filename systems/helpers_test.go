package systems

import (
	"testing"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// stubRand replays fixed rolls, then falls back to def / 0
type stubRand struct {
	floats []float64
	ints   []int
	def    float64
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.def
}

func (r *stubRand) IntN(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return 0
}

// unlucky never crits and never spawns power-ups
func unlucky() *stubRand {
	return &stubRand{def: 0.99}
}

type testWorld struct {
	w     donburi.World
	sched *clock.Scheduler
	rec   *events.Recorder
}

func newTestWorld(t *testing.T, mode config.ModeID, r components.Random) *testWorld {
	t.Helper()
	w := donburi.NewWorld()
	sched := clock.NewScheduler()
	SetupWorld(w, components.RuntimeData{
		Clock:   sched,
		Rand:    r,
		Catalog: assets.Default(),
		Mode:    mode,
	})
	return &testWorld{w: w, sched: sched, rec: events.Record(w)}
}

// flush delivers queued events and returns them
func (tw *testWorld) flush() []events.Event {
	events.Flush(tw.w)
	return tw.rec.Drain()
}

func (tw *testWorld) advance(d time.Duration) {
	tw.sched.Advance(d)
}

// placeFragment puts a fragment of the named type with its top-left at (x, y)
func (tw *testWorld) placeFragment(t *testing.T, typeName string, x, y, vy float64) *donburi.Entry {
	t.Helper()
	ft, ok := config.FragmentType(typeName)
	if !ok {
		t.Fatalf("unknown fragment type %q", typeName)
	}
	combat := GetCombat(tw.w)
	combat.NextFragmentID++
	return factory.CreateFragment(tw.w, factory.FragmentSpec{
		ID:       combat.NextFragmentID,
		Type:     ft,
		X:        x,
		Y:        y,
		Scale:    1,
		Velocity: dmath.NewVec2(0, vy),
	})
}

func objectOf(e *donburi.Entry) *components.ObjectData {
	return components.Object.Get(e)
}

func countType(evts []events.Event, t events.Type) int {
	n := 0
	for _, e := range evts {
		if e.Type == t {
			n++
		}
	}
	return n
}

func findEvent(evts []events.Event, t events.Type) (events.Event, bool) {
	for _, e := range evts {
		if e.Type == t {
			return e, true
		}
	}
	return events.Event{}, false
}
