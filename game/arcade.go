package game

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
)

// Arcade routes surface input to the current session. With no session it
// sits on mode select.
type Arcade struct {
	catalog *assets.Catalog
	opts    []Option

	session *Session
	queue   []Input
	outbox  []events.Event
}

// NewArcade creates an arcade on mode select. opts are applied to every
// session it starts.
func NewArcade(cat *assets.Catalog, opts ...Option) *Arcade {
	if cat == nil {
		cat = assets.Default()
	}
	return &Arcade{catalog: cat, opts: opts}
}

// HandleInput queues in for the next Update
func (a *Arcade) HandleInput(in Input) {
	a.queue = append(a.queue, in)
}

// Session returns the running session, or nil on mode select
func (a *Arcade) Session() *Session {
	return a.session
}

// Now returns the running session's time, 0 on mode select
func (a *Arcade) Now() time.Duration {
	if a.session == nil {
		return 0
	}
	return a.session.Now()
}

// Update applies queued input in order and ticks the session
func (a *Arcade) Update(dt time.Duration) {
	queue := a.queue
	a.queue = nil
	for _, in := range queue {
		a.apply(in)
	}
	if a.session != nil {
		a.session.Update(dt)
		a.outbox = append(a.outbox, a.session.Drain()...)
	}
}

func (a *Arcade) apply(in Input) {
	switch in := in.(type) {
	case ModeSelected:
		a.start(in.Mode)
	case RestartRequested:
		if a.session != nil {
			a.start(a.session.Mode())
		}
	case ExitRequested:
		a.closeSession()
	case PointerClick:
		if a.session != nil {
			a.session.PointerClick(in.X, in.Y, a.session.Now())
		}
	case PointerMove:
		if a.session != nil {
			a.session.PointerMove(in.X, in.Y)
		}
	}
}

func (a *Arcade) start(mode config.ModeID) {
	a.closeSession()
	a.session = NewSession(a.catalog, mode, a.opts...)
	a.outbox = append(a.outbox, a.session.Drain()...)
}

func (a *Arcade) closeSession() {
	if a.session == nil {
		return
	}
	a.session.Close()
	a.outbox = append(a.outbox, a.session.Drain()...)
	a.session = nil
}

// Snapshot copies the current state for rendering
func (a *Arcade) Snapshot() Snapshot {
	if a.session == nil {
		return Snapshot{Phase: config.PhaseIdle}
	}
	return a.session.Snapshot()
}

// Drain returns events delivered since the last call
func (a *Arcade) Drain() []events.Event {
	out := a.outbox
	a.outbox = nil
	return out
}

// Close ends the running session
func (a *Arcade) Close() {
	a.queue = nil
	a.closeSession()
}
