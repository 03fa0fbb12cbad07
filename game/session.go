// Package game owns the lifecycle of a Skill Arcade run.
//
// A Session is one run from mode select to exit or restart: it owns the
// donburi world, the scheduler every timer hangs off, the pointer queue and
// the per-tick ordering. The Arcade is the boundary a rendering surface talks
// to: inputs in, snapshots and events out.
package game

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/systems"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Option configures a Session
type Option func(*sessionOptions)

type sessionOptions struct {
	rand   components.Random
	logger *log.Logger
}

// WithRand injects the random source
func WithRand(r components.Random) Option {
	return func(o *sessionOptions) {
		o.rand = r
	}
}

// WithSeed uses a PCG source seeded with seed, for reproducible runs
func WithSeed(seed uint64) Option {
	return func(o *sessionOptions) {
		o.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger routes lifecycle logging to l
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

type pointerInput struct {
	click bool
	x, y  float64
	at    time.Duration
}

// Session is a single run of the arcade
type Session struct {
	id     uuid.UUID
	mode   config.ModeID
	world  donburi.World
	sched  *clock.Scheduler
	logger *log.Logger
	outbox *events.Recorder

	pending []pointerInput
	closed  bool
}

// NewSession creates a run in mode. Challenge mode enters the boss battle
// immediately.
func NewSession(cat *assets.Catalog, mode config.ModeID, opts ...Option) *Session {
	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		seed := uint64(time.Now().UnixNano())
		o.rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	s := &Session{
		id:     uuid.New(),
		mode:   mode,
		world:  donburi.NewWorld(),
		sched:  clock.NewScheduler(),
		logger: o.logger,
	}
	systems.SetupWorld(s.world, components.RuntimeData{
		Clock:   s.sched,
		Rand:    o.rand,
		Catalog: cat,
		Mode:    mode,
	})
	s.outbox = events.Record(s.world)
	events.Subscribe(s.world, s.logEvent)

	s.logger.Printf("session %s created: mode=%s skills=%d", s.id, mode, len(cat.Skills))

	if mode == config.ModeChallenge {
		systems.StartBattle(s.world)
		events.Flush(s.world)
	}
	return s
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Mode returns the mode the session was created in
func (s *Session) Mode() config.ModeID {
	return s.mode
}

// World exposes the ECS world for read-only inspection
func (s *Session) World() donburi.World {
	return s.world
}

// Now returns the session's logical time
func (s *Session) Now() time.Duration {
	return s.sched.Now()
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	return s.closed
}

// PointerClick queues a click handled at the start of the next Update
func (s *Session) PointerClick(x, y float64, at time.Duration) {
	if s.closed {
		return
	}
	s.pending = append(s.pending, pointerInput{click: true, x: x, y: y, at: at})
}

// PointerMove queues a pointer move
func (s *Session) PointerMove(x, y float64) {
	if s.closed {
		return
	}
	s.pending = append(s.pending, pointerInput{x: x, y: y})
}

// Update runs one tick: queued pointer input, then the scheduler (motion,
// spawns, difficulty, power-up and toast timers), then achievement
// evaluation, then event delivery.
func (s *Session) Update(dt time.Duration) {
	if s.closed {
		return
	}
	dt = max(0, min(dt, config.Spawner.MaxFrameDelta))

	for _, in := range s.pending {
		if in.click {
			s.handleClick(in)
			continue
		}
		systems.MoveCursor(s.world, in.x, in.y)
	}
	s.pending = s.pending[:0]

	s.sched.Advance(dt)
	systems.EvaluateAll(s.world)
	events.Flush(s.world)
}

func (s *Session) handleClick(in pointerInput) {
	systems.ResolveClick(s.world, in.x, in.y, in.at)

	// Mastering the board hands over to the boss battle
	if s.mode == config.ModeNormal && systems.GetSkillBoard(s.world).AllMastered {
		systems.StartBattle(s.world)
	}
}

// Drain returns delivered events in publication order
func (s *Session) Drain() []events.Event {
	return s.outbox.Drain()
}

// Close stops every timer. Safe to call more than once; the session ignores
// all input afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	combat := systems.GetCombat(s.world)
	if combat.Timers != nil {
		combat.Timers.Release()
	}
	s.sched.Close()
	s.pending = nil
	s.closed = true
	events.Flush(s.world)
	s.logger.Printf("session %s closed at %v", s.id, s.sched.Now())
}

func (s *Session) logEvent(e events.Event) {
	switch e.Type {
	case events.BattleStarted:
		s.logger.Printf("session %s: battle started", s.id)
	case events.Enraged:
		s.logger.Printf("session %s: boss enraged, spawn interval %v", s.id, e.Interval)
	case events.DifficultyIncreased:
		s.logger.Printf("session %s: difficulty %d, spawn interval %v", s.id, e.Level, e.Interval)
	case events.AllSkillsMastered:
		s.logger.Printf("session %s: all skills mastered", s.id)
	case events.Victory, events.Defeat:
		if sum := e.Summary; sum != nil {
			s.logger.Printf("session %s: %s after %v, max combo %d, clicks %d, damage %d",
				s.id, sum.Outcome, sum.Elapsed, sum.MaxCombo, sum.TotalClicks, sum.TotalDamage)
		}
	}
}
