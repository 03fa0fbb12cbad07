// Package events carries engine notifications out of a session.
//
// Every notification is an Event envelope published on a donburi event
// stream. Systems publish during a tick; the session flushes the stream once
// at the end of the tick, which delivers events to subscribers in
// publication order.
package events

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// Type identifies an engine notification
type Type int

const (
	// FragmentSpawned signals a new falling fragment
	// Trigger: spawn timer | Fields: FragmentID, DamageType, X, Y
	FragmentSpawned Type = iota

	// FragmentHit signals a fragment destroyed by a click
	// Fields: FragmentID, DamageType, X, Y, Amount (damage), Crit, Combo
	FragmentHit

	// FragmentMissed signals a fragment that crossed the lower boundary
	// Fields: FragmentID, DamageType, X, Y
	FragmentMissed

	// ComboReset signals a non-zero combo dropping back to 0
	// Fields: Combo (count before the reset)
	ComboReset

	// SkillProgress signals any level change of a skill
	// Fields: SkillID, Level, Amount (gain), X, Y
	SkillProgress

	// SkillLevelUp signals a click that crossed a level-up step
	// Fields: SkillID, Level, X, Y
	SkillLevelUp

	// SkillDefeated signals a skill reaching the maximum level
	// Fields: SkillID, Level, X, Y
	SkillDefeated

	// AllSkillsMastered fires once per session when every skill is maxed
	AllSkillsMastered

	// PowerUpSpawned signals a power-up appearing on the field
	// Fields: PowerUp, X, Y
	PowerUpSpawned

	// PowerUpCollected signals a clicked power-up
	// Fields: PowerUp, X, Y
	PowerUpCollected

	// PowerUpExpired signals a field power-up that timed out uncollected
	// Fields: PowerUp
	PowerUpExpired

	// BuffExpired signals the end of a collected power-up's effect
	// Fields: PowerUp
	BuffExpired

	// AchievementUnlocked signals the achievement toast now on display.
	// Only one is surfaced per display slot.
	// Fields: AchievementID, Title
	AchievementUnlocked

	// Enraged fires once when the boss enrage latch closes
	Enraged

	// DifficultyIncreased signals an escalation step
	// Fields: Level, Interval
	DifficultyIncreased

	// BattleStarted signals the encounter entering Active
	BattleStarted

	// Victory signals boss HP reaching 0 | Fields: Summary
	Victory

	// Defeat signals player HP reaching 0 | Fields: Summary
	Defeat

	// ShieldAbsorbed signals miss damage taken by the shield
	// Fields: Amount
	ShieldAbsorbed
)

func (t Type) String() string {
	switch t {
	case FragmentSpawned:
		return "fragmentSpawned"
	case FragmentHit:
		return "fragmentHit"
	case FragmentMissed:
		return "fragmentMissed"
	case ComboReset:
		return "comboReset"
	case SkillProgress:
		return "skillProgress"
	case SkillLevelUp:
		return "skillLevelUp"
	case SkillDefeated:
		return "skillDefeated"
	case AllSkillsMastered:
		return "allSkillsMastered"
	case PowerUpSpawned:
		return "powerUpSpawned"
	case PowerUpCollected:
		return "powerUpCollected"
	case PowerUpExpired:
		return "powerUpExpired"
	case BuffExpired:
		return "buffExpired"
	case AchievementUnlocked:
		return "achievementUnlocked"
	case Enraged:
		return "enraged"
	case DifficultyIncreased:
		return "difficultyIncreased"
	case BattleStarted:
		return "battleStarted"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case ShieldAbsorbed:
		return "shieldAbsorbed"
	}
	return "unknown"
}

// Summary is attached to terminal events
type Summary struct {
	Outcome     config.BattleStateID
	Elapsed     time.Duration
	MaxCombo    int
	TotalClicks int
	TotalDamage int
}

// Event is the envelope for every notification. Only the fields listed on
// the Type are meaningful.
type Event struct {
	Type Type
	At   time.Duration

	SkillID    string
	FragmentID uint64
	DamageType string
	X, Y       float64

	Amount int
	Level  int
	Combo  int
	Crit   bool

	Interval time.Duration
	PowerUp  config.PowerUpType

	AchievementID string
	Title         string

	Summary *Summary
}

// Stream is the per-world event queue
var Stream = devents.NewEventType[Event]()

// Publish queues e until the next Flush
func Publish(w donburi.World, e Event) {
	Stream.Publish(w, e)
}

// Subscribe registers fn for every flushed event of w
func Subscribe(w donburi.World, fn func(Event)) {
	Stream.Subscribe(w, func(_ donburi.World, e Event) {
		fn(e)
	})
}

// Flush delivers queued events to subscribers
func Flush(w donburi.World) {
	Stream.ProcessEvents(w)
}

// Recorder buffers flushed events until drained
type Recorder struct {
	buf []Event
}

// Record subscribes a new Recorder to w
func Record(w donburi.World) *Recorder {
	r := &Recorder{}
	Subscribe(w, func(e Event) {
		r.buf = append(r.buf, e)
	})
	return r
}

// Drain returns buffered events in publication order and clears the buffer
func (r *Recorder) Drain() []Event {
	out := r.buf
	r.buf = nil
	return out
}

// Len returns the number of buffered events
func (r *Recorder) Len() int {
	return len(r.buf)
}
