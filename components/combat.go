package components

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/yohamta/donburi"
)

// CombatData is a singleton holding the boss encounter
type CombatData struct {
	State config.BattleStateID

	BossHP      int
	BossMaxHP   int
	PlayerHP    int
	PlayerMaxHP int
	Shield      int
	MaxShield   int
	DamageTaken int // Player HP lost, shield absorption excluded

	Enraged bool // One-way latch

	StartedAt time.Duration
	EndedAt   time.Duration

	// Spawner state
	SpawnInterval   time.Duration
	SpeedMultiplier float64
	DifficultyLevel int
	NextFragmentID  uint64

	// Timers acquired at Active entry, released on every exit from Active
	Timers     *clock.Group
	SpawnTimer *clock.Timer
}

// Elapsed returns encounter time at now, frozen once terminal
func (c *CombatData) Elapsed(now time.Duration) time.Duration {
	switch {
	case c.State == config.BattleIdle:
		return 0
	case c.State.Terminal():
		return c.EndedAt - c.StartedAt
	}
	return now - c.StartedAt
}

var Combat = donburi.NewComponentType[CombatData]()

// ComboData is a singleton with the combo/timing state
type ComboData struct {
	Count      int
	MaxCount   int
	LastAction time.Duration
	HasAction  bool // False until the first scoring action
}

var Combo = donburi.NewComponentType[ComboData]()

// StatsData is a singleton of session counters
type StatsData struct {
	TotalClicks       int // Scoring actions: skill clicks and fragment hits
	PowerClicks       int
	Hits              int
	Misses            int
	Crits             int
	TotalDamage       int
	PowerUpsCollected int
}

var Stats = donburi.NewComponentType[StatsData]()
