package components

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/yohamta/donburi"
)

// PowerUpData is the single collectible on the field
type PowerUpData struct {
	Type      config.PowerUpType
	SpawnedAt time.Duration
	Expiry    time.Duration
	Timer     *clock.Timer // Field lifetime
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

// Buff is the running effect of a collected power-up
type Buff struct {
	Active  bool
	Expires time.Duration
	Timer   *clock.Timer
}

// BuffsData is a singleton with one slot per power-up type, so a type can
// never stack with itself
type BuffsData struct {
	Slots [config.PowerUpTypeCount]Buff
}

// Active reports whether the effect of t is running
func (b *BuffsData) Active(t config.PowerUpType) bool {
	if t < 0 || t >= config.PowerUpTypeCount {
		return false
	}
	return b.Slots[t].Active
}

var Buffs = donburi.NewComponentType[BuffsData]()
