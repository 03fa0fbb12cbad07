package systems

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/systems/factory"
	"github.com/yohamta/donburi"
)

// spawnableTypes lists the power-ups that can appear. multiLevel only makes
// sense while skills still accept levels.
func spawnableTypes(w donburi.World) []config.PowerUpType {
	types := []config.PowerUpType{config.PowerUpDoubleExp, config.PowerUpComboExtender}
	if SkillsUnlocked(w) {
		types = append(types, config.PowerUpMultiLevel)
	}
	return append(types, config.PowerUpCriticalHit)
}

// MaybeSpawnPowerUp rolls the per-action spawn chance. At most one power-up
// exists at a time.
func MaybeSpawnPowerUp(w donburi.World) {
	if _, ok := ActivePowerUp(w); ok {
		return
	}
	if GetCombat(w).State.Terminal() {
		return
	}
	r := rng(w)
	if r.Float64() >= config.PowerUp.SpawnChance {
		return
	}
	types := spawnableTypes(w)
	t := types[r.IntN(len(types))]
	size := config.PowerUp.Size
	x := r.Float64() * (float64(config.C.Width) - size)
	y := r.Float64() * (float64(config.C.Height) - size)
	SpawnPowerUp(w, t, x, y)
}

// SpawnPowerUp places a power-up of type t and arms its field lifetime.
// Returns nil when one is already on the field.
func SpawnPowerUp(w donburi.World, t config.PowerUpType, x, y float64) *donburi.Entry {
	if _, ok := ActivePowerUp(w); ok {
		return nil
	}
	sched := scheduler(w)
	entry := factory.CreatePowerUp(w, t, x, y, sched.Now())
	pu := components.PowerUp.Get(entry)
	pu.Timer = sched.After("powerup-field", config.PowerUp.FieldLifetime, func(at time.Duration) {
		expirePowerUp(w, entry, at)
	})

	events.Publish(w, events.Event{Type: events.PowerUpSpawned, At: sched.Now(), PowerUp: t, X: x, Y: y})
	return entry
}

func expirePowerUp(w donburi.World, entry *donburi.Entry, at time.Duration) {
	if !entry.Valid() {
		return
	}
	t := components.PowerUp.Get(entry).Type
	factory.Destroy(w, entry)
	events.Publish(w, events.Event{Type: events.PowerUpExpired, At: at, PowerUp: t})
}

// ClearPowerUp removes the field power-up without an expiry event
func ClearPowerUp(w donburi.World) {
	entry, ok := ActivePowerUp(w)
	if !ok {
		return
	}
	if timer := components.PowerUp.Get(entry).Timer; timer != nil {
		timer.Stop()
	}
	factory.Destroy(w, entry)
}

// CollectPowerUp consumes the power-up at entry and applies its effect
func CollectPowerUp(w donburi.World, entry *donburi.Entry, at time.Duration) {
	if !entry.Valid() {
		return
	}
	pu := components.PowerUp.Get(entry)
	t := pu.Type
	if pu.Timer != nil {
		pu.Timer.Stop()
	}
	x, y := components.Object.Get(entry).Center()
	factory.Destroy(w, entry)

	GetStats(w).PowerUpsCollected++
	events.Publish(w, events.Event{Type: events.PowerUpCollected, At: at, PowerUp: t, X: x, Y: y})

	if t == config.PowerUpMultiLevel {
		applyMultiLevel(w, at)
		return
	}
	activateBuff(w, t)
}

// activateBuff starts the effect of t. Collecting a type that is already
// running refreshes its expiry.
func activateBuff(w donburi.World, t config.PowerUpType) {
	buffs := GetBuffs(w)
	slot := &buffs.Slots[t]
	if slot.Timer != nil {
		slot.Timer.Stop()
	}
	sched := scheduler(w)
	slot.Active = true
	slot.Expires = sched.Now() + config.PowerUp.EffectDuration
	slot.Timer = sched.After("buff-"+t.String(), config.PowerUp.EffectDuration, func(end time.Duration) {
		slot := &GetBuffs(w).Slots[t]
		slot.Active = false
		slot.Timer = nil
		events.Publish(w, events.Event{Type: events.BuffExpired, At: end, PowerUp: t})
	})
}

// ClearBuffs stops every running effect without expiry events
func ClearBuffs(w donburi.World) {
	buffs := GetBuffs(w)
	for i := range buffs.Slots {
		slot := &buffs.Slots[i]
		if slot.Timer != nil {
			slot.Timer.Stop()
		}
		*slot = components.Buff{}
	}
}

// BuffActive reports whether the effect of t is running
func BuffActive(w donburi.World, t config.PowerUpType) bool {
	return GetBuffs(w).Active(t)
}
