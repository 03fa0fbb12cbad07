package systems

import (
	"cmp"
	"slices"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/yohamta/donburi"
)

// GetRuntime returns the world's session services. Panics when the world was
// not set up by a session, which is a programming error.
func GetRuntime(w donburi.World) *components.RuntimeData {
	entry, ok := components.Runtime.First(w)
	if !ok {
		panic("systems: world has no Runtime")
	}
	return components.Runtime.Get(entry)
}

func scheduler(w donburi.World) *clock.Scheduler {
	return GetRuntime(w).Clock
}

func now(w donburi.World) time.Duration {
	return GetRuntime(w).Clock.Now()
}

func rng(w donburi.World) components.Random {
	return GetRuntime(w).Rand
}

// GetCombo returns the singleton ComboState
func GetCombo(w donburi.World) *components.ComboData {
	entry, ok := components.Combo.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Combo))
	}
	return components.Combo.Get(entry)
}

// GetCombat returns the singleton CombatState, creating it Idle with full pools
func GetCombat(w donburi.World) *components.CombatData {
	entry, ok := components.Combat.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Combat))
		components.Combat.SetValue(entry, components.CombatData{
			State:           config.BattleIdle,
			BossHP:          config.Boss.MaxHP,
			BossMaxHP:       config.Boss.MaxHP,
			PlayerHP:        config.Player.MaxHP,
			PlayerMaxHP:     config.Player.MaxHP,
			MaxShield:       config.Player.MaxShield,
			SpawnInterval:   config.Spawner.InitialInterval,
			SpeedMultiplier: 1,
		})
	}
	return components.Combat.Get(entry)
}

// GetStats returns the singleton session counters
func GetStats(w donburi.World) *components.StatsData {
	entry, ok := components.Stats.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Stats))
	}
	return components.Stats.Get(entry)
}

// GetSkillBoard returns the singleton board state
func GetSkillBoard(w donburi.World) *components.SkillBoardData {
	entry, ok := components.SkillBoard.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.SkillBoard))
	}
	return components.SkillBoard.Get(entry)
}

// GetBuffs returns the singleton buff slots
func GetBuffs(w donburi.World) *components.BuffsData {
	entry, ok := components.Buffs.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Buffs))
	}
	return components.Buffs.Get(entry)
}

// GetAchievements returns the singleton unlocked set and toast queue
func GetAchievements(w donburi.World) *components.AchievementsData {
	entry, ok := components.Achievements.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Achievements))
		components.Achievements.SetValue(entry, components.AchievementsData{
			Unlocked: make(map[string]bool),
			Streaks:  make(map[string]int),
		})
	}
	return components.Achievements.Get(entry)
}

// Skills returns every skill entry in catalog order
func Skills(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Skill.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return components.Skill.Get(a).Order - components.Skill.Get(b).Order
	})
	return entries
}

// FindSkill returns the entry of the skill with id
func FindSkill(w donburi.World, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Skill.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Skill.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// Fragments returns every live fragment entry in spawn order
func Fragments(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Fragment.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Fragment.Get(a).ID, components.Fragment.Get(b).ID)
	})
	return entries
}

// ActivePowerUp returns the field power-up, if any
func ActivePowerUp(w donburi.World) (*donburi.Entry, bool) {
	return tags.PowerUp.First(w)
}
