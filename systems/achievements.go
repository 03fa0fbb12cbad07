package systems

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/yohamta/donburi"
)

// RuleContext is the read-only view achievement rules are evaluated over
type RuleContext struct {
	Combo    components.ComboData
	Combat   components.CombatData
	Stats    components.StatsData
	Levels   []int
	MaxLevel int
	Elapsed  time.Duration
	Mastered bool
}

// Rule is a pure predicate over a RuleContext
type Rule func(ctx RuleContext) bool

// streakTargets are the combo rules whose progress is tracked between resets
var streakTargets = map[string]int{
	"combo-starter": 5,
	"combo-master":  10,
}

// Rules maps achievement ids to their predicates
var Rules = map[string]Rule{
	"first-click": func(ctx RuleContext) bool {
		return ctx.Stats.TotalClicks >= 1
	},
	"combo-starter": func(ctx RuleContext) bool {
		return ctx.Combo.Count >= streakTargets["combo-starter"]
	},
	"combo-master": func(ctx RuleContext) bool {
		return ctx.Combo.Count >= streakTargets["combo-master"]
	},
	"combo-legend": func(ctx RuleContext) bool {
		return ctx.Combo.MaxCount >= 25
	},
	"skill-master": func(ctx RuleContext) bool {
		for _, l := range ctx.Levels {
			if l >= ctx.MaxLevel {
				return true
			}
		}
		return false
	},
	"polyglot": func(ctx RuleContext) bool {
		return ctx.Mastered
	},
	"power-player": func(ctx RuleContext) bool {
		return ctx.Stats.PowerUpsCollected >= 1
	},
	"critical-thinker": func(ctx RuleContext) bool {
		return ctx.Stats.Crits >= 1
	},
	"click-storm": func(ctx RuleContext) bool {
		return ctx.Stats.TotalClicks >= 100
	},
	"boss-slayer": func(ctx RuleContext) bool {
		return ctx.Combat.State != config.BattleIdle && ctx.Combat.BossHP == 0
	},
	"enraged": func(ctx RuleContext) bool {
		return ctx.Combat.Enraged
	},
	"survivor": func(ctx RuleContext) bool {
		return ctx.Combat.State != config.BattleIdle && ctx.Elapsed >= 60*time.Second
	},
	"untouchable": func(ctx RuleContext) bool {
		return ctx.Combat.State == config.BattleVictory && ctx.Combat.PlayerHP == ctx.Combat.PlayerMaxHP
	},
}

// BuildRuleContext snapshots the world for rule evaluation
func BuildRuleContext(w donburi.World) RuleContext {
	combat := GetCombat(w)
	skills := Skills(w)
	levels := make([]int, 0, len(skills))
	for _, e := range skills {
		levels = append(levels, components.Skill.Get(e).Level)
	}
	return RuleContext{
		Combo:    *GetCombo(w),
		Combat:   *combat,
		Stats:    *GetStats(w),
		Levels:   levels,
		MaxLevel: config.Skill.MaxLevel,
		Elapsed:  combat.Elapsed(now(w)),
		Mastered: GetSkillBoard(w).AllMastered,
	}
}

// EvaluateRule runs the predicate for id. Unknown ids never unlock.
func EvaluateRule(id string, ctx RuleContext) bool {
	rule, ok := Rules[id]
	if !ok {
		return false
	}
	return rule(ctx)
}

// Evaluate checks one achievement and reports whether it is unlocked.
// Re-evaluating an unlocked id is a no-op.
func Evaluate(w donburi.World, id string) bool {
	if GetAchievements(w).Unlocked[id] {
		return true
	}
	if !EvaluateRule(id, BuildRuleContext(w)) {
		return false
	}
	Unlock(w, id)
	return true
}

// EvaluateAll checks every catalog achievement once, in catalog order, then
// refreshes streak progress and fills a free toast slot
func EvaluateAll(w donburi.World) {
	ach := GetAchievements(w)
	ctx := BuildRuleContext(w)
	for _, def := range GetRuntime(w).Catalog.Achievements {
		if ach.Unlocked[def.ID] {
			continue
		}
		if EvaluateRule(def.ID, ctx) {
			Unlock(w, def.ID)
		}
	}
	for id, target := range streakTargets {
		if ach.Unlocked[id] {
			delete(ach.Streaks, id)
			continue
		}
		ach.Streaks[id] = min(ctx.Combo.Count, target)
	}
	showNextToast(w)
}

// Unlock adds id to the unlocked set and queues its toast. Returns false
// when id was already unlocked.
func Unlock(w donburi.World, id string) bool {
	ach := GetAchievements(w)
	if ach.Unlocked[id] {
		return false
	}
	ach.Unlocked[id] = true
	ach.Order = append(ach.Order, id)
	ach.Pending = append(ach.Pending, id)
	return true
}

// ResetStreaks clears in-progress streak achievements
func ResetStreaks(w donburi.World) {
	ach := GetAchievements(w)
	for id := range ach.Streaks {
		ach.Streaks[id] = 0
	}
}

// showNextToast surfaces the oldest pending unlock when no toast is on
// display. Each toast holds the slot for the toast duration.
func showNextToast(w donburi.World) {
	ach := GetAchievements(w)
	if ach.Showing != "" || len(ach.Pending) == 0 {
		return
	}
	sched := scheduler(w)
	if sched.Closed() {
		return
	}

	id := ach.Pending[0]
	ach.Pending = ach.Pending[1:]
	ach.Showing = id
	ach.ShowingSince = sched.Now()
	ach.ToastTimer = sched.After("toast", config.Achievement.ToastDuration, func(time.Duration) {
		a := GetAchievements(w)
		a.Showing = ""
		a.ToastTimer = nil
		showNextToast(w)
	})

	title := id
	if def, ok := GetRuntime(w).Catalog.Achievement(id); ok {
		title = def.Title
	}
	events.Publish(w, events.Event{
		Type:          events.AchievementUnlocked,
		At:            ach.ShowingSince,
		AchievementID: id,
		Title:         title,
	})
}
