package systems

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/yohamta/donburi"
)

// SkillClickResult describes the outcome of a click on a skill tile. A click
// that was not applied leaves every level unchanged.
type SkillClickResult struct {
	SkillID       string
	Applied       bool
	PreviousLevel int
	NewLevel      int
	Gain          int
	Combo         int
	LeveledUp     bool
	PowerClick    bool
	Defeated      bool
}

// SkillsUnlocked reports whether skill tiles accept clicks: only in the skill
// arcade, and only before the boss battle begins
func SkillsUnlocked(w donburi.World) bool {
	return GetRuntime(w).Mode == config.ModeNormal && GetCombat(w).State == config.BattleIdle
}

// ApplySkillClick levels the skill with id. Clicking a mastered, unknown or
// locked skill is a no-op.
func ApplySkillClick(w donburi.World, id string, at time.Duration) SkillClickResult {
	result := SkillClickResult{SkillID: id}
	if !SkillsUnlocked(w) {
		return result
	}
	entry, ok := FindSkill(w, id)
	if !ok {
		return result
	}
	skill := components.Skill.Get(entry)
	if skill.Mastered(config.Skill.MaxLevel) {
		result.PreviousLevel = skill.Level
		result.NewLevel = skill.Level
		return result
	}

	combo := RegisterAction(w, at)
	power := combo > 0 && combo%config.Combo.Threshold == 0
	if !power && GetBuffs(w).Active(config.PowerUpCriticalHit) {
		power = rng(w).Float64() < config.PowerUp.CriticalPowerChance
	}

	gain := config.Skill.ClickGain
	if power {
		gain = config.Skill.PowerClickGain
	}
	if GetBuffs(w).Active(config.PowerUpDoubleExp) {
		gain *= config.PowerUp.DoubleExpFactor
	}

	skill.ComboCount = combo
	GetSkillBoard(w).LastClicked = id

	stats := GetStats(w)
	stats.TotalClicks++
	if power {
		stats.PowerClicks++
	}

	result = applyLevelGain(w, entry, gain, at)
	result.Applied = true
	result.Combo = combo
	result.PowerClick = power

	MaybeSpawnPowerUp(w)
	return result
}

// applyLevelGain raises a skill by gain, clamped to the max level, and
// publishes the resulting progression events
func applyLevelGain(w donburi.World, entry *donburi.Entry, gain int, at time.Duration) SkillClickResult {
	skill := components.Skill.Get(entry)
	prev := skill.Level
	next := min(prev+gain, config.Skill.MaxLevel)
	skill.Level = next

	result := SkillClickResult{
		SkillID:       skill.ID,
		PreviousLevel: prev,
		NewLevel:      next,
		Gain:          next - prev,
	}
	if next == prev {
		return result
	}

	for _, m := range config.Skill.Milestones {
		if prev < m.Level && next >= m.Level {
			skill.Achievements = append(skill.Achievements, m.Name)
		}
	}

	obj := components.Object.Get(entry)
	cx, cy := obj.Center()
	base := events.Event{At: at, SkillID: skill.ID, Level: next, X: cx, Y: cy}

	progress := base
	progress.Type = events.SkillProgress
	progress.Amount = next - prev
	events.Publish(w, progress)

	step := config.Skill.LevelUpStep
	if step > 0 && prev/step < next/step {
		result.LeveledUp = true
		levelUp := base
		levelUp.Type = events.SkillLevelUp
		events.Publish(w, levelUp)
	}

	if next >= config.Skill.MaxLevel {
		result.Defeated = true
		defeated := base
		defeated.Type = events.SkillDefeated
		events.Publish(w, defeated)
		checkAllMastered(w, at)
	}
	return result
}

func checkAllMastered(w donburi.World, at time.Duration) {
	board := GetSkillBoard(w)
	if board.AllMastered {
		return
	}
	for _, e := range Skills(w) {
		if !components.Skill.Get(e).Mastered(config.Skill.MaxLevel) {
			return
		}
	}
	board.AllMastered = true
	events.Publish(w, events.Event{Type: events.AllSkillsMastered, At: at})
}

// applyMultiLevel grants the multiLevel jump to the last clicked skill, or to
// the least advanced one when that skill is already mastered
func applyMultiLevel(w donburi.World, at time.Duration) {
	if !SkillsUnlocked(w) {
		return
	}
	target, ok := FindSkill(w, GetSkillBoard(w).LastClicked)
	if !ok || components.Skill.Get(target).Mastered(config.Skill.MaxLevel) {
		target = nil
		for _, e := range Skills(w) {
			s := components.Skill.Get(e)
			if s.Mastered(config.Skill.MaxLevel) {
				continue
			}
			if target == nil || s.Level < components.Skill.Get(target).Level {
				target = e
			}
		}
	}
	if target == nil {
		return
	}
	applyLevelGain(w, target, config.PowerUp.MultiLevelJump, at)
}
