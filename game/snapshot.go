package game

import (
	"slices"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/systems"
)

// Rect is a region in play-area coordinates
type Rect struct {
	X, Y, W, H float64
}

// SkillView is a skill tile as the renderer sees it
type SkillView struct {
	ID           string
	Name         string
	Category     string
	Description  string
	Level        int
	ComboCount   int
	Mastered     bool
	Achievements []string
	Tile         Rect
}

// ComboView is the combo/timing state
type ComboView struct {
	Count    int
	MaxCount int
}

// CombatView is the boss encounter state
type CombatView struct {
	State           config.BattleStateID
	BossHP          int
	BossMaxHP       int
	PlayerHP        int
	PlayerMaxHP     int
	Shield          int
	MaxShield       int
	Enraged         bool
	Elapsed         time.Duration
	SpawnInterval   time.Duration
	DifficultyLevel int
}

// FragmentView is a falling fragment
type FragmentView struct {
	ID         uint64
	DamageType string
	Bounds     Rect
	Rotation   float64
	Scale      float64
}

// PowerUpView is the power-up on the field
type PowerUpView struct {
	Type      config.PowerUpType
	Bounds    Rect
	Remaining time.Duration
}

// BuffView is a running power-up effect
type BuffView struct {
	Type      config.PowerUpType
	Remaining time.Duration
}

// AchievementView is one catalog achievement
type AchievementView struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
	Progress    int // Streak progress for combo achievements
}

// Toast is the achievement currently on display
type Toast struct {
	AchievementView
	Remaining time.Duration
}

// Snapshot is a copy of everything a renderer draws. Nothing in it aliases
// engine state.
type Snapshot struct {
	SessionID string
	Mode      config.ModeID
	Phase     config.PhaseID
	Now       time.Duration

	Skills     []SkillView
	HoverSkill string
	CursorX    float64
	CursorY    float64

	Combo        ComboView
	Combat       CombatView
	Fragments    []FragmentView
	PowerUp      *PowerUpView
	Buffs        []BuffView
	Toast        *Toast
	Achievements []AchievementView
	Stats        components.StatsData

	// Set once the battle reached Victory or Defeat
	Summary *events.Summary
}

// Snapshot copies the session state
func (s *Session) Snapshot() Snapshot {
	w := s.world
	at := s.sched.Now()
	combat := systems.GetCombat(w)
	combo := systems.GetCombo(w)

	snap := Snapshot{
		SessionID: s.id.String(),
		Mode:      s.mode,
		Phase:     phaseOf(combat.State),
		Now:       at,
		Combo:     ComboView{Count: combo.Count, MaxCount: combo.MaxCount},
		Combat: CombatView{
			State:           combat.State,
			BossHP:          combat.BossHP,
			BossMaxHP:       combat.BossMaxHP,
			PlayerHP:        combat.PlayerHP,
			PlayerMaxHP:     combat.PlayerMaxHP,
			Shield:          combat.Shield,
			MaxShield:       combat.MaxShield,
			Enraged:         combat.Enraged,
			Elapsed:         combat.Elapsed(at),
			SpawnInterval:   combat.SpawnInterval,
			DifficultyLevel: combat.DifficultyLevel,
		},
		Stats:      *systems.GetStats(w),
		HoverSkill: systems.HoveredSkill(w),
	}
	snap.CursorX, snap.CursorY = systems.CursorPosition(w)

	for _, e := range systems.Skills(w) {
		sk := components.Skill.Get(e)
		obj := components.Object.Get(e)
		snap.Skills = append(snap.Skills, SkillView{
			ID:           sk.ID,
			Name:         sk.Name,
			Category:     sk.Category,
			Description:  sk.Description,
			Level:        sk.Level,
			ComboCount:   sk.ComboCount,
			Mastered:     sk.Mastered(config.Skill.MaxLevel),
			Achievements: slices.Clone(sk.Achievements),
			Tile:         Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
		})
	}

	for _, e := range systems.Fragments(w) {
		f := components.Fragment.Get(e)
		obj := components.Object.Get(e)
		snap.Fragments = append(snap.Fragments, FragmentView{
			ID:         f.ID,
			DamageType: f.Type.Name,
			Bounds:     Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
			Rotation:   f.Rotation,
			Scale:      f.Scale,
		})
	}

	if e, ok := systems.ActivePowerUp(w); ok {
		pu := components.PowerUp.Get(e)
		obj := components.Object.Get(e)
		snap.PowerUp = &PowerUpView{
			Type:      pu.Type,
			Bounds:    Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
			Remaining: max(0, pu.Expiry-at),
		}
	}

	buffs := systems.GetBuffs(w)
	for t := config.PowerUpType(0); t < config.PowerUpTypeCount; t++ {
		if slot := buffs.Slots[t]; slot.Active {
			snap.Buffs = append(snap.Buffs, BuffView{Type: t, Remaining: max(0, slot.Expires-at)})
		}
	}

	ach := systems.GetAchievements(w)
	for _, def := range systems.GetRuntime(w).Catalog.Achievements {
		view := AchievementView{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Unlocked:    ach.Unlocked[def.ID],
			Progress:    ach.Streaks[def.ID],
		}
		snap.Achievements = append(snap.Achievements, view)
		if def.ID == ach.Showing {
			snap.Toast = &Toast{
				AchievementView: view,
				Remaining:       max(0, ach.ShowingSince+config.Achievement.ToastDuration-at),
			}
		}
	}

	if combat.State.Terminal() {
		sum := systems.BattleSummary(w)
		snap.Summary = &sum
	}
	return snap
}

func phaseOf(state config.BattleStateID) config.PhaseID {
	switch state {
	case config.BattleActive:
		return config.PhaseBattle
	case config.BattleVictory:
		return config.PhaseVictory
	case config.BattleDefeat:
		return config.PhaseDefeat
	}
	return config.PhaseSkills
}
