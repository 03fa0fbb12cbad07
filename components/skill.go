package components

import "github.com/yohamta/donburi"

// SkillData is one catalog skill and its progression. The resolv tile the
// player clicks lives in the entity's Object component.
type SkillData struct {
	ID          string
	Name        string
	Category    string
	Description string
	Order       int // Catalog position, drives grid placement

	Level        int
	ComboCount   int      // Combo value of the last click on this skill
	Achievements []string // Milestone names reached, in order
}

// Mastered reports whether the skill reached maxLevel
func (s *SkillData) Mastered(maxLevel int) bool {
	return s.Level >= maxLevel
}

var Skill = donburi.NewComponentType[SkillData]()

// SkillBoardData is a singleton tracking board-wide progression
type SkillBoardData struct {
	LastClicked string // ID of the last skill that accepted a click
	AllMastered bool   // Latched once AllSkillsMastered has been published
}

var SkillBoard = donburi.NewComponentType[SkillBoardData]()
