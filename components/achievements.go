package components

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/yohamta/donburi"
)

// AchievementsData is a singleton with the unlocked set and the toast queue
type AchievementsData struct {
	Unlocked map[string]bool
	Order    []string // Unlock order

	Pending      []string // Waiting for a display slot
	Showing      string   // Toast on display, "" when none
	ShowingSince time.Duration
	ToastTimer   *clock.Timer

	// Streak progress toward combo rules, cleared on combo reset
	Streaks map[string]int
}

var Achievements = donburi.NewComponentType[AchievementsData]()
