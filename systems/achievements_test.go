package systems

import (
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
)

func TestEveryCatalogAchievementHasARule(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	for _, def := range GetRuntime(tw.w).Catalog.Achievements {
		if _, ok := Rules[def.ID]; !ok {
			t.Errorf("achievement %q has no rule", def.ID)
		}
	}
}

func TestEvaluateRule(t *testing.T) {
	tests := []struct {
		id   string
		ctx  RuleContext
		want bool
	}{
		{id: "combo-master", ctx: RuleContext{}, want: false},
		{id: "combo-master", ctx: func() RuleContext { c := RuleContext{}; c.Combo.Count = 10; return c }(), want: true},
		{id: "survivor", ctx: func() RuleContext {
			c := RuleContext{Elapsed: 60 * time.Second}
			c.Combat.State = config.BattleActive
			return c
		}(), want: true},
		{id: "survivor", ctx: RuleContext{Elapsed: 90 * time.Second}, want: false}, // no battle
		{id: "boss-slayer", ctx: RuleContext{}, want: false},
		{id: "skill-master", ctx: RuleContext{Levels: []int{3, 100}, MaxLevel: 100}, want: true},
		{id: "no-such-rule", ctx: RuleContext{}, want: false},
	}
	for _, tt := range tests {
		if got := EvaluateRule(tt.id, tt.ctx); got != tt.want {
			t.Errorf("EvaluateRule(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())

	if !Unlock(tw.w, "first-click") {
		t.Fatal("first unlock returned false")
	}
	once := maps.Clone(GetAchievements(tw.w).Unlocked)
	if Unlock(tw.w, "first-click") {
		t.Error("second unlock returned true")
	}
	ach := GetAchievements(tw.w)
	if !maps.Equal(once, ach.Unlocked) || len(ach.Order) != 1 || len(ach.Pending) != 1 {
		t.Errorf("double unlock changed state: %+v", ach)
	}

	if !Evaluate(tw.w, "first-click") || !Evaluate(tw.w, "first-click") {
		t.Error("Evaluate of an unlocked id should report unlocked")
	}
}

func TestToastsAreShownOneAtATime(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	stats := GetStats(tw.w)
	stats.TotalClicks = 100 // first-click and click-storm
	stats.Crits = 1         // critical-thinker

	EvaluateAll(tw.w)
	evts := tw.flush()
	if n := countType(evts, events.AchievementUnlocked); n != 1 {
		t.Fatalf("first tick surfaced %d toasts, want 1", n)
	}
	first, _ := findEvent(evts, events.AchievementUnlocked)
	if first.AchievementID != "first-click" || first.Title != "Hello, World" {
		t.Errorf("first toast = %+v", first)
	}

	var shown []string
	shown = append(shown, first.AchievementID)
	var times []time.Duration
	times = append(times, first.At)
	for range 4 {
		tw.advance(time.Second)
		EvaluateAll(tw.w)
		for _, e := range tw.flush() {
			if e.Type == events.AchievementUnlocked {
				shown = append(shown, e.AchievementID)
				times = append(times, e.At)
			}
		}
	}
	tw.advance(5 * time.Second)
	for _, e := range tw.flush() {
		if e.Type == events.AchievementUnlocked {
			shown = append(shown, e.AchievementID)
			times = append(times, e.At)
		}
	}

	// Catalog order
	want := []string{"first-click", "critical-thinker", "click-storm"}
	if !slices.Equal(shown, want) {
		t.Fatalf("toasts = %v, want %v", shown, want)
	}
	wantTimes := []time.Duration{0, 3 * time.Second, 6 * time.Second}
	if !slices.Equal(times, wantTimes) {
		t.Errorf("toast times = %v, want %v", times, wantTimes)
	}
	if GetAchievements(tw.w).Showing != "" {
		t.Error("toast still showing after the queue drained")
	}
}

func TestComboResetBeforeEvaluationBlocksComboRules(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	for i := range 11 {
		RegisterAction(tw.w, time.Duration(i)*100*time.Millisecond)
	}
	if GetCombo(tw.w).Count != 10 {
		t.Fatalf("combo = %d, want 10", GetCombo(tw.w).Count)
	}
	BreakCombo(tw.w)
	EvaluateAll(tw.w)

	ach := GetAchievements(tw.w)
	if ach.Unlocked["combo-master"] || ach.Unlocked["combo-starter"] {
		t.Error("combo rules unlocked after the combo was reset in the same tick")
	}
}

func TestStreakProgress(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	for i := range 4 {
		RegisterAction(tw.w, time.Duration(i)*100*time.Millisecond)
	}
	EvaluateAll(tw.w)
	ach := GetAchievements(tw.w)
	if ach.Streaks["combo-master"] != 3 || ach.Streaks["combo-starter"] != 3 {
		t.Fatalf("streaks = %v, want 3/3", ach.Streaks)
	}

	BreakCombo(tw.w)
	if ach.Streaks["combo-master"] != 0 {
		t.Errorf("streak not reset on combo reset: %v", ach.Streaks)
	}
}
