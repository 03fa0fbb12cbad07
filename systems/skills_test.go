package systems

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
)

func clickSkill(tw *testWorld, id string, at time.Duration) SkillClickResult {
	return ApplySkillClick(tw.w, id, at)
}

func skillLevel(t *testing.T, tw *testWorld, id string) int {
	t.Helper()
	e, ok := FindSkill(tw.w, id)
	if !ok {
		t.Fatalf("skill %q not found", id)
	}
	return components.Skill.Get(e).Level
}

func setLevel(t *testing.T, tw *testWorld, id string, level int) {
	t.Helper()
	e, ok := FindSkill(tw.w, id)
	if !ok {
		t.Fatalf("skill %q not found", id)
	}
	components.Skill.Get(e).Level = level
}

func TestSkillClickGains(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())

	// Combos 0..4 give +1, combo 5 is a power click
	var res SkillClickResult
	for i := range 6 {
		res = clickSkill(tw, "go", time.Duration(i)*100*time.Millisecond)
	}
	if !res.PowerClick || res.Gain != config.Skill.PowerClickGain {
		t.Fatalf("6th click = %+v, want power click +%d", res, config.Skill.PowerClickGain)
	}
	if got := skillLevel(t, tw, "go"); got != 10 {
		t.Fatalf("level = %d, want 10", got)
	}
	if !res.LeveledUp {
		t.Error("crossing level 10 should report leveledUp")
	}
	if GetStats(tw.w).PowerClicks != 1 {
		t.Errorf("PowerClicks = %d, want 1", GetStats(tw.w).PowerClicks)
	}
}

func TestSkillClickDoubleExp(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	activateBuff(tw.w, config.PowerUpDoubleExp)

	res := clickSkill(tw, "sql", 0)
	if res.Gain != 2 || res.NewLevel != 2 {
		t.Errorf("doubleExp click = %+v, want +2", res)
	}
}

func TestCriticalHitBuffRollsPowerClicks(t *testing.T) {
	r := &stubRand{floats: []float64{0.1}, def: 0.99}
	tw := newTestWorld(t, config.ModeNormal, r)
	activateBuff(tw.w, config.PowerUpCriticalHit)

	res := clickSkill(tw, "react", 0)
	if !res.PowerClick || res.NewLevel != config.Skill.PowerClickGain {
		t.Errorf("click with criticalHit and a 0.1 roll = %+v, want power click", res)
	}
}

func TestSkillLevelClampedAndMasteredIsNoOp(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	setLevel(t, tw, "python", 98)

	// Two clicks reach 100, the rest are ignored
	var res SkillClickResult
	for i := range 6 {
		res = clickSkill(tw, "python", time.Duration(i)*100*time.Millisecond)
	}
	if got := skillLevel(t, tw, "python"); got != 100 {
		t.Fatalf("level = %d, want 100", got)
	}
	evts := tw.flush()
	if countType(evts, events.SkillDefeated) != 1 {
		t.Errorf("expected one SkillDefeated, got %d", countType(evts, events.SkillDefeated))
	}

	clicksBefore := GetStats(tw.w).TotalClicks
	res = clickSkill(tw, "python", time.Second)
	if res.Applied || res.NewLevel != 100 {
		t.Errorf("click on mastered skill = %+v, want no-op", res)
	}
	if GetStats(tw.w).TotalClicks != clicksBefore {
		t.Error("no-op click was counted")
	}
}

func TestMilestonesRecorded(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	setLevel(t, tw, "docker", 24)
	clickSkill(tw, "docker", 0)
	setLevel(t, tw, "docker", 74)
	clickSkill(tw, "docker", 5*time.Second)

	e, _ := FindSkill(tw.w, "docker")
	got := components.Skill.Get(e).Achievements
	want := []string{"Apprentice", "Expert"}
	if !slices.Equal(got, want) {
		t.Errorf("milestones = %v, want %v", got, want)
	}
}

func TestAllSkillsMasteredOnce(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	for _, e := range Skills(tw.w) {
		components.Skill.Get(e).Level = 99
	}

	at := time.Duration(0)
	for _, e := range Skills(tw.w) {
		at += 2 * time.Second
		clickSkill(tw, components.Skill.Get(e).ID, at)
	}
	evts := tw.flush()
	if n := countType(evts, events.AllSkillsMastered); n != 1 {
		t.Fatalf("AllSkillsMastered published %d times, want 1", n)
	}
	if !GetSkillBoard(tw.w).AllMastered {
		t.Error("board not latched")
	}
}

func TestSkillsLockedOutsideSkillArcade(t *testing.T) {
	t.Run("challenge mode", func(t *testing.T) {
		tw := newTestWorld(t, config.ModeChallenge, unlucky())
		if res := clickSkill(tw, "go", 0); res.Applied {
			t.Errorf("skill click applied in challenge mode: %+v", res)
		}
	})
	t.Run("during battle", func(t *testing.T) {
		tw := newTestWorld(t, config.ModeNormal, unlucky())
		StartBattle(tw.w)
		if res := clickSkill(tw, "go", 0); res.Applied {
			t.Errorf("skill click applied during battle: %+v", res)
		}
	})
}

func TestMultiLevelTargetsLastClicked(t *testing.T) {
	tw := newTestWorld(t, config.ModeNormal, unlucky())
	clickSkill(tw, "typescript", 0)

	e := SpawnPowerUp(tw.w, config.PowerUpMultiLevel, 10, 10)
	CollectPowerUp(tw.w, e, 0)
	if got := skillLevel(t, tw, "typescript"); got != 1+config.PowerUp.MultiLevelJump {
		t.Errorf("typescript level = %d, want %d", got, 1+config.PowerUp.MultiLevelJump)
	}

	// Mastered last-clicked skill falls back to the least advanced one
	setLevel(t, tw, "typescript", 100)
	for _, s := range Skills(tw.w) {
		if id := components.Skill.Get(s).ID; id != "typescript" && id != "nodejs" {
			components.Skill.Get(s).Level = 50
		}
	}
	e = SpawnPowerUp(tw.w, config.PowerUpMultiLevel, 10, 10)
	CollectPowerUp(tw.w, e, time.Second)
	if got := skillLevel(t, tw, "nodejs"); got != config.PowerUp.MultiLevelJump {
		t.Errorf("nodejs level = %d, want %d", got, config.PowerUp.MultiLevelJump)
	}
}

func TestSkillLevelsStayInRange(t *testing.T) {
	for seed := range uint64(10) {
		r := rand.New(rand.NewPCG(seed, 7))
		tw := newTestWorld(t, config.ModeNormal, r)
		skills := Skills(tw.w)
		var at time.Duration
		for range 2000 {
			at += time.Duration(r.IntN(1200)) * time.Millisecond
			s := components.Skill.Get(skills[r.IntN(len(skills))])
			ResolveClick(tw.w, 0, 0, at) // misses every tile
			ApplySkillClick(tw.w, s.ID, at)
			if e, ok := ActivePowerUp(tw.w); ok && r.IntN(2) == 0 {
				CollectPowerUp(tw.w, e, at)
			}
			tw.advance(50 * time.Millisecond)
			for _, e := range skills {
				if l := components.Skill.Get(e).Level; l < 0 || l > config.Skill.MaxLevel {
					t.Fatalf("seed %d: level %d out of range", seed, l)
				}
			}
			if GetSkillBoard(tw.w).AllMastered {
				break
			}
		}
	}
}
