package effects

import (
	"math"
	"testing"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
)

func kinds(cues []Cue) []CueKind {
	out := make([]CueKind, len(cues))
	for i, c := range cues {
		out[i] = c.Kind
	}
	return out
}

func TestConsumeMapsEventsToCues(t *testing.T) {
	tests := []struct {
		name string
		evt  events.Event
		want []CueKind
	}{
		{"hit", events.Event{Type: events.FragmentHit, DamageType: "Go", Amount: 28}, []CueKind{CueSpark, CueNumber}},
		{"miss", events.Event{Type: events.FragmentMissed}, []CueKind{CueFlash}},
		{"level up", events.Event{Type: events.SkillLevelUp, Level: 10}, []CueKind{CueBurst}},
		{"mastered", events.Event{Type: events.SkillDefeated}, []CueKind{CueCelebrate}},
		{"achievement", events.Event{Type: events.AchievementUnlocked, Title: "Hello, World"}, []CueKind{CueToast}},
		{"enraged", events.Event{Type: events.Enraged}, []CueKind{CueBossFlash}},
		{"victory", events.Event{Type: events.Victory}, []CueKind{CueBanner}},
		{"combo reset", events.Event{Type: events.ComboReset}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBridge()
			b.Consume([]events.Event{tt.evt})
			got := kinds(b.Cues())
			if len(got) != len(tt.want) {
				t.Fatalf("cues = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cue %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCritNumberIsStyled(t *testing.T) {
	b := NewBridge()
	b.Consume([]events.Event{{Type: events.FragmentHit, DamageType: "Go", Amount: 56, Crit: true}})
	num := b.Cues()[1]
	if num.Text != "-56!" || !num.Crit || num.Scale <= 1 {
		t.Errorf("crit number = %+v", num)
	}
	if spark := b.Cues()[0]; spark.Color != config.Blue {
		t.Errorf("spark color = %v, want the Go fragment color", spark.Color)
	}
}

func TestCuesFadeAndExpire(t *testing.T) {
	b := NewBridge()
	b.Consume([]events.Event{{Type: events.FragmentHit, DamageType: "SQL", Amount: 18}})

	b.Update(config.Effects.SparkDuration / 2)
	cues := b.Cues()
	if len(cues) != 2 {
		t.Fatalf("cues = %v", kinds(cues))
	}
	if cues[0].Alpha <= 0 || cues[0].Alpha >= 1 {
		t.Errorf("spark alpha half way = %v", cues[0].Alpha)
	}
	if cues[1].Offset <= 0 {
		t.Errorf("number has not risen: %v", cues[1].Offset)
	}

	b.Update(config.Effects.SparkDuration)
	if got := kinds(b.Cues()); len(got) != 1 || got[0] != CueNumber {
		t.Fatalf("after spark expiry cues = %v", got)
	}
	b.Update(config.Effects.NumberDuration)
	if b.Len() != 0 {
		t.Errorf("%d cues left", b.Len())
	}
}

func TestMissShakesThenSettles(t *testing.T) {
	b := NewBridge()
	if x, y := b.Shake(); x != 0 || y != 0 {
		t.Fatal("idle bridge shakes")
	}
	b.Consume([]events.Event{{Type: events.FragmentMissed}})
	b.Update(10 * time.Millisecond)
	x, y := b.Shake()
	if x == 0 && y == 0 {
		t.Error("miss did not shake")
	}
	limit := config.Effects.ShakeIntensity
	if math.Abs(x) > limit || math.Abs(y) > limit {
		t.Errorf("shake (%v, %v) exceeds intensity %v", x, y, limit)
	}

	b.Update(config.Effects.ShakeDuration)
	if x, y := b.Shake(); x != 0 || y != 0 {
		t.Errorf("shake after duration = (%v, %v)", x, y)
	}
}

func TestBossSway(t *testing.T) {
	if got := BossSway(0, false); got != 0 {
		t.Errorf("sway at 0 = %v", got)
	}
	for ms := 0; ms < 5000; ms += 37 {
		d := time.Duration(ms) * time.Millisecond
		if v := BossSway(d, false); math.Abs(v) > config.Boss.SwayAmplitude+1e-9 {
			t.Fatalf("calm sway %v at %v", v, d)
		}
		if v := BossSway(d, true); math.Abs(v) > config.Boss.EnragedSwayAmplitude+1e-9 {
			t.Fatalf("enraged sway %v at %v", v, d)
		}
	}
	// Quarter period peaks
	calm := BossSway(time.Duration(float64(time.Second)/(4*config.Boss.SwayFrequency)), false)
	if math.Abs(calm-config.Boss.SwayAmplitude) > 1e-6 {
		t.Errorf("calm peak = %v, want %v", calm, config.Boss.SwayAmplitude)
	}
}

func TestResetDropsCues(t *testing.T) {
	b := NewBridge()
	b.Consume([]events.Event{{Type: events.Defeat}, {Type: events.FragmentMissed}})
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("%d cues after reset", b.Len())
	}
	if x, y := b.Shake(); x != 0 || y != 0 {
		t.Error("shake survived reset")
	}
}
