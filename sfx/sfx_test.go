package sfx

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/events"
)

func TestForCoversBattleEvents(t *testing.T) {
	tests := []struct {
		evt   events.Event
		notes int
	}{
		{events.Event{Type: events.FragmentHit}, 1},
		{events.Event{Type: events.FragmentMissed}, 1},
		{events.Event{Type: events.SkillLevelUp}, 2},
		{events.Event{Type: events.PowerUpCollected}, 2},
		{events.Event{Type: events.Victory}, 3},
		{events.Event{Type: events.Defeat}, 2},
		{events.Event{Type: events.ComboReset}, 0},
		{events.Event{Type: events.BattleStarted}, 0},
	}
	for _, tt := range tests {
		if got := len(For(tt.evt)); got != tt.notes {
			t.Errorf("%v: %d notes, want %d", tt.evt.Type, got, tt.notes)
		}
	}

	hit := For(events.Event{Type: events.FragmentHit})[0]
	crit := For(events.Event{Type: events.FragmentHit, Crit: true})[0]
	if crit.Freq <= hit.Freq {
		t.Errorf("crit tone %v not above hit tone %v", crit.Freq, hit.Freq)
	}
}

func TestPCMLayout(t *testing.T) {
	const rate = 8000
	notes := []Note{{440, 100 * time.Millisecond}, {880, 50 * time.Millisecond}}
	pcm := PCM(notes, rate, 1)

	if want := (800 + 400) * 4; len(pcm) != want {
		t.Fatalf("len = %d bytes, want %d", len(pcm), want)
	}
	for i := 0; i < len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}
	if first := int16(binary.LittleEndian.Uint16(pcm)); first != 0 {
		t.Errorf("first sample = %d, want 0", first)
	}
}

func TestReleaseFadesOut(t *testing.T) {
	const total = 1000
	peak := 0.0
	for i := range total / 10 {
		peak = max(peak, At(float64(i)*0.05, i, total))
	}
	tail := 0.0
	for i := total - 10; i < total; i++ {
		v := At(float64(i)*0.05, i, total)
		tail = max(tail, v, -v)
	}
	if tail >= peak/10 {
		t.Errorf("tail amplitude %v not well below peak %v", tail, peak)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	for _, b := range PCM([]Note{{440, 10 * time.Millisecond}}, 8000, 0) {
		if b != 0 {
			t.Fatal("muted PCM has a non-zero byte")
		}
	}
}
