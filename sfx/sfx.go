// Package sfx generates the short tone sequences played for arcade events.
// Surfaces pick their own output: beep in the terminal, ebiten audio in
// the window.
package sfx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/events"
)

// Note is one sine tone with a linear release
type Note struct {
	Freq     float64
	Duration time.Duration
}

// For returns the notes played for e, nil when the event is silent
func For(e events.Event) []Note {
	switch e.Type {
	case events.FragmentHit:
		if e.Crit {
			return []Note{{990, 60 * time.Millisecond}}
		}
		return []Note{{660, 60 * time.Millisecond}}
	case events.FragmentMissed:
		return []Note{{110, 150 * time.Millisecond}}
	case events.SkillLevelUp:
		return []Note{{523, 80 * time.Millisecond}, {784, 80 * time.Millisecond}}
	case events.PowerUpCollected:
		return []Note{{880, 50 * time.Millisecond}, {1320, 50 * time.Millisecond}}
	case events.Victory:
		return []Note{{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}}
	case events.Defeat:
		return []Note{{392, 150 * time.Millisecond}, {262, 300 * time.Millisecond}}
	}
	return nil
}

// Samples returns the number of frames n lasts at sampleRate
func (n Note) Samples(sampleRate int) int {
	return int(n.Duration * time.Duration(sampleRate) / time.Second)
}

// At returns the mono sample at frame i of length total. phase is in cycles.
func At(phase float64, i, total int) float64 {
	env := 1 - float64(i)/float64(total)
	return math.Sin(2*math.Pi*phase) * env
}

// PCM renders notes back to back as 16-bit little endian stereo
func PCM(notes []Note, sampleRate int, volume float64) []byte {
	frames := 0
	for _, n := range notes {
		frames += n.Samples(sampleRate)
	}
	buf := make([]byte, 0, frames*4)
	for _, n := range notes {
		total := n.Samples(sampleRate)
		phase := 0.0
		for i := range total {
			v := int16(At(phase, i, total) * volume * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			phase += n.Freq / float64(sampleRate)
			phase -= math.Floor(phase)
		}
	}
	return buf
}
