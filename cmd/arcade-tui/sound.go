package main

import (
	"math"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/sfx"
	"github.com/gopxl/beep"
	beepfx "github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

var sampleRate = beep.SampleRate(config.Audio.SampleRate)

// tone streams one note
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
}

func newTone(n sfx.Note) *tone {
	return &tone{freq: n.Freq, length: n.Samples(config.Audio.SampleRate)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		v := sfx.At(t.phase, t.position, t.length)
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Sound plays short cues for arcade events
type Sound struct {
	mixer *beep.Mixer
	on    bool
}

// NewSound opens the speaker. A muted Sound never touches the audio device.
func NewSound(muted bool) (*Sound, error) {
	s := &Sound{mixer: &beep.Mixer{}}
	if muted {
		return s, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return s, err
	}
	speaker.Play(s.mixer)
	s.on = true
	return s, nil
}

func (s *Sound) play(streamers ...beep.Streamer) {
	if !s.on {
		return
	}
	vol := &beepfx.Volume{Streamer: beep.Seq(streamers...), Base: 2, Volume: -2}
	speaker.Lock()
	s.mixer.Add(vol)
	speaker.Unlock()
}

// Consume plays a cue for each event that has one
func (s *Sound) Consume(evts []events.Event) {
	for _, e := range evts {
		notes := sfx.For(e)
		if len(notes) == 0 {
			continue
		}
		streamers := make([]beep.Streamer, len(notes))
		for i, n := range notes {
			streamers[i] = newTone(n)
		}
		s.play(streamers...)
	}
}

// Close stops playback and releases the device
func (s *Sound) Close() {
	if !s.on {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.on = false
}
