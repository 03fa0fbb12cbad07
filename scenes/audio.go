package scenes

import (
	"fmt"
	"strings"
	"sync"

	cfg "github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ebiten allows a single audio context per process
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

func sharedContext() *audio.Context {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// Audio plays generated cues for arcade events. Rendered PCM is cached
// per note sequence.
type Audio struct {
	ctx    *audio.Context
	volume float64
	cache  map[string][]byte
}

func NewAudio() *Audio {
	return &Audio{
		ctx:    sharedContext(),
		volume: cfg.Audio.SFXVolume,
		cache:  make(map[string][]byte),
	}
}

func key(notes []sfx.Note) string {
	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&b, "%g/%d;", n.Freq, n.Duration)
	}
	return b.String()
}

// Consume plays a cue for each event that has one
func (a *Audio) Consume(evts []events.Event) {
	if a.volume <= 0 {
		return
	}
	for _, e := range evts {
		notes := sfx.For(e)
		if len(notes) == 0 {
			continue
		}
		k := key(notes)
		pcm, ok := a.cache[k]
		if !ok {
			pcm = sfx.PCM(notes, cfg.Audio.SampleRate, 1)
			a.cache[k] = pcm
		}
		player := a.ctx.NewPlayerFromBytes(pcm)
		player.SetVolume(a.volume)
		player.Play()
	}
}
