// Package effects turns engine events into short-lived visual cues. It reads
// events and snapshots and never writes back into the engine.
package effects

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CueKind selects how a renderer draws a cue
type CueKind int

const (
	CueSpark     CueKind = iota // Fragment destroyed
	CueNumber                   // Floating damage or level number
	CueFlash                    // Red full-field flash on a miss
	CueBurst                    // Skill level-up ring
	CueCelebrate                // Skill mastered
	CueToast                    // Achievement toast
	CueBossFlash                // Boss enraged
	CueBanner                   // Victory / defeat
)

func (k CueKind) String() string {
	switch k {
	case CueSpark:
		return "spark"
	case CueNumber:
		return "number"
	case CueFlash:
		return "flash"
	case CueBurst:
		return "burst"
	case CueCelebrate:
		return "celebrate"
	case CueToast:
		return "toast"
	case CueBossFlash:
		return "bossFlash"
	case CueBanner:
		return "banner"
	}
	return "unknown"
}

// Cue is a copy of a running effect at the current frame
type Cue struct {
	Kind  CueKind
	X, Y  float64
	Text  string
	Crit  bool
	Color color.RGBA

	Alpha  float64 // 1 when spawned, fading to 0
	Offset float64 // Rise for numbers, slide for toasts
	Scale  float64
	Age    time.Duration
}

type cue struct {
	Cue
	duration time.Duration
	fade     *gween.Tween
	motion   *gween.Tween
	grow     *gween.Tween
}

func (c *cue) update(dt float32) bool {
	alpha, done := c.fade.Update(dt)
	c.Alpha = float64(alpha)
	if c.motion != nil {
		v, _ := c.motion.Update(dt)
		c.Offset = float64(v)
	}
	if c.grow != nil {
		v, _ := c.grow.Update(dt)
		c.Scale = float64(v)
	}
	return done
}

// Bridge holds the cues spawned from consumed events
type Bridge struct {
	cues  []*cue
	shake *gween.Tween
	amp   float64
	age   time.Duration
}

// NewBridge returns an empty bridge
func NewBridge() *Bridge {
	return &Bridge{}
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

func (b *Bridge) add(c Cue, d time.Duration, fadeEase ease.TweenFunc) *cue {
	if c.Scale == 0 {
		c.Scale = 1
	}
	c.Alpha = 1
	nc := &cue{
		Cue:      c,
		duration: d,
		fade:     gween.New(1, 0, seconds(d), fadeEase),
	}
	b.cues = append(b.cues, nc)
	return nc
}

func (b *Bridge) startShake() {
	b.amp = config.Effects.ShakeIntensity
	b.shake = gween.New(float32(config.Effects.ShakeIntensity), 0, seconds(config.Effects.ShakeDuration), ease.OutQuad)
}

func fragmentColor(name string) color.RGBA {
	if ft, ok := config.FragmentType(name); ok {
		return ft.Color
	}
	return config.White
}

// Consume spawns cues for evts
func (b *Bridge) Consume(evts []events.Event) {
	fx := config.Effects
	for _, e := range evts {
		switch e.Type {
		case events.FragmentHit:
			col := fragmentColor(e.DamageType)
			spark := b.add(Cue{Kind: CueSpark, X: e.X, Y: e.Y, Color: col}, fx.SparkDuration, ease.Linear)
			spark.grow = gween.New(0.5, 1.5, seconds(fx.SparkDuration), ease.OutCubic)

			text := fmt.Sprintf("-%d", e.Amount)
			numCol := config.White
			if e.Crit {
				text += "!"
				numCol = config.Orange
			}
			num := b.add(Cue{Kind: CueNumber, X: e.X, Y: e.Y, Text: text, Crit: e.Crit, Color: numCol}, fx.NumberDuration, ease.InQuad)
			num.motion = gween.New(0, float32(fx.NumberRise), seconds(fx.NumberDuration), ease.OutQuad)
			if e.Crit {
				num.Scale = 1.5
			}

		case events.FragmentMissed:
			b.add(Cue{Kind: CueFlash, X: e.X, Y: e.Y, Color: config.LightRed}, fx.FlashDuration, ease.OutQuad)
			b.startShake()

		case events.SkillProgress:
			num := b.add(Cue{Kind: CueNumber, X: e.X, Y: e.Y, Text: fmt.Sprintf("+%d", e.Amount), Color: config.LightGreen}, fx.NumberDuration, ease.InQuad)
			num.motion = gween.New(0, float32(fx.NumberRise), seconds(fx.NumberDuration), ease.OutQuad)

		case events.SkillLevelUp:
			burst := b.add(Cue{Kind: CueBurst, X: e.X, Y: e.Y, Text: fmt.Sprintf("Lv %d", e.Level), Color: config.Green}, fx.BurstDuration, ease.Linear)
			burst.grow = gween.New(0.2, 1, seconds(fx.BurstDuration), ease.OutBack)

		case events.SkillDefeated:
			cel := b.add(Cue{Kind: CueCelebrate, X: e.X, Y: e.Y, Text: "MASTERED", Color: config.BrightYellow}, fx.CelebrateDuration, ease.InQuad)
			cel.grow = gween.New(0.5, 1.2, seconds(fx.CelebrateDuration), ease.OutElastic)

		case events.PowerUpCollected:
			b.add(Cue{Kind: CueBurst, X: e.X, Y: e.Y, Text: e.PowerUp.String(), Color: config.Magenta}, fx.BurstDuration, ease.Linear)

		case events.AchievementUnlocked:
			toast := b.add(Cue{Kind: CueToast, Text: e.Title, Color: config.Yellow}, config.Achievement.ToastDuration, ease.InExpo)
			toast.motion = gween.New(-1, 0, seconds(fx.ToastSlide), ease.OutCubic)
			toast.Offset = -1

		case events.Enraged:
			b.add(Cue{Kind: CueBossFlash, Color: config.Red}, fx.FlashDuration*2, ease.OutQuad)
			b.startShake()

		case events.Victory, events.Defeat:
			text, col := "VICTORY", config.Green
			if e.Type == events.Defeat {
				text, col = "DEFEAT", config.Red
			}
			banner := b.add(Cue{Kind: CueBanner, Text: text, Color: col}, fx.BannerDuration, ease.InExpo)
			banner.grow = gween.New(2, 1, seconds(fx.BannerDuration)/4, ease.OutBounce)
		}
	}
}

// Update advances every cue by dt and drops finished ones
func (b *Bridge) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	b.age += dt
	step := seconds(dt)

	live := b.cues[:0]
	for _, c := range b.cues {
		c.Age += dt
		if c.update(step) {
			continue
		}
		live = append(live, c)
	}
	clear(b.cues[len(live):])
	b.cues = live

	if b.shake != nil {
		amp, done := b.shake.Update(step)
		b.amp = float64(amp)
		if done {
			b.shake = nil
			b.amp = 0
		}
	}
}

// Cues returns the live cues, oldest first
func (b *Bridge) Cues() []Cue {
	out := make([]Cue, len(b.cues))
	for i, c := range b.cues {
		out[i] = c.Cue
	}
	return out
}

// Len returns the number of live cues
func (b *Bridge) Len() int {
	return len(b.cues)
}

// Shake returns the screen offset for the current frame
func (b *Bridge) Shake() (float64, float64) {
	if b.amp == 0 {
		return 0, 0
	}
	t := b.age.Seconds()
	return b.amp * math.Sin(t*71), b.amp * math.Cos(t*53)
}

// BossSway returns the boss sprite's horizontal offset at elapsed battle time
func BossSway(elapsed time.Duration, enraged bool) float64 {
	amp, freq := config.Boss.SwayAmplitude, config.Boss.SwayFrequency
	if enraged {
		amp, freq = config.Boss.EnragedSwayAmplitude, config.Boss.EnragedSwayFrequency
	}
	return amp * math.Sin(2*math.Pi*freq*elapsed.Seconds())
}

// Reset drops every cue, for a new session
func (b *Bridge) Reset() {
	b.cues = nil
	b.shake = nil
	b.amp = 0
}
