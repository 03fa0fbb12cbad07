// Package render draws arcade snapshots and effect cues with ebiten.
package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/effects"
	"github.com/ahmadalghawi/retro-game-portfolio/fonts"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	background = color.RGBA{R: 14, G: 14, B: 24, A: 255}
	tileIdle   = color.RGBA{R: 36, G: 40, B: 64, A: 255}
	tileHover  = color.RGBA{R: 56, G: 64, B: 100, A: 255}
	tileLocked = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	barBack    = color.RGBA{R: 50, G: 50, B: 60, A: 255}
)

// fade scales a color's alpha, keeping it premultiplied
func fade(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Arcade draws a full frame: field, HUD, then cues on top
func Arcade(screen *ebiten.Image, snap game.Snapshot, fx *effects.Bridge) {
	screen.Fill(background)
	dx, dy := fx.Shake()

	skills(screen, snap, dx, dy)
	if snap.Phase == config.PhaseBattle || snap.Phase == config.PhaseVictory || snap.Phase == config.PhaseDefeat {
		boss(screen, snap, dx)
		fragments(screen, snap, dx, dy)
	}
	powerUp(screen, snap, dx, dy)
	hud(screen, snap)
	cues(screen, fx.Cues(), dx, dy)
	if snap.Summary != nil {
		summary(screen, snap)
	}
}

func skills(screen *ebiten.Image, snap game.Snapshot, dx, dy float64) {
	face := fonts.Small.Get()
	locked := snap.Phase != config.PhaseSkills
	for _, sk := range snap.Skills {
		r := sk.Tile
		x, y := float32(r.X+dx), float32(r.Y+dy)
		fill := tileIdle
		switch {
		case locked:
			fill = tileLocked
		case sk.ID == snap.HoverSkill:
			fill = tileHover
		}
		vector.FillRect(screen, x, y, float32(r.W), float32(r.H), fill, false)
		if sk.Mastered {
			vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 2, config.BrightYellow, false)
		}

		text.Draw(screen, sk.Name, fonts.Bold.Get(), int(x)+6, int(y)+18, config.White)
		text.Draw(screen, sk.Category, face, int(x)+6, int(y)+32, config.LightBlue)

		// Level bar
		pct := float32(sk.Level) / float32(config.Skill.MaxLevel)
		barW := float32(r.W) - 12
		vector.FillRect(screen, x+6, y+float32(r.H)-16, barW, 8, barBack, false)
		vector.FillRect(screen, x+6, y+float32(r.H)-16, barW*pct, 8, config.Green, false)
		text.Draw(screen, fmt.Sprintf("%d/%d", sk.Level, config.Skill.MaxLevel), face, int(x+float32(r.W))-50, int(y)+32, config.White)
	}
}

func boss(screen *ebiten.Image, snap game.Snapshot, dx float64) {
	c := snap.Combat
	w := float64(config.C.Width)
	sway := effects.BossSway(c.Elapsed, c.Enraged)

	size := float32(48)
	x := float32(w/2+sway+dx) - size/2
	col := config.Purple
	if c.Enraged {
		col = config.Red
	}
	vector.FillRect(screen, x, 48, size, size, col, false)
	text.Draw(screen, "BUG", fonts.Bold.Get(), int(x)+10, 78, config.White)
}

func fragments(screen *ebiten.Image, snap game.Snapshot, dx, dy float64) {
	face := fonts.Small.Get()
	for _, f := range snap.Fragments {
		b := f.Bounds
		cx, cy := float32(b.X+b.W/2+dx), float32(b.Y+b.H/2+dy)
		col := config.White
		if ft, ok := config.FragmentType(f.DamageType); ok {
			col = ft.Color
		}
		// Diamond rotated by the fragment's spin
		var path vector.Path
		r := float32(b.W / 2)
		for i := range 4 {
			a := f.Rotation + float64(i)*math.Pi/2
			px := cx + r*float32(math.Cos(a))
			py := cy + r*float32(math.Sin(a))
			if i == 0 {
				path.MoveTo(px, py)
			} else {
				path.LineTo(px, py)
			}
		}
		path.Close()
		fillPath(screen, &path, col)

		label := f.DamageType
		if len(label) > 2 {
			label = label[:2]
		}
		text.Draw(screen, label, face, int(cx)-6, int(cy)+4, background)
	}
}

func fillPath(screen *ebiten.Image, path *vector.Path, col color.RGBA) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(screen, path, &vector.FillOptions{}, op)
}

func powerUp(screen *ebiten.Image, snap game.Snapshot, dx, dy float64) {
	p := snap.PowerUp
	if p == nil {
		return
	}
	b := p.Bounds
	cx, cy := float32(b.X+b.W/2+dx), float32(b.Y+b.H/2+dy)
	// Blink during the last second on the field
	if p.Remaining < time.Second && (p.Remaining/(100*time.Millisecond))%2 == 0 {
		return
	}
	vector.FillCircle(screen, cx, cy, float32(b.W/2), config.Magenta, true)
	text.Draw(screen, p.Type.String()[:1], fonts.Bold.Get(), int(cx)-4, int(cy)+5, config.White)
}
