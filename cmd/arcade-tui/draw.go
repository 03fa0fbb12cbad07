package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/gdamore/tcell/v2"
)

// view maps the play area onto the terminal grid. Rows 0 and h-1 hold the
// HUD.
type view struct {
	screen tcell.Screen
	w, h   int
}

func (v *view) resize() {
	v.w, v.h = v.screen.Size()
}

func (v *view) cellW() float64 { return float64(config.C.Width) / float64(max(1, v.w)) }
func (v *view) cellH() float64 { return float64(config.C.Height) / float64(max(1, v.h-2)) }

// toField returns the play-area point at the center of a terminal cell
func (v *view) toField(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.cellW(), (float64(row-1) + 0.5) * v.cellH()
}

func (v *view) toCell(x, y float64) (int, int) {
	return int(x / v.cellW()), int(y/v.cellH()) + 1
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *view) text(col, row int, s string, style tcell.Style) {
	for i, r := range s {
		if col+i >= v.w {
			return
		}
		v.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (v *view) fill(r game.Rect, ch rune, style tcell.Style) (int, int, int, int) {
	c0, r0 := v.toCell(r.X, r.Y)
	c1, r1 := v.toCell(r.X+r.W, r.Y+r.H)
	c1, r1 = max(c1, c0+1), max(r1, r0+1)
	for row := max(r0, 1); row < min(r1, v.h-1); row++ {
		for col := max(c0, 0); col < min(c1, v.w); col++ {
			v.screen.SetContent(col, row, ch, nil, style)
		}
	}
	return c0, r0, c1, r1
}

func (v *view) menu(status string) {
	v.screen.Clear()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	row := v.h/2 - 3
	v.text(v.w/2-6, row, "SKILL ARCADE", white.Bold(true))
	v.text(v.w/2-14, row+2, "1  normal: master every skill", white)
	v.text(v.w/2-14, row+3, "2  challenge: boss battle now", white)
	v.text(v.w/2-14, row+4, "q  quit", white)
	v.text(v.w/2-14, row+6, status, tcell.StyleDefault.Foreground(tcell.ColorOrange))
	v.screen.Show()
}

func (v *view) arcade(snap game.Snapshot) {
	v.screen.Clear()
	base := tcell.StyleDefault

	for _, sk := range snap.Skills {
		bg := tcell.NewRGBColor(36, 40, 64)
		if sk.ID == snap.HoverSkill {
			bg = tcell.NewRGBColor(56, 64, 100)
		}
		style := base.Background(bg).Foreground(tcell.ColorWhite)
		if sk.Mastered {
			style = style.Foreground(rgb(config.BrightYellow))
		}
		c0, r0, _, _ := v.fill(sk.Tile, ' ', style)
		v.text(c0, r0, sk.Name, style.Bold(true))
		v.text(c0, r0+1, fmt.Sprintf("%3d/%d", sk.Level, config.Skill.MaxLevel), style)
	}

	for _, f := range snap.Fragments {
		style := base.Foreground(tcell.ColorWhite)
		if ft, ok := config.FragmentType(f.DamageType); ok {
			style = base.Foreground(rgb(ft.Color))
		}
		ch := '#'
		if f.DamageType != "" {
			ch = rune(f.DamageType[0])
		}
		v.fill(f.Bounds, ch, style)
	}
	if p := snap.PowerUp; p != nil {
		v.fill(p.Bounds, '*', base.Foreground(rgb(config.Magenta)).Bold(true))
	}

	// HUD
	top := fmt.Sprintf(" %s | %s | combo x%d (best %d) | clicks %d",
		snap.Mode, snap.Phase, snap.Combo.Count, snap.Combo.MaxCount, snap.Stats.TotalClicks)
	if snap.Phase != config.PhaseSkills {
		c := snap.Combat
		top += fmt.Sprintf(" | boss %d/%d", c.BossHP, c.BossMaxHP)
		if c.Enraged {
			top += " ENRAGED"
		}
	}
	v.text(0, 0, top, base.Foreground(tcell.ColorLightBlue))

	bottom := " r restart  esc menu"
	if snap.Phase != config.PhaseSkills {
		c := snap.Combat
		bottom = fmt.Sprintf(" hp %d/%d shield %d | %s lv %d |%s", c.PlayerHP, c.PlayerMaxHP, c.Shield,
			c.Elapsed.Truncate(time.Second), c.DifficultyLevel, bottom)
	}
	for _, b := range snap.Buffs {
		bottom += fmt.Sprintf(" | %s %.0fs", b.Type, b.Remaining.Seconds())
	}
	v.text(0, v.h-1, bottom, base.Foreground(tcell.ColorGreen))

	if t := snap.Toast; t != nil {
		msg := " * " + t.Title + " * "
		v.text(v.w-len(msg)-1, 1, msg, base.Reverse(true).Foreground(rgb(config.Yellow)))
	}
	if s := snap.Summary; s != nil {
		msg := fmt.Sprintf(" %s in %s: %d damage, %d clicks, max combo %d - r to replay ",
			s.Outcome, s.Elapsed.Truncate(100*time.Millisecond), s.TotalDamage, s.TotalClicks, s.MaxCombo)
		v.text(max(0, v.w/2-len(msg)/2), v.h/2, msg, base.Reverse(true).Bold(true))
	}
	v.screen.Show()
}
