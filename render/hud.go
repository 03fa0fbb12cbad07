package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/effects"
	"github.com/ahmadalghawi/retro-game-portfolio/fonts"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func bar(screen *ebiten.Image, x, y, w, h float32, value, total int, fill color.RGBA) {
	vector.FillRect(screen, x, y, w, h, barBack, false)
	if total > 0 && value > 0 {
		vector.FillRect(screen, x, y, w*float32(value)/float32(total), h, fill, false)
	}
}

func hud(screen *ebiten.Image, snap game.Snapshot) {
	face := fonts.Regular.Get()
	small := fonts.Small.Get()
	w := float32(config.C.Width)

	text.Draw(screen, fmt.Sprintf("%s  |  %s", snap.Mode, snap.Phase), small, 8, 14, config.LightBlue)
	comboCol := config.White
	if snap.Combo.Count >= config.Combo.Threshold {
		comboCol = config.Orange
	}
	text.Draw(screen, fmt.Sprintf("Combo x%d  (best %d)", snap.Combo.Count, snap.Combo.MaxCount), face, 8, 32, comboCol)
	text.Draw(screen, fmt.Sprintf("Clicks %d", snap.Stats.TotalClicks), small, int(w)-90, 14, config.White)

	if snap.Phase != config.PhaseSkills {
		c := snap.Combat
		bar(screen, w/2-150, 20, 300, 10, c.BossHP, c.BossMaxHP, config.Purple)
		text.Draw(screen, fmt.Sprintf("BOSS %d/%d", c.BossHP, c.BossMaxHP), small, int(w/2)-40, 44, config.White)

		y := float32(config.C.Height) - 18
		bar(screen, 8, y, 160, 8, c.PlayerHP, c.PlayerMaxHP, config.Green)
		bar(screen, 8, y+10, 160, 4, c.Shield, c.MaxShield, config.Cyan)
		text.Draw(screen, fmt.Sprintf("HP %d  Shield %d", c.PlayerHP, c.Shield), small, 176, int(y)+9, config.White)
		text.Draw(screen, fmt.Sprintf("%s  Lv %d", c.Elapsed.Truncate(time.Second), c.DifficultyLevel), small, int(w)-90, int(y)+9, config.White)
	}

	// Running buffs
	for i, b := range snap.Buffs {
		label := fmt.Sprintf("%s %.0fs", b.Type, b.Remaining.Seconds())
		text.Draw(screen, label, small, int(w)-120, 56+i*12, config.Magenta)
	}

	text.Draw(screen, "R restart   Esc menu", small, int(w)-130, int(config.C.Height)-4, config.DarkBlue)
}

func cues(screen *ebiten.Image, cs []effects.Cue, dx, dy float64) {
	w := float32(config.C.Width)
	h := float32(config.C.Height)
	for _, c := range cs {
		col := fade(c.Color, c.Alpha)
		x, y := float32(c.X+dx), float32(c.Y+dy)
		switch c.Kind {
		case effects.CueSpark:
			vector.StrokeCircle(screen, x, y, 14*float32(c.Scale), 2, col, true)
		case effects.CueNumber:
			face := fonts.Regular.Get()
			if c.Crit {
				face = fonts.Bold.Get()
			}
			text.Draw(screen, c.Text, face, int(x)-10, int(y-float32(c.Offset)), col)
		case effects.CueFlash:
			vector.FillRect(screen, 0, 0, w, h, fade(c.Color, c.Alpha*0.35), false)
		case effects.CueBurst:
			vector.StrokeCircle(screen, x, y, 40*float32(c.Scale), 3, col, true)
			text.Draw(screen, c.Text, fonts.Bold.Get(), int(x)-16, int(y)-24, col)
		case effects.CueCelebrate:
			vector.StrokeCircle(screen, x, y, 60*float32(c.Scale), 4, col, true)
			text.Draw(screen, c.Text, fonts.Bold.Get(), int(x)-36, int(y)+5, col)
		case effects.CueToast:
			tw := float32(220)
			tx := w - tw - 8 + float32(-c.Offset)*tw
			vector.FillRect(screen, tx, 64, tw, 28, fade(config.BlackOverlay, c.Alpha), false)
			vector.StrokeRect(screen, tx, 64, tw, 28, 1, col, false)
			text.Draw(screen, "Achievement: "+c.Text, fonts.Regular.Get(), int(tx)+8, 82, col)
		case effects.CueBossFlash:
			vector.FillRect(screen, 0, 0, w, 110, fade(c.Color, c.Alpha*0.4), false)
		case effects.CueBanner:
			face := fonts.Title.Get()
			b := text.BoundString(face, c.Text)
			text.Draw(screen, c.Text, face, int(w)/2-b.Dx()/2, int(h)/2-40, col)
		}
	}
}

func summary(screen *ebiten.Image, snap game.Snapshot) {
	s := snap.Summary
	w := float32(config.C.Width)
	h := float32(config.C.Height)
	vector.FillRect(screen, w/2-140, h/2-20, 280, 96, config.BlackOverlay, false)

	title, col := "VICTORY", config.Green
	if s.Outcome == config.BattleDefeat {
		title, col = "DEFEAT", config.Red
	}
	face := fonts.Regular.Get()
	text.Draw(screen, title, fonts.Bold.Get(), int(w/2)-130, int(h/2), col)
	lines := []string{
		fmt.Sprintf("Time     %s", s.Elapsed.Truncate(100*time.Millisecond)),
		fmt.Sprintf("Damage   %d", s.TotalDamage),
		fmt.Sprintf("Clicks   %d   Max combo %d", s.TotalClicks, s.MaxCombo),
		"Press R to play again",
	}
	for i, l := range lines {
		text.Draw(screen, l, face, int(w/2)-130, int(h/2)+18+i*16, config.White)
	}
}
