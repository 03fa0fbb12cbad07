package systems

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/yohamta/donburi"
)

// RegisterAction records a scoring action at ts and returns the combo count.
// Actions closer than the combo window to the previous one extend the combo,
// anything else starts over at 0.
func RegisterAction(w donburi.World, ts time.Duration) int {
	combo := GetCombo(w)

	// Out-of-order timestamps count as simultaneous
	if combo.HasAction && ts < combo.LastAction {
		ts = combo.LastAction
	}

	window := config.Combo.Window
	if GetBuffs(w).Active(config.PowerUpComboExtender) {
		window = config.Combo.ExtendedWindow
	}

	if combo.HasAction && ts-combo.LastAction < window {
		combo.Count++
	} else {
		resetCombo(w, ts)
	}
	combo.LastAction = ts
	combo.HasAction = true

	combo.MaxCount = max(combo.MaxCount, combo.Count)
	return combo.Count
}

// BreakCombo drops the combo to 0 without registering an action
func BreakCombo(w donburi.World) {
	resetCombo(w, now(w))
}

func resetCombo(w donburi.World, at time.Duration) {
	combo := GetCombo(w)
	if combo.Count == 0 {
		return
	}
	prev := combo.Count
	combo.Count = 0
	ResetStreaks(w)
	events.Publish(w, events.Event{
		Type:  events.ComboReset,
		At:    at,
		Combo: prev,
	})
}
