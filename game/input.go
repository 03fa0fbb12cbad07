package game

import "github.com/ahmadalghawi/retro-game-portfolio/config"

// Input is an event a rendering surface sends into the arcade
type Input interface {
	isInput()
}

// PointerClick is a click at play-area coordinates. The arcade stamps it
// with the time of the session that receives it.
type PointerClick struct {
	X, Y float64
}

// PointerMove tracks the pointer for hover feedback
type PointerMove struct {
	X, Y float64
}

// ModeSelected starts a fresh session in Mode
type ModeSelected struct {
	Mode config.ModeID
}

// RestartRequested replaces the session with a fresh one in the same mode
type RestartRequested struct{}

// ExitRequested closes the session and returns to mode select
type ExitRequested struct{}

func (PointerClick) isInput()     {}
func (PointerMove) isInput()      {}
func (ModeSelected) isInput()     {}
func (RestartRequested) isInput() {}
func (ExitRequested) isInput()    {}
