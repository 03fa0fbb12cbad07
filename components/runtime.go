package components

import (
	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/yohamta/donburi"
)

// Random is the seedable source every random outcome is drawn from.
// *math/rand/v2.Rand satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// RuntimeData is a singleton binding a world to its session services
type RuntimeData struct {
	Clock   *clock.Scheduler
	Rand    Random
	Catalog *assets.Catalog
	Mode    config.ModeID
}

var Runtime = donburi.NewComponentType[RuntimeData]()
