package components

import (
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FragmentData is a falling code fragment. Position and hit region are the
// entity's Object; velocity is in pixels per motion tick.
type FragmentData struct {
	ID       uint64
	Type     config.FragmentTypeConfig
	Velocity math.Vec2
	Rotation float64
	Spin     float64
	Scale    float64
}

var Fragment = donburi.NewComponentType[FragmentData]()
