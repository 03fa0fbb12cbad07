package factory

import (
	"github.com/ahmadalghawi/retro-game-portfolio/archetypes"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FragmentSpec describes a fragment about to enter the play area
type FragmentSpec struct {
	ID       uint64
	Type     config.FragmentTypeConfig
	X, Y     float64
	Scale    float64
	Velocity math.Vec2
	Spin     float64
}

// CreateFragment spawns a falling fragment with a square hit region sized
// by its scale
func CreateFragment(w donburi.World, spec FragmentSpec) *donburi.Entry {
	fragment := archetypes.Fragment.Spawn(w)
	components.Fragment.SetValue(fragment, components.FragmentData{
		ID:       spec.ID,
		Type:     spec.Type,
		Velocity: spec.Velocity,
		Spin:     spec.Spin,
		Scale:    spec.Scale,
	})

	size := config.Spawner.FragmentSize * spec.Scale
	obj := resolv.NewObject(spec.X, spec.Y, size, size, tags.ResolvFragment)
	attach(w, fragment, obj)
	return fragment
}
