package archetypes

import (
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/yohamta/donburi"
)

var (
	Skill = newArchetype(
		tags.Skill,
		components.Skill,
		components.Object,
	)
	Fragment = newArchetype(
		tags.Fragment,
		components.Fragment,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Runtime = newArchetype(
		components.Runtime,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
