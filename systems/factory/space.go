package factory

import (
	"github.com/ahmadalghawi/retro-game-portfolio/archetypes"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the spatial hash covering the play area
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// spaceOf returns the world's spatial hash, nil before CreateSpace
func spaceOf(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// attach links obj to its entity and registers it for hit queries
func attach(w donburi.World, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if space := spaceOf(w); space != nil {
		space.Add(obj)
	}
}

// Destroy unregisters the entity's hit region and removes the entity
func Destroy(w donburi.World, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(entry.Entity())
}
