package factory

import (
	"github.com/ahmadalghawi/retro-game-portfolio/archetypes"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCursor spawns the 1x1 probe moved by pointer input
func CreateCursor(w donburi.World) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(w)
	attach(w, cursor, resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor))
	return cursor
}
