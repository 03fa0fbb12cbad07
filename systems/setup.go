package systems

import (
	"github.com/ahmadalghawi/retro-game-portfolio/archetypes"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/systems/factory"
	"github.com/yohamta/donburi"
)

// SetupWorld populates an empty world: session services, the spatial hash,
// the pointer probe, one entity per catalog skill and every singleton
func SetupWorld(w donburi.World, rt components.RuntimeData) {
	runtime := archetypes.Runtime.Spawn(w)
	components.Runtime.SetValue(runtime, rt)

	cell := config.Spawner.CollisionCell
	factory.CreateSpace(w, config.C.Width, config.C.Height, cell, cell)
	factory.CreateCursor(w)

	for i, def := range rt.Catalog.Skills {
		factory.CreateSkill(w, def, i)
	}

	GetCombo(w)
	GetCombat(w)
	GetStats(w)
	GetSkillBoard(w)
	GetBuffs(w)
	GetAchievements(w)
}
