package factory

import (
	"github.com/ahmadalghawi/retro-game-portfolio/archetypes"
	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSkill spawns a level-0 skill with its tile placed on the grid by
// catalog order
func CreateSkill(w donburi.World, def assets.SkillDef, order int) *donburi.Entry {
	skill := archetypes.Skill.Spawn(w)
	components.Skill.SetValue(skill, components.SkillData{
		ID:          def.ID,
		Name:        def.Name,
		Category:    def.Category,
		Description: def.Description,
		Order:       order,
	})

	x, y := SkillTilePosition(order)
	obj := resolv.NewObject(x, y, config.Skill.TileWidth, config.Skill.TileHeight, tags.ResolvSkill)
	attach(w, skill, obj)
	return skill
}

// SkillTilePosition returns the top-left corner of the tile at order
func SkillTilePosition(order int) (float64, float64) {
	cols := config.Skill.GridColumns
	if cols <= 0 {
		cols = 1
	}
	col := order % cols
	row := order / cols
	x := config.Skill.GridOriginX + float64(col)*(config.Skill.TileWidth+config.Skill.TileGap)
	y := config.Skill.GridOriginY + float64(row)*(config.Skill.TileHeight+config.Skill.TileGap)
	return x, y
}
