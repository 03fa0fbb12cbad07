package tags

import "github.com/yohamta/donburi"

var (
	Skill    = donburi.NewTag().SetName("Skill")
	Fragment = donburi.NewTag().SetName("Fragment")
	PowerUp  = donburi.NewTag().SetName("PowerUp")
	Cursor   = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for hit-region queries
const (
	ResolvSkill    = "skill"
	ResolvFragment = "fragment"
	ResolvPowerUp  = "powerup"
	ResolvCursor   = "cursor"
)
