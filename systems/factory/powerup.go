package factory

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/archetypes"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePowerUp spawns a collectible at (x, y). The caller owns the expiry
// timer.
func CreatePowerUp(w donburi.World, t config.PowerUpType, x, y float64, now time.Duration) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(w)
	components.PowerUp.SetValue(powerUp, components.PowerUpData{
		Type:      t,
		SpawnedAt: now,
		Expiry:    now + config.PowerUp.FieldLifetime,
	})

	size := config.PowerUp.Size
	attach(w, powerUp, resolv.NewObject(x, y, size, size, tags.ResolvPowerUp))
	return powerUp
}
