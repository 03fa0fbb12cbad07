package scenes

import (
	"fmt"
	"time"

	cfg "github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/effects"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/ahmadalghawi/retro-game-portfolio/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ArcadeScene runs a session: mouse input in, snapshot and cues out
type ArcadeScene struct {
	sceneChanger SceneChanger
	arcade       *game.Arcade
	fx           *effects.Bridge
	sound        *Audio

	lastX, lastY int
	result       string
}

func NewArcadeScene(sc SceneChanger, arcade *game.Arcade) *ArcadeScene {
	return &ArcadeScene{
		sceneChanger: sc,
		arcade:       arcade,
		fx:           effects.NewBridge(),
		sound:        NewAudio(),
		lastX:        -1,
		lastY:        -1,
	}
}

func (as *ArcadeScene) Update() {
	// The arcade runs on a fixed step, one tick per ebiten update
	dt := time.Second / time.Duration(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		as.arcade.HandleInput(game.ExitRequested{})
		as.arcade.Update(dt)
		as.arcade.Drain()
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger, as.arcade, as.result))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.arcade.HandleInput(game.RestartRequested{})
		as.fx.Reset()
		as.result = ""
	}

	x, y := ebiten.CursorPosition()
	if x != as.lastX || y != as.lastY {
		as.lastX, as.lastY = x, y
		as.arcade.HandleInput(game.PointerMove{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		as.arcade.HandleInput(game.PointerClick{X: float64(x), Y: float64(y)})
	}

	as.arcade.Update(dt)
	evts := as.arcade.Drain()
	for _, e := range evts {
		if e.Summary != nil && (e.Type == events.Victory || e.Type == events.Defeat) {
			as.result = fmt.Sprintf("Last run: %s in %s, %d damage", e.Summary.Outcome,
				e.Summary.Elapsed.Truncate(time.Second), e.Summary.TotalDamage)
		}
	}
	as.fx.Consume(evts)
	as.sound.Consume(evts)
	as.fx.Update(dt)
}

func (as *ArcadeScene) Draw(screen *ebiten.Image) {
	snap := as.arcade.Snapshot()
	if snap.Phase == cfg.PhaseIdle {
		screen.Fill(cfg.BlackOverlay)
		return
	}
	render.Arcade(screen, snap, as.fx)
}
