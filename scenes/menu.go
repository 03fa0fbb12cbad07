package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/ahmadalghawi/retro-game-portfolio/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene is the mode-select screen
type MenuScene struct {
	sceneChanger SceneChanger
	arcade       *game.Arcade
	menuUI       *ui.ModeSelectUI
	status       string
	once         sync.Once
}

// NewMenuScene creates the mode-select scene. status is shown under the
// buttons, typically the result of the last run.
func NewMenuScene(sc SceneChanger, arcade *game.Arcade, status string) *MenuScene {
	return &MenuScene{sceneChanger: sc, arcade: arcade, status: status}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewModeSelectUI(ms.selectMode, ms.sceneChanger.Quit)
	ms.menuUI.SetStatus(ms.status)
}

func (ms *MenuScene) selectMode(mode cfg.ModeID) {
	ms.arcade.HandleInput(game.ModeSelected{Mode: mode})
	ms.sceneChanger.ChangeScene(NewArcadeScene(ms.sceneChanger, ms.arcade))
}
