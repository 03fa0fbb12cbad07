package main

import (
	"errors"
	"image"
	"log"

	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/fonts"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/ahmadalghawi/retro-game-portfolio/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	arcade *game.Arcade
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the run loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(cat *assets.Catalog) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		arcade: game.NewArcade(cat),
	}
	g.scene = scenes.NewMenuScene(g, g.arcade, "")
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		g.arcade.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	cat, err := assets.LoadCatalog(assets.Embedded())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Skill Arcade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(cat)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
