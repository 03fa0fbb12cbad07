// Command arcade-tui plays the skill arcade in a terminal with the mouse.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/assets"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/game"
	"github.com/gdamore/tcell/v2"
)

const tick = 16 * time.Millisecond

type app struct {
	arcade  *game.Arcade
	view    *view
	sound   *Sound
	status  string
	pressed bool
}

func main() {
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	modeName := flag.String("mode", "", "start directly in a mode: normal or challenge")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write the session log to this file")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "arcade ", log.LstdFlags|log.Lmicroseconds)
	}

	opts := []game.Option{game.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}

	cat, err := assets.LoadCatalog(assets.Embedded())
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	screen.EnableMouse()

	sound, err := NewSound(*mute)
	if err != nil {
		logger.Printf("audio unavailable: %v", err)
	}

	a := &app{
		arcade: game.NewArcade(cat, opts...),
		view:   &view{screen: screen},
		sound:  sound,
	}
	a.view.resize()

	if *modeName != "" {
		mode, ok := config.ParseMode(*modeName)
		if !ok {
			screen.Fini()
			log.Fatalf("unknown mode %q", *modeName)
		}
		a.arcade.HandleInput(game.ModeSelected{Mode: mode})
	}

	a.run()

	a.arcade.Close()
	a.sound.Close()
	screen.Fini()
}

func (a *app) run() {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.view.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.arcade.Update(tick)
			evts := a.arcade.Drain()
			a.sound.Consume(evts)
			a.noteResult(evts)
			if a.arcade.Session() == nil {
				a.view.menu(a.status)
			} else {
				a.view.arcade(a.arcade.Snapshot())
			}
		}
	}
}

func (a *app) noteResult(evts []events.Event) {
	for _, e := range evts {
		if s := e.Summary; s != nil {
			a.status = fmt.Sprintf("last run: %s in %s", s.Outcome, s.Elapsed.Truncate(time.Second))
		}
	}
}

// handle applies one terminal event and reports whether to keep running
func (a *app) handle(ev tcell.Event) bool {
	inSession := a.arcade.Session() != nil
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyEscape:
			if !inSession {
				return false
			}
			a.arcade.HandleInput(game.ExitRequested{})
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '1':
				a.arcade.HandleInput(game.ModeSelected{Mode: config.ModeNormal})
			case '2':
				a.arcade.HandleInput(game.ModeSelected{Mode: config.ModeChallenge})
			case 'r':
				a.arcade.HandleInput(game.RestartRequested{})
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.view.toField(col, row)
		a.arcade.HandleInput(game.PointerMove{X: x, Y: y})
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.pressed {
			a.arcade.HandleInput(game.PointerClick{X: x, Y: y})
		}
		a.pressed = down

	case *tcell.EventResize:
		a.view.resize()
		a.view.screen.Sync()
	}
	return true
}
