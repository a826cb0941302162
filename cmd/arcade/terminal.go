package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/asset"
	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/game"
	"github.com/lixenwraith/arcade/host"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/ledger"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/render"
)

// terminalApp drives one cabinet from the keyboard
// Everything except event polling runs on the loop goroutine
type terminalApp struct {
	screen   tcell.Screen
	renderer *render.Terminal
	bindings *input.Bindings
	latch    *input.Latch
	cabinet  *host.Cabinet
	player   *audio.Player
	clock    *engine.FrameClock
	log      *zap.Logger

	kind     string
	preview  *engine.Session // Unstarted session shown behind the menu
	session  *engine.Session
	lastTick uint64
}

func runTerminal(cfg config.Config, opts options, credits *ledger.Credits, deps game.Deps) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nARCADE CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	log := deps.Logger
	clock := engine.NewMonotonicTimeProvider()
	latch := input.NewLatch(clock, 0, 0)
	deps.Input = latch

	synth := audio.NewSynth(cfg.Audio, log)
	player := audio.NewPlayer(synth, log)
	if err := player.Open(cfg.Audio, synth.SampleRate()); err != nil {
		// Non-fatal, the game runs silent
		log.Info("audio unavailable", zap.Error(err))
		player.SetMuted(true)
	}
	defer player.Close()

	renderer := render.NewTerminal(screen, asset.NewCatalog(log))
	if opts.debug {
		renderer.SetDebug(deps.Status)
	}

	gameCfg, _ := cfg.Games.Get(opts.game)
	preview, err := game.New(opts.game, gameCfg, deps)
	if err != nil {
		return err
	}

	app := &terminalApp{
		screen:   screen,
		renderer: renderer,
		bindings: input.DefaultBindings(),
		latch:    latch,
		cabinet:  host.NewCabinet(credits, cfg.Games, deps),
		player:   player,
		clock:    engine.NewFrameClock(clock, parameter.MaxFrameDelta),
		log:      log,
		kind:     opts.game,
		preview:  preview,
	}
	app.loop()
	return nil
}

func (a *terminalApp) loop() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// handle returns false to quit
func (a *terminalApp) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := a.bindings.Key(ev); ok {
			a.latch.Press(k)
			return true
		}
		switch a.bindings.Command(ev) {
		case input.CommandQuit:
			return false
		case input.CommandStart:
			if a.session == nil || a.session.Status().Terminal() {
				a.play(a.cabinet.Play)
			}
		case input.CommandRestart:
			if a.session == nil {
				a.play(a.cabinet.Play)
			} else {
				a.play(func(string) (*engine.Session, error) { return a.cabinet.Restart() })
			}
		case input.CommandPause:
			if a.session != nil && a.session.TogglePause() == nil {
				a.latch.Clear()
				a.clock.Reset()
			}
		case input.CommandMute:
			a.player.SetMuted(!a.player.Muted())
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *terminalApp) play(start func(kind string) (*engine.Session, error)) {
	s, err := start(a.kind)
	if err != nil {
		a.log.Info("play refused", zap.String("game", a.kind), zap.Error(err))
		if errors.Is(err, host.ErrInsufficientCredits) {
			a.renderer.SetBanner(fmt.Sprintf(" INSUFFICIENT CREDITS (%d) ", a.cabinet.Balance()))
		}
		return
	}
	a.renderer.SetBanner("")
	a.session = s
	a.lastTick = 0
	a.latch.Clear()
	a.clock.Reset()
}

func (a *terminalApp) frame() {
	dt := a.clock.Tick()
	if a.session == nil {
		snap := a.preview.Snapshot()
		a.renderer.Draw(&snap)
		return
	}

	snap := a.session.Update(dt)
	if snap.Tick != a.lastTick {
		a.lastTick = snap.Tick
		a.player.HandleEvents(snap.Events)
	}
	a.renderer.Draw(&snap)
}
