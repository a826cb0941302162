// Package game assembles the world, systems and collaborators of each game kind
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/status"
)

// ErrUnknownGame rejects a kind with no preset
var ErrUnknownGame = errors.New("unknown game")

// Game kinds
const (
	Shooter = "shooter"
	Cargo   = "cargo"
	Snake   = "snake"
)

// Deps are the host collaborators handed to every session
type Deps struct {
	Logger      *zap.Logger
	Status      *status.Registry
	Reporter    engine.GameSessionReporter
	Leaderboard engine.LeaderboardSink
	Input       engine.InputSource
	OnStatus    func(from, to engine.Status)
	// Dispatch replaces the goroutine launcher for collaborator calls
	Dispatch func(func())
}

type builder func(w *engine.World, cfg config.Game) []engine.System

var builders = map[string]struct {
	world func(cfg config.Game, seed int64) engine.WorldConfig
	build builder
}{
	Shooter: {shooterWorld, buildShooter},
	Cargo:   {cargoWorld, buildCargo},
	Snake:   {snakeWorld, buildSnake},
}

// Kinds lists the available game kinds in display order
func Kinds() []string {
	return []string{Shooter, Cargo, Snake}
}

// New builds a fresh session of kind in menu status
func New(kind string, cfg config.Game, deps Deps) (*engine.Session, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, kind)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	wc := b.world(cfg, seed)
	wc.Game = kind
	wc.Seed = seed
	wc.Logger = deps.Logger
	wc.Status = deps.Status

	w := engine.NewWorld(wc)
	if cfg.Lives > 0 {
		w.Player.Lives = cfg.Lives
	}
	systems := b.build(w, cfg)

	opts := []engine.Option{
		engine.WithReporter(deps.Reporter),
		engine.WithLeaderboard(deps.Leaderboard),
		engine.WithInput(deps.Input),
	}
	if deps.OnStatus != nil {
		opts = append(opts, engine.WithStatusCallback(deps.OnStatus))
	}
	if deps.Dispatch != nil {
		opts = append(opts, engine.WithDispatcher(deps.Dispatch))
	}
	return engine.NewSession(w, systems, opts...), nil
}
