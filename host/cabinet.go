// Package host is the calling surface around sessions: it charges credits,
// builds presets and replaces sessions on restart
package host

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/game"
)

var (
	// ErrInsufficientCredits is returned by Play before any session is built
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrNoSession is returned by Restart before the first Play
	ErrNoSession = errors.New("no session")
)

// Factory builds a session of kind; game.New by default
type Factory func(kind string, cfg config.Game, deps game.Deps) (*engine.Session, error)

// Cabinet owns the current session and the credit ledger it is paid from
type Cabinet struct {
	mu      sync.Mutex
	credits engine.CreditLedger
	games   config.Games
	deps    game.Deps
	factory Factory
	log     *zap.Logger

	session *engine.Session
	kind    string
}

// CabinetOption configures a Cabinet
type CabinetOption func(*Cabinet)

// WithFactory replaces the preset builder
func WithFactory(f Factory) CabinetOption {
	return func(c *Cabinet) { c.factory = f }
}

func NewCabinet(credits engine.CreditLedger, games config.Games, deps game.Deps, opts ...CabinetOption) *Cabinet {
	c := &Cabinet{
		credits: credits,
		games:   games,
		deps:    deps,
		factory: game.New,
		log:     deps.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.Named("cabinet")
	return c
}

// Play builds a fresh session of kind and starts it
// The credit is charged when the session first enters playing and is never refunded
func (c *Cabinet) Play(kind string) (*engine.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.play(kind)
}

// Restart discards the current session and plays the same kind again
func (c *Cabinet) Restart() (*engine.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kind == "" {
		return nil, ErrNoSession
	}
	return c.play(c.kind)
}

// Session returns the current session, nil before the first Play
func (c *Cabinet) Session() *engine.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Balance is the remaining credit count
func (c *Cabinet) Balance() int {
	return c.credits.Balance()
}

func (c *Cabinet) play(kind string) (*engine.Session, error) {
	cfg, ok := c.games.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", game.ErrUnknownGame, kind)
	}
	if !c.credits.CanAfford(cfg.Cost) {
		c.log.Info("play refused", zap.String("game", kind), zap.Int("cost", cfg.Cost), zap.Int("balance", c.credits.Balance()))
		return nil, fmt.Errorf("%s costs %d: %w", kind, cfg.Cost, ErrInsufficientCredits)
	}

	deps := c.deps
	deps.OnStatus = c.charge(kind, cfg.Cost, c.deps.OnStatus)
	s, err := c.factory(kind, cfg, deps)
	if err != nil {
		return nil, err
	}
	if err := s.Start(); err != nil {
		return nil, err
	}

	if c.session != nil {
		c.log.Debug("session discarded", zap.String("id", c.session.ID()), zap.Stringer("status", c.session.Status()))
	}
	c.session, c.kind = s, kind
	c.log.Info("session started", zap.String("game", kind), zap.String("id", s.ID()))
	return s, nil
}

// charge wraps next with the one-shot spend on the first menu to playing transition
func (c *Cabinet) charge(kind string, cost int, next func(from, to engine.Status)) func(from, to engine.Status) {
	dispatch := c.deps.Dispatch
	if dispatch == nil {
		dispatch = func(f func()) { go f() }
	}
	charged := false
	return func(from, to engine.Status) {
		if !charged && from == engine.StatusMenu && to == engine.StatusPlaying {
			charged = true
			credits, log := c.credits, c.log
			dispatch(func() {
				if !credits.Spend(cost, "play "+kind) {
					log.Warn("credit spend failed", zap.String("game", kind), zap.Int("cost", cost))
				}
			})
		}
		if next != nil {
			next(from, to)
		}
	}
}
