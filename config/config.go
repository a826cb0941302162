// Package config loads host configuration from TOML over built-in defaults
// Game tuning stays in parameter; this covers what an operator changes per install
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/logging"
	"github.com/lixenwraith/arcade/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Game is the per-cabinet setting of one game kind
type Game struct {
	Seed int64 `toml:"seed"` // Zero picks a time-based seed
	// Countdown enables the time limit; zero disables it
	Countdown time.Duration `toml:"countdown"`
	Lives     int           `toml:"lives"`
	Cost      int           `toml:"cost"`
	// InventoryLifespan expires carried cargo; zero keeps it until delivery
	InventoryLifespan time.Duration `toml:"inventory_lifespan"`
}

// Games holds one entry per game kind
type Games struct {
	Shooter Game `toml:"shooter"`
	Cargo   Game `toml:"cargo"`
	Snake   Game `toml:"snake"`
}

// Get returns the setting for a game kind by name
func (g Games) Get(kind string) (Game, bool) {
	switch kind {
	case "shooter":
		return g.Shooter, true
	case "cargo":
		return g.Cargo, true
	case "snake":
		return g.Snake, true
	}
	return Game{}, false
}

type Credits struct {
	Initial int `toml:"initial"`
}

type Web struct {
	Addr string `toml:"addr"`
	// TickRate is the per-connection simulation rate in Hz
	TickRate int `toml:"tick_rate"`
}

type Leaderboard struct {
	Size int `toml:"size"`
}

// Config is the root document
type Config struct {
	Log         logging.Config `toml:"log"`
	Audio       audio.Config   `toml:"audio"`
	Credits     Credits        `toml:"credits"`
	Web         Web            `toml:"web"`
	Leaderboard Leaderboard    `toml:"leaderboard"`
	Games       Games          `toml:"games"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: logging.Config{
			File:       "arcade.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Audio:       audio.DefaultConfig(),
		Credits:     Credits{Initial: 10},
		Web:         Web{Addr: ":8080", TickRate: parameter.TickRate},
		Leaderboard: Leaderboard{Size: 10},
		Games: Games{
			Shooter: Game{Lives: parameter.PlayerLives, Cost: 1},
			Cargo:   Game{Lives: parameter.PlayerLives, Cost: 1, Countdown: parameter.MazeCountdown},
			Snake:   Game{Lives: 1, Cost: 1},
		},
	}
}

// Load overlays the TOML file at path onto Default
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges the hosts rely on
func (c *Config) Validate() error {
	if c.Credits.Initial < 0 {
		return fmt.Errorf("%w: credits.initial %d is negative", ErrInvalidConfig, c.Credits.Initial)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside 0..1", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Web.TickRate < 1 || c.Web.TickRate > 240 {
		return fmt.Errorf("%w: web.tick_rate %d outside 1..240", ErrInvalidConfig, c.Web.TickRate)
	}
	if c.Leaderboard.Size < 1 {
		return fmt.Errorf("%w: leaderboard.size must be positive", ErrInvalidConfig)
	}
	for _, kind := range []string{"shooter", "cargo", "snake"} {
		g, _ := c.Games.Get(kind)
		switch {
		case g.Lives < 1:
			return fmt.Errorf("%w: games.%s.lives must be at least 1", ErrInvalidConfig, kind)
		case g.Cost < 0:
			return fmt.Errorf("%w: games.%s.cost is negative", ErrInvalidConfig, kind)
		case g.Countdown < 0 || g.InventoryLifespan < 0:
			return fmt.Errorf("%w: games.%s has a negative duration", ErrInvalidConfig, kind)
		}
	}
	return nil
}
