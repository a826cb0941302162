package game

import (
	"time"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/system"
	"github.com/lixenwraith/arcade/vmath"
)

// shooterWaves is keyed by cumulative kills
var shooterWaves = []system.WaveRow{
	{Kills: 0, MaxHostiles: 4, Interval: 1400 * time.Millisecond},
	{Kills: 10, MaxHostiles: 6, Interval: 1100 * time.Millisecond, GunshipChance: 0.15},
	{Kills: 25, MaxHostiles: 8, Interval: 900 * time.Millisecond, GunshipChance: 0.25},
	{Kills: 50, MaxHostiles: 10, Interval: 700 * time.Millisecond, GunshipChance: 0.35},
	{Kills: 90, MaxHostiles: 12, Interval: 550 * time.Millisecond, GunshipChance: 0.5},
}

var shooterBosses = []system.BossTier{
	{Score: 5000, Units: 1},
	{Score: 15000, Units: 2},
	{Score: 35000, Units: 3},
}

func shooterWorld(cfg config.Game, _ int64) engine.WorldConfig {
	return engine.WorldConfig{
		Width:     parameter.WorldWidth,
		Height:    parameter.WorldHeight,
		Topology:  engine.TopologyClamp,
		Countdown: cfg.Countdown,
	}
}

func buildShooter(w *engine.World, _ config.Game) []engine.System {
	w.Player.Width = parameter.ShooterPlayerSize
	w.Player.Height = parameter.ShooterPlayerSize
	w.Player.Radius = parameter.ShooterPlayerSize / 2
	w.Player.Pos = vmath.V(w.Width/2, w.Height-parameter.ShooterPlayerSize*1.5)

	effects := system.NewEffectsBus(w)
	spawn := system.NewSpawnSystem(w, system.SpawnConfig{
		Waves:       shooterWaves,
		Bosses:      shooterBosses,
		Asteroids:   true,
		Decorations: true,
		PowerUps:    true,
	})
	return []engine.System{
		system.NewPlayerMotionSystem(w, parameter.ShooterPlayerSpeed),
		system.NewWeaponSystem(w),
		system.NewMotionSystem(w),
		spawn,
		system.NewCombatSystem(w, system.CombatConfig{}, effects, spawn),
		effects,
	}
}
