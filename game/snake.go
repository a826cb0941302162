package game

import (
	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/system"
)

// resourceTypes is the set every synchronized wave spawns
var resourceTypes = []string{"ore", "gas", "ice", "bio"}

func snakeWorld(cfg config.Game, _ int64) engine.WorldConfig {
	return engine.WorldConfig{
		Topology:  engine.TopologyWrap,
		Grid:      maze.NewGrid(parameter.SnakeCols, parameter.SnakeRows, parameter.CellSize),
		Countdown: cfg.Countdown,
	}
}

func buildSnake(w *engine.World, _ config.Game) []engine.System {
	head := component.Cell{X: parameter.SnakeCols / 2, Y: parameter.SnakeRows / 2}
	body := make([]component.Cell, parameter.SnakeStartLength)
	for i := range body {
		body[i] = component.Cell{X: head.X - i, Y: head.Y}
	}
	w.Snake = &component.Snake{Body: body, Dir: component.DirRight, NextDir: component.DirRight}

	effects := system.NewEffectsBus(w)
	snake := system.NewSnakeSystem(w, parameter.SnakeCols, parameter.SnakeRows, parameter.SnakeStepInterval)
	spawn := system.NewSpawnSystem(w, system.SpawnConfig{
		Food:          true,
		ResourceTypes: resourceTypes,
	})

	combat := system.NewCombatSystem(w, system.CombatConfig{}, effects, spawn)
	snake.OnStep(combat.ResolveContacts)

	return []engine.System{
		snake,
		spawn,
		combat,
		effects,
	}
}
