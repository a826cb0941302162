package game

import (
	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/system"
)

// cargoStart is the player's entry cell; the generator always opens it
var cargoStart = maze.Point{X: 1, Y: 1}

func cargoWorld(cfg config.Game, seed int64) engine.WorldConfig {
	grid := maze.Generate(maze.Config{
		Cols:     parameter.MazeCols,
		Rows:     parameter.MazeRows,
		Braiding: parameter.MazeBraiding,
		CellSize: parameter.CellSize,
		Seed:     seed,
	})
	return engine.WorldConfig{
		Topology:          engine.TopologyMaze,
		Grid:              grid,
		Countdown:         cfg.Countdown,
		InventoryLifespan: cfg.InventoryLifespan,
	}
}

func buildCargo(w *engine.World, _ config.Game) []engine.System {
	g := w.Grid
	w.Player.Pos = g.CellCenter(cargoStart)
	w.Player.Radius = parameter.MazePlayerRadius
	w.Player.Width = parameter.MazePlayerRadius * 2
	w.Player.Height = parameter.MazePlayerRadius * 2
	w.Player.Cargo = component.Cargo{MaxCapacity: parameter.CargoCapacity}

	zone := farthestCell(g, cargoStart)
	w.AddDropZone(component.DropZone{
		ID:     w.NextID("z"),
		Pos:    g.CellCenter(zone),
		Width:  parameter.DropZoneSize,
		Height: parameter.DropZoneSize,
	})

	effects := system.NewEffectsBus(w)
	spawn := system.NewSpawnSystem(w, system.SpawnConfig{
		Guards:    parameter.MazeGuardCount,
		Cargo:     parameter.CargoCount,
		SafeZones: cornerCells(g),
	})
	spawn.Populate()

	return []engine.System{
		system.NewPlayerMotionSystem(w, parameter.MazePlayerSpeed),
		system.NewMotionSystem(w),
		spawn,
		system.NewCombatSystem(w, system.CombatConfig{RefreshOnDelivery: true}, effects, spawn),
		effects,
	}
}

// farthestCell returns the passage with the longest route from start
func farthestCell(g *maze.Grid, start maze.Point) maze.Point {
	best, bestLen := start, 0
	for _, p := range g.Passages() {
		if n := len(g.Path(start, p)); n > bestLen {
			best, bestLen = p, n
		}
	}
	return best
}

// cornerCells lists the passage nearest each grid corner
func cornerCells(g *maze.Grid) []maze.Point {
	corners := []maze.Point{{X: 1, Y: 1}, {X: g.Cols - 2, Y: 1}, {X: 1, Y: g.Rows - 2}, {X: g.Cols - 2, Y: g.Rows - 2}}
	var out []maze.Point
	for _, c := range corners {
		for r := 0; r <= 3; r++ {
			found := false
			for _, p := range g.Ring(c, r) {
				if !g.IsWall(p.X, p.Y) {
					out = append(out, p)
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return out
}
