package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

var testWaves = []WaveRow{
	{Kills: 0, MaxHostiles: 2, Interval: 500 * time.Millisecond},
	{Kills: 5, MaxHostiles: 4, Interval: 250 * time.Millisecond, GunshipChance: 1},
}

func TestWaveTableKeyedByKills(t *testing.T) {
	w := newTestWorld(t, engine.WorldConfig{})
	sys := NewSpawnSystem(w, SpawnConfig{Waves: testWaves})
	if w.Wave != 1 || w.MaxHostiles != 2 || w.HostileInterval != 500*time.Millisecond {
		t.Fatalf("initial wave=%d max=%d interval=%v", w.Wave, w.MaxHostiles, w.HostileInterval)
	}

	w.Kills = 4
	sys.Update()
	if w.Wave != 1 || countEvents(w, event.EventWaveChanged) != 0 {
		t.Fatal("wave changed before the kill threshold")
	}

	w.Kills = 5
	sys.Update()
	if w.Wave != 2 || w.MaxHostiles != 4 || w.HostileInterval != 250*time.Millisecond {
		t.Errorf("wave=%d max=%d interval=%v", w.Wave, w.MaxHostiles, w.HostileInterval)
	}
	if w.Timers.Interval(timerHostile) != 250*time.Millisecond {
		t.Error("spawn timer not updated with the wave")
	}
	if countEvents(w, event.EventWaveChanged) != 1 {
		t.Error("missing wave change event")
	}
}

func TestHostileSpawnRespectsCapAndCooldown(t *testing.T) {
	w := newTestWorld(t, engine.WorldConfig{})
	sys := NewSpawnSystem(w, SpawnConfig{Waves: testWaves})

	for i := 0; i < 20; i++ {
		advance(w, 100*time.Millisecond)
		sys.Update()
	}
	if got := w.LiveHostiles(); got != 2 {
		t.Fatalf("live hostiles = %d, want capped at 2", got)
	}
	for _, h := range w.Hostiles {
		if h.Pos.Y >= 0 {
			t.Errorf("hostile %s spawned inside the world at %v", h.ID, h.Pos)
		}
		if err := h.Validate(); err != nil {
			t.Errorf("spawned invalid hostile: %v", err)
		}
	}
}

func TestBossEncounterLifecycle(t *testing.T) {
	w := newTestWorld(t, engine.WorldConfig{})
	sys := NewSpawnSystem(w, SpawnConfig{
		Waves:  testWaves,
		Bosses: []BossTier{{Score: 1000, Units: 2}, {Score: 5000, Units: 1}},
	})
	w.Hostiles = []component.Hostile{{ID: "h-0", Pos: vmath.V(100, 100), Width: 36, Height: 36, Health: 10, Points: 100}}

	w.Score = 1200
	sys.Update()

	if !w.Boss.Active || w.Boss.Remaining != 2 {
		t.Fatalf("boss state = %+v", w.Boss)
	}
	if !w.Hostiles[0].Dead {
		t.Error("regular hostile not cleared by the encounter")
	}
	if w.Score != 1200 {
		t.Errorf("clearing regular hostiles changed score to %d", w.Score)
	}

	// Regular spawning pauses during the encounter
	for i := 0; i < 10; i++ {
		advance(w, time.Second)
		sys.Update()
	}
	for _, h := range w.Hostiles {
		if !h.Dead && !h.Boss {
			t.Fatalf("regular hostile %s spawned during boss encounter", h.ID)
		}
	}

	for i := range w.Hostiles {
		if w.Hostiles[i].Boss {
			releaseHostile(w, &w.Hostiles[i])
		}
	}
	if w.Boss.Active || w.Boss.Tier != 1 {
		t.Fatalf("boss state after all units gone = %+v", w.Boss)
	}

	// Next tier stays locked until its threshold
	sys.Update()
	if w.Boss.Active {
		t.Error("second tier started below its score threshold")
	}
}

func TestAsteroidInterval(t *testing.T) {
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, parameter.AsteroidInterval},
		{499, parameter.AsteroidInterval},
		{500, parameter.AsteroidInterval - parameter.AsteroidIntervalStep},
		{1_000_000, parameter.AsteroidMinInterval},
	}
	for _, tt := range tests {
		if got := asteroidInterval(tt.score); got != tt.want {
			t.Errorf("asteroidInterval(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestEntryFallback(t *testing.T) {
	w := newTestWorld(t, engine.WorldConfig{})
	// One obstacle covering the whole spawn band
	w.Obstacles = []component.Obstacle{{ID: "o-1", Pos: vmath.V(480, -60), Size: 2000, Health: 1}}
	p := NewPlacer(w, 5, nil)

	pos, ok := p.Entry(40)
	if ok {
		t.Fatal("placement succeeded inside a fully blocked band")
	}
	if pos.Y != -parameter.SpawnBand-40 || pos.X < 20 || pos.X > w.Width-20 {
		t.Errorf("fallback pos = %v", pos)
	}
	if p.Fallbacks() != 1 {
		t.Errorf("fallbacks = %d", p.Fallbacks())
	}
}

func TestCellPlacementOrder(t *testing.T) {
	t.Run("avoids walls and player", func(t *testing.T) {
		w := newTestWorld(t, engine.WorldConfig{Grid: maze.Generate(maze.Config{Cols: 21, Rows: 15, CellSize: 40, Seed: 3})})
		w.Player.Pos = w.Grid.CellCenter(maze.Point{X: 1, Y: 1})
		p := NewPlacer(w, 0, nil)
		for i := 0; i < 50; i++ {
			pos, ok := p.Cell(nil)
			if !ok {
				t.Fatal("unexpected fallback on an open maze")
			}
			c := w.Grid.CellAt(pos)
			if w.Grid.IsWall(c.X, c.Y) {
				t.Fatalf("placed in wall cell %v", c)
			}
			if vmath.PointDistance(pos, w.Player.Pos) < parameter.SpawnPlayerClearance {
				t.Fatalf("placed %v too close to the player", pos)
			}
		}
	})

	t.Run("safe zone", func(t *testing.T) {
		grid := maze.FromRows(40, "#####", "#...#", "#####")
		w := newTestWorld(t, engine.WorldConfig{Grid: grid})
		w.Player.Pos = grid.CellCenter(maze.Point{X: 2, Y: 1})
		safe := maze.Point{X: 3, Y: 1}
		p := NewPlacer(w, 3, []maze.Point{safe})

		// Every passage is within clearance of the player
		pos, ok := p.Cell(nil)
		if !ok || pos != grid.CellCenter(safe) {
			t.Errorf("pos = %v ok=%v, want safe zone %v", pos, ok, grid.CellCenter(safe))
		}
	})

	t.Run("centre with jitter", func(t *testing.T) {
		grid := maze.FromRows(40, "###", "#.#", "###")
		w := newTestWorld(t, engine.WorldConfig{Grid: grid})
		p := NewPlacer(w, 3, nil)

		pos, ok := p.Cell(func(maze.Point) bool { return true })
		if ok {
			t.Fatal("fully occupied grid should fall back")
		}
		centre := vmath.V(w.Width/2, w.Height/2)
		if d := pos.Sub(centre); d.X < -parameter.SpawnJitter || d.X > parameter.SpawnJitter ||
			d.Y < -parameter.SpawnJitter || d.Y > parameter.SpawnJitter {
			t.Errorf("fallback %v outside jitter of centre %v", pos, centre)
		}
	})
}

func TestResourceWavesAreSynchronized(t *testing.T) {
	w := newTestWorld(t, engine.WorldConfig{Grid: maze.NewGrid(24, 16, 40)})
	w.Snake = &component.Snake{Body: []component.Cell{{X: 2, Y: 2}, {X: 1, Y: 2}}}
	w.Player.Pos = w.Grid.CellCenter(maze.Point{X: 2, Y: 2})
	types := []string{"ore", "gas", "ice"}
	sys := NewSpawnSystem(w, SpawnConfig{ResourceTypes: types})

	advance(w, 16*time.Millisecond)
	sys.Update()
	if got := countAvailable(w, component.CollectibleResource); got != 3 {
		t.Fatalf("first wave placed %d resources, want 3", got)
	}
	if hazards := countKind(w, component.HostileHazard); hazards != parameter.HazardWaveBase {
		t.Errorf("hazards = %d, want %d", hazards, parameter.HazardWaveBase)
	}
	seen := map[string]bool{}
	for _, c := range w.Collectibles {
		seen[c.Type] = true
	}
	if len(seen) != 3 {
		t.Errorf("resource types = %v, want 3 distinct", seen)
	}

	// Partially collected wave blocks the next one
	w.Collectibles[0].Collected = true
	advance(w, 5*time.Second)
	sys.Update()
	if w.Resources.Wave != 1 {
		t.Fatal("next wave spawned while items remained")
	}

	// Collected or expired both count as cleared; the respawn delay still applies
	w.Collectibles[1].Collected = true
	w.Collectibles[2].Expired = true
	w.Player.Growth = 2
	advance(w, 16*time.Millisecond)
	sys.Update()
	if w.Resources.Wave != 1 {
		t.Fatal("next wave ignored the respawn delay")
	}

	advance(w, parameter.ResourceRespawnDelay)
	sys.Update()
	if w.Resources.Wave != 2 || w.Resources.Grown {
		t.Fatalf("resource state = %+v, want fresh wave 2", w.Resources)
	}
	want := parameter.HazardWaveBase + parameter.HazardWaveGrowth*2
	if hazards := countKind(w, component.HostileHazard); hazards != want {
		t.Errorf("hazards = %d, want %d replacing the previous wave", hazards, want)
	}
	if countEvents(w, event.EventResourceWave) != 2 {
		t.Errorf("resource wave events = %d", countEvents(w, event.EventResourceWave))
	}
}

func TestPopulateCargo(t *testing.T) {
	grid := maze.Generate(maze.Config{Cols: parameter.MazeCols, Rows: parameter.MazeRows, CellSize: 40, Seed: 9})
	w := newTestWorld(t, engine.WorldConfig{Grid: grid, Topology: engine.TopologyMaze})
	w.Player.Pos = grid.CellCenter(maze.Point{X: 1, Y: 1})
	sys := NewSpawnSystem(w, SpawnConfig{Cargo: 6, Guards: 3})
	sys.Populate()

	if w.TotalCollectibles != 6 || len(w.Collectibles) != 6 {
		t.Fatalf("total=%d placed=%d, want 6", w.TotalCollectibles, len(w.Collectibles))
	}
	cells := map[maze.Point]bool{}
	for _, c := range w.Collectibles {
		if c.Weight < parameter.CargoMinWeight || c.Weight > parameter.CargoMaxWeight {
			t.Errorf("cargo weight %d out of range", c.Weight)
		}
		if c.Origin != c.Pos {
			t.Errorf("cargo origin %v differs from spawn %v", c.Origin, c.Pos)
		}
		cells[grid.CellAt(c.Pos)] = true
	}
	if len(cells) != 6 {
		t.Errorf("cargo shares cells: %d distinct", len(cells))
	}
	if got := countKind(w, component.HostileGuard); got != 3 {
		t.Errorf("guards = %d, want 3", got)
	}
}

func countKind(w *engine.World, kind component.HostileKind) int {
	n := 0
	for _, h := range w.Hostiles {
		if !h.Dead && h.Kind == kind {
			n++
		}
	}
	return n
}
