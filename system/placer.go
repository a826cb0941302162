package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// Placer finds spawn positions with a bounded search and an explicit fallback
type Placer struct {
	world    *engine.World
	attempts int
	buffer   float64
	// safe are fixed cells tried after the ring search
	safe []maze.Point

	fallbacks    int
	statFallback *atomic.Int64
}

// NewPlacer builds a placer; attempts <= 0 uses parameter.SpawnAttempts
func NewPlacer(world *engine.World, attempts int, safe []maze.Point) *Placer {
	if attempts <= 0 {
		attempts = parameter.SpawnAttempts
	}
	return &Placer{
		world:        world,
		attempts:     attempts,
		buffer:       parameter.SpawnBuffer,
		safe:         safe,
		statFallback: world.Status.Ints.Get("spawn.fallback"),
	}
}

// Fallbacks returns how many placements used the last-resort slot
func (p *Placer) Fallbacks() int { return p.fallbacks }

// Entry picks a point in the band above the world for a body of the given size,
// clear of live hostiles and obstacles
func (p *Placer) Entry(size float64) (vmath.Vec2, bool) {
	w := p.world
	half := size / 2
	for i := 0; i < p.attempts; i++ {
		c := vmath.V(
			vmath.RandRange(w.Rng, half, w.Width-half),
			vmath.RandRange(w.Rng, -parameter.SpawnBand, -half),
		)
		if p.clear(vmath.BoxAt(c, size, size)) {
			return c, true
		}
	}

	// Stride the golden ratio across the width so consecutive fallbacks spread out
	p.fallbacks++
	p.statFallback.Add(1)
	slot := math.Mod(float64(p.fallbacks)*0.6180339887, 1)
	return vmath.V(half+slot*math.Max(w.Width-size, 0), -parameter.SpawnBand-size), false
}

func (p *Placer) clear(b vmath.Box) bool {
	w := p.world
	b = b.Inflate(p.buffer)
	for i := range w.Hostiles {
		if !w.Hostiles[i].Dead && vmath.AABBOverlap(b, w.Hostiles[i].Box()) {
			return false
		}
	}
	for i := range w.Obstacles {
		if !w.Obstacles[i].Dead && vmath.AABBOverlap(b, w.Obstacles[i].Box()) {
			return false
		}
	}
	return true
}

// Cell picks a passage cell centre away from the player that occupied rejects
// Search order: random attempts, rings around the last pick, safe zones, world centre with jitter
func (p *Placer) Cell(occupied func(maze.Point) bool) (vmath.Vec2, bool) {
	w := p.world
	g := w.Grid
	if g == nil {
		return p.jitteredCentre(), false
	}

	ok := func(c maze.Point) bool {
		if g.IsWall(c.X, c.Y) || (occupied != nil && occupied(c)) {
			return false
		}
		return vmath.PointDistance(g.CellCenter(c), w.Player.Pos) >= parameter.SpawnPlayerClearance
	}

	var pick maze.Point
	for i := 0; i < p.attempts; i++ {
		pick = maze.Point{X: w.Rng.Intn(g.Cols), Y: w.Rng.Intn(g.Rows)}
		if ok(pick) {
			return g.CellCenter(pick), true
		}
	}

	for r := 1; r <= parameter.SpawnRingRadius; r++ {
		for _, c := range g.Ring(pick, r) {
			if ok(c) {
				return g.CellCenter(c), true
			}
		}
	}

	for _, c := range p.safe {
		if !g.IsWall(c.X, c.Y) && (occupied == nil || !occupied(c)) {
			return g.CellCenter(c), true
		}
	}

	p.fallbacks++
	p.statFallback.Add(1)
	return p.jitteredCentre(), false
}

func (p *Placer) jitteredCentre() vmath.Vec2 {
	w := p.world
	j := parameter.SpawnJitter
	return vmath.V(
		w.Width/2+vmath.RandRange(w.Rng, -j, j),
		w.Height/2+vmath.RandRange(w.Rng, -j, j),
	)
}
