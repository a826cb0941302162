// Package maze builds wall grids for grid-based worlds and answers
// the geometry queries movement and spawning need against them
package maze

import (
	"math/rand"
	"time"
)

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Config drives maze generation
type Config struct {
	Cols, Rows int

	// Braiding: 0.0 keeps a perfect maze (tree), 1.0 removes every dead end
	// Plaza and pillar constraints take precedence over the probability
	Braiding float64

	CellSize float64
	Seed     int64 // 0 = time based
}

var (
	carveDirs = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	orthoDirs = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// Generate carves a maze with a recursive backtracker and optional braiding
// Carving runs on the largest odd sub-grid; any remaining column or row stays wall
func Generate(cfg Config) *Grid {
	g := NewGrid(cfg.Cols, cfg.Rows, cfg.CellSize)
	for i := range g.walls {
		g.walls[i] = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cols, rows := odd(g.Cols), odd(g.Rows)
	carve(g, cols, rows, Point{1, 1}, rng)
	if cfg.Braiding > 0 {
		braid(g, cols, rows, cfg.Braiding, rng)
	}
	return g
}

func carve(g *Grid, cols, rows int, start Point, rng *rand.Rand) {
	stack := []Point{start}
	g.set(start.X, start.Y, false)

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range carveDirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && g.IsWall(nx, ny) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		g.set(cur.X+d.X/2, cur.Y+d.Y/2, false)
		next := Point{cur.X + d.X, cur.Y + d.Y}
		g.set(next.X, next.Y, false)
		stack = append(stack, next)
	}
}

// braid opens loops at dead ends without creating 2×2 plazas or isolated pillars
func braid(g *Grid, cols, rows int, probability float64, rng *rand.Rand) {
	candidates := make([]Point, 0, 4)
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if g.IsWall(x, y) {
				continue
			}
			exits := 0
			for _, d := range orthoDirs {
				if !g.IsWall(x+d.X, y+d.Y) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range carveDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if !g.IsWall(nx, ny) && g.IsWall(wx, wy) && g.canOpen(wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				g.set(c.X, c.Y, false)
			}
		}
	}
}

// canOpen reports whether turning (x, y) into a passage keeps the topology clean
func (g *Grid) canOpen(x, y int) bool {
	open := func(tx, ty int) bool { return !g.IsWall(tx, ty) }

	// No 2×2 open plazas around (x, y)
	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	// No wall left without a wall neighbour
	for _, d := range orthoDirs {
		nx, ny := x+d.X, y+d.Y
		if !g.inBounds(nx, ny) || !g.IsWall(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if g.inBounds(mx, my) && g.IsWall(mx, my) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

func odd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
