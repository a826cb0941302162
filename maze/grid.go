package maze

import (
	"math"

	"github.com/lixenwraith/arcade/vmath"
)

// Grid is a wall map in row-major order
// Cells outside the grid read as walls
type Grid struct {
	Cols, Rows int
	CellSize   float64
	walls      []bool
}

// NewGrid returns an all-passage grid
func NewGrid(cols, rows int, cellSize float64) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{Cols: cols, Rows: rows, CellSize: cellSize, walls: make([]bool, cols*rows)}
}

// FromRows builds a grid from strings where '#' marks a wall
func FromRows(cellSize float64, rows ...string) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(cols, len(rows), cellSize)
	for y, r := range rows {
		for x := 0; x < cols; x++ {
			g.set(x, y, x >= len(r) || r[x] == '#')
		}
	}
	return g
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

func (g *Grid) set(x, y int, wall bool) {
	if g.inBounds(x, y) {
		g.walls[y*g.Cols+x] = wall
	}
}

// SetWall marks or clears a wall cell
func (g *Grid) SetWall(x, y int, wall bool) { g.set(x, y, wall) }

// IsWall reports whether (x, y) blocks movement
func (g *Grid) IsWall(x, y int) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return g.walls[y*g.Cols+x]
}

// Width and Height return the world extent in pixels
func (g *Grid) Width() float64  { return float64(g.Cols) * g.CellSize }
func (g *Grid) Height() float64 { return float64(g.Rows) * g.CellSize }

// CellRect returns the pixel rectangle of a cell
func (g *Grid) CellRect(x, y int) vmath.Box {
	return vmath.Box{X: float64(x) * g.CellSize, Y: float64(y) * g.CellSize, W: g.CellSize, H: g.CellSize}
}

// CellCenter returns the pixel centre of a cell
func (g *Grid) CellCenter(p Point) vmath.Vec2 {
	return vmath.Vec2{X: (float64(p.X) + 0.5) * g.CellSize, Y: (float64(p.Y) + 0.5) * g.CellSize}
}

// CellAt returns the cell containing pixel position p
func (g *Grid) CellAt(p vmath.Vec2) Point {
	return Point{X: int(math.Floor(p.X / g.CellSize)), Y: int(math.Floor(p.Y / g.CellSize))}
}

// Passages lists every open cell in row-major order
func (g *Grid) Passages() []Point {
	out := make([]Point, 0, len(g.walls)/2)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if !g.IsWall(x, y) {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// CircleBlocked reports whether a circle at c intrudes into any wall cell near it
// Only the cells the inflated circle can touch are tested
func (g *Grid) CircleBlocked(c vmath.Vec2, radius, buffer float64) bool {
	reach := radius + buffer
	minX := int(math.Floor((c.X - reach) / g.CellSize))
	maxX := int(math.Floor((c.X + reach) / g.CellSize))
	minY := int(math.Floor((c.Y - reach) / g.CellSize))
	maxY := int(math.Floor((c.Y + reach) / g.CellSize))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if g.IsWall(x, y) && vmath.CircleBlocked(c, radius, buffer, g.CellRect(x, y)) {
				return true
			}
		}
	}
	return false
}

// Path returns the shortest passage route from a to b inclusive, or nil
func (g *Grid) Path(a, b Point) []Point {
	if g.IsWall(a.X, a.Y) || g.IsWall(b.X, b.Y) {
		return nil
	}
	if a == b {
		return []Point{a}
	}

	prev := make(map[Point]Point, 64)
	seen := map[Point]bool{a: true}
	queue := []Point{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			var path []Point
			for p := b; p != a; p = prev[p] {
				path = append(path, p)
			}
			path = append(path, a)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, d := range orthoDirs {
			n := Point{cur.X + d.X, cur.Y + d.Y}
			if !seen[n] && !g.IsWall(n.X, n.Y) {
				seen[n] = true
				prev[n] = cur
				queue = append(queue, n)
			}
		}
	}
	return nil
}

// Ring returns the in-bounds cells at Chebyshev distance r from c
func (g *Grid) Ring(c Point, r int) []Point {
	if r <= 0 {
		if g.inBounds(c.X, c.Y) {
			return []Point{c}
		}
		return nil
	}
	out := make([]Point, 0, 8*r)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if max(abs(dx), abs(dy)) != r {
				continue
			}
			p := Point{c.X + dx, c.Y + dy}
			if g.inBounds(p.X, p.Y) {
				out = append(out, p)
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
