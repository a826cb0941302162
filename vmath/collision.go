package vmath

import "math"

// Box is an axis-aligned rectangle anchored at its top-left corner
type Box struct {
	X, Y, W, H float64
}

// BoxAt builds a box of size w×h centred on c
func BoxAt(c Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }
func (b Box) Center() Vec2    { return Vec2{b.X + b.W/2, b.Y + b.H/2} }

// Contains reports whether p lies inside b, edges inclusive
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Inflate grows the box by d on every side
func (b Box) Inflate(d float64) Box {
	return Box{X: b.X - d, Y: b.Y - d, W: b.W + 2*d, H: b.H + 2*d}
}

// AABBOverlap reports whether the projections of a and b overlap on both axes
// All four comparisons are strict: boxes sharing an edge do not overlap
func AABBOverlap(a, b Box) bool {
	return a.X < b.Right() &&
		b.X < a.Right() &&
		a.Y < b.Bottom() &&
		b.Y < a.Bottom()
}

// CircleRectDistance returns the distance from (cx, cy) to the nearest point of r
// Zero when the centre lies inside the rectangle
func CircleRectDistance(cx, cy float64, r Box) float64 {
	nx := Clamp(cx, r.X, r.Right())
	ny := Clamp(cy, r.Y, r.Bottom())
	return math.Hypot(cx-nx, cy-ny)
}

// CircleBlocked reports whether a circle of radius+buffer at c intrudes into r
func CircleBlocked(c Vec2, radius, buffer float64, r Box) bool {
	return CircleRectDistance(c.X, c.Y, r) < radius+buffer
}

// PointDistance is the Euclidean distance between p1 and p2
func PointDistance(p1, p2 Vec2) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// OutOfBounds reports whether box b lies entirely outside [0,w]×[0,h] expanded by margin
func OutOfBounds(b Box, w, h, margin float64) bool {
	return b.Right() < -margin || b.X > w+margin || b.Bottom() < -margin || b.Y > h+margin
}
