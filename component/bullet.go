package component

import "github.com/lixenwraith/arcade/vmath"

// Bullet is a linear projectile consumed on its first hit or on leaving the world
type Bullet struct {
	ID     string
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Width  float64
	Height float64
	Damage int
	Owner  Side
	Color  string
	Dead   bool
}

func (b *Bullet) Box() vmath.Box {
	return vmath.BoxAt(b.Pos, b.Width, b.Height)
}
