package component

import (
	"time"

	"github.com/lixenwraith/arcade/vmath"
)

// Particle is a cosmetic effect fragment with its own decay
type Particle struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Life    time.Duration
	MaxLife time.Duration
	Size    float64
	Color   string
}

// Opacity is remaining life as a fraction of max life
func (p *Particle) Opacity() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
