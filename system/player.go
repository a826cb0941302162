package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// PlayerMotionSystem turns held keys into player velocity and resolves the move
// against the world topology
type PlayerMotionSystem struct {
	world *engine.World
	speed float64

	statBlocked *atomic.Int64
}

func NewPlayerMotionSystem(world *engine.World, speed float64) engine.System {
	return &PlayerMotionSystem{
		world:       world,
		speed:       speed,
		statBlocked: world.Status.Ints.Get("player.blocked"),
	}
}

func (s *PlayerMotionSystem) Name() string  { return "player" }
func (s *PlayerMotionSystem) Priority() int { return parameter.PriorityPlayer }

// inputVector returns the unit heading of the held direction keys
func inputVector(in engine.InputState) vmath.Vec2 {
	var v vmath.Vec2
	if in.Held(engine.KeyUp) {
		v.Y--
	}
	if in.Held(engine.KeyDown) {
		v.Y++
	}
	if in.Held(engine.KeyLeft) {
		v.X--
	}
	if in.Held(engine.KeyRight) {
		v.X++
	}
	return v.Normalize()
}

func (s *PlayerMotionSystem) Update() {
	w := s.world
	p := &w.Player
	if !p.Alive() {
		p.Vel = vmath.Vec2{}
		return
	}

	dir := inputVector(w.Input)
	p.Vel = dir.Scale(s.speed)
	if dir.IsZero() {
		return
	}
	p.Facing = dir.Angle()
	step := p.Vel.Scale(w.DtSeconds())

	switch w.Topology {
	case engine.TopologyWrap:
		next := p.Pos.Add(step)
		p.Pos = vmath.V(vmath.Wrap(next.X, w.Width), vmath.Wrap(next.Y, w.Height))
	case engine.TopologyMaze:
		s.slide(step)
	default:
		p.Pos = s.clamp(p.Pos.Add(step))
	}
}

// clamp keeps the player's extent inside the world
func (s *PlayerMotionSystem) clamp(pos vmath.Vec2) vmath.Vec2 {
	w := s.world
	hw, hh := w.Player.Width/2, w.Player.Height/2
	return vmath.V(
		vmath.Clamp(pos.X, hw, w.Width-hw),
		vmath.Clamp(pos.Y, hh, w.Height-hh),
	)
}

// slide tries the full step, then axis-only, half and perpendicular alternatives
// Facing has already been updated; a fully blocked move leaves Pos unchanged
func (s *PlayerMotionSystem) slide(step vmath.Vec2) {
	w := s.world
	p := &w.Player
	if w.Grid == nil {
		p.Pos = s.clamp(p.Pos.Add(step))
		return
	}

	perp := step.Perp().Scale(0.5)
	candidates := [...]vmath.Vec2{
		step,
		vmath.V(step.X, 0),
		vmath.V(0, step.Y),
		step.Scale(0.5),
		perp,
		perp.Scale(-1),
	}
	for _, c := range candidates {
		if c.IsZero() {
			continue
		}
		next := s.clamp(p.Pos.Add(c))
		if !w.Grid.CircleBlocked(next, p.Radius, parameter.WallSafetyBuffer) {
			p.Pos = next
			return
		}
	}
	s.statBlocked.Add(1)
}
