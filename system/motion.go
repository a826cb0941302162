package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// despawnMargin is how far past the world edge a body may travel before it is
// removed; it must exceed the spawn band so entering bodies survive
const despawnMargin = parameter.SpawnBand + parameter.BossHeight

// MotionSystem integrates every non-player body and applies hostile behaviours
// Leaving bodies are only marked; the world sweep removes them after the tick
type MotionSystem struct {
	world *engine.World

	statDespawned *atomic.Int64
	statReroutes  *atomic.Int64
}

func NewMotionSystem(world *engine.World) engine.System {
	return &MotionSystem{
		world:         world,
		statDespawned: world.Status.Ints.Get("motion.despawned"),
		statReroutes:  world.Status.Ints.Get("motion.reroutes"),
	}
}

func (s *MotionSystem) Name() string  { return "motion" }
func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

func (s *MotionSystem) Update() {
	w := s.world
	dt := w.DtSeconds()

	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Dead {
			continue
		}
		b.Pos = b.Pos.Integrate(b.Vel, dt)
		if vmath.OutOfBounds(b.Box(), w.Width, w.Height, 0) {
			b.Dead = true
		}
	}

	for i := range w.Hostiles {
		h := &w.Hostiles[i]
		if h.Dead {
			continue
		}
		switch h.Kind {
		case component.HostileGuard:
			s.guard(h, dt)
		case component.HostileHazard:
		case component.HostileBoss:
			s.boss(h, dt)
		default:
			h.Pos = h.Pos.Integrate(h.Vel, dt)
			if vmath.OutOfBounds(h.Box(), w.Width, w.Height, despawnMargin) || h.Box().Y > w.Height {
				releaseHostile(w, h)
				s.statDespawned.Add(1)
			}
		}
	}

	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Dead {
			continue
		}
		o.Pos = o.Pos.Integrate(o.Vel, dt)
		if vmath.OutOfBounds(o.Box(), w.Width, w.Height, despawnMargin) || o.Box().Y > w.Height {
			o.Dead = true
			s.statDespawned.Add(1)
		}
	}

	for i := range w.Decorations {
		d := &w.Decorations[i]
		d.Pos = d.Pos.Integrate(d.Vel, dt)
		d.Pos.X = vmath.Wrap(d.Pos.X, w.Width)
		d.Pos.Y = vmath.Wrap(d.Pos.Y, w.Height)
	}

	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Kind != component.CollectiblePowerUp || !c.Available() {
			continue
		}
		c.Pos.Y += parameter.PowerUpFallRate * dt
		if c.Pos.Y-c.Radius > w.Height {
			c.Expired = true
		}
	}
}

// boss descends to its cruise depth, then strafes between the side walls
func (s *MotionSystem) boss(h *component.Hostile, dt float64) {
	w := s.world
	if h.Pos.Y < parameter.BossCruiseDepth {
		h.Vel = vmath.V(0, parameter.BossSpeed)
	} else if h.Vel.Y != 0 || h.Vel.X == 0 {
		h.Vel = vmath.V(parameter.BossSpeed, 0)
	}
	h.Pos = h.Pos.Integrate(h.Vel, dt)

	half := h.Width / 2
	switch {
	case h.Pos.X < half:
		h.Pos.X = half
		h.Vel.X = parameter.BossSpeed
	case h.Pos.X > w.Width-half:
		h.Pos.X = w.Width - half
		h.Vel.X = -parameter.BossSpeed
	}
}

// guard patrols its route and chases the player inside the detection radius,
// re-routing after too many blocked moves
func (s *MotionSystem) guard(h *component.Hostile, dt float64) {
	w := s.world
	g := w.Grid
	if g == nil {
		return
	}
	b := &h.Behavior

	b.Chasing = w.Player.Alive() && vmath.PointDistance(h.Pos, w.Player.Pos) < b.DetectionRadius

	var target vmath.Vec2
	speed := b.Speed
	if b.Chasing {
		speed = parameter.GuardChaseSpeed
		target = w.Player.Pos
		if path := g.Path(g.CellAt(h.Pos), g.CellAt(w.Player.Pos)); len(path) > 1 {
			target = g.CellCenter(path[1])
		}
	} else {
		if b.RouteIndex >= len(b.Route) {
			b.Route = patrolRoute(w, h.Pos)
			b.RouteIndex = 0
			if len(b.Route) == 0 {
				return
			}
		}
		target = b.Route[b.RouteIndex]
		if vmath.PointDistance(h.Pos, target) < 1 {
			b.RouteIndex++
			return
		}
	}

	step := target.Sub(h.Pos).ClampLen(speed * dt)
	if step.IsZero() {
		return
	}
	h.Vel = step.Normalize().Scale(speed)

	radius := h.Width / 2
	for _, c := range [...]vmath.Vec2{step, vmath.V(step.X, 0), vmath.V(0, step.Y)} {
		if c.IsZero() {
			continue
		}
		next := h.Pos.Add(c)
		if !g.CircleBlocked(next, radius, 0) {
			h.Pos = next
			b.LastMove = w.Now
			b.Stuck = 0
			return
		}
	}

	b.Stuck++
	if b.Stuck > parameter.GuardStuckLimit {
		b.Route = patrolRoute(w, h.Pos)
		b.RouteIndex = 0
		b.Stuck = 0
		s.statReroutes.Add(1)
	}
}

// patrolRoute returns cell centres from the cell containing from to a random passage,
// preferring routes of at least GuardRouteLength cells
func patrolRoute(w *engine.World, from vmath.Vec2) []vmath.Vec2 {
	g := w.Grid
	if g == nil {
		return nil
	}
	passages := g.Passages()
	if len(passages) == 0 {
		return nil
	}

	start := g.CellAt(from)
	var best []maze.Point
	for i := 0; i < parameter.SpawnAttempts && len(best) < parameter.GuardRouteLength; i++ {
		if path := g.Path(start, passages[w.Rng.Intn(len(passages))]); len(path) > len(best) {
			best = path
		}
	}

	route := make([]vmath.Vec2, len(best))
	for i, p := range best {
		route[i] = g.CellCenter(p)
	}
	return route
}
