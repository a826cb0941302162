package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// SnakeSystem advances the grid-locked snake one cell per step interval
// The player entity follows the head so pickups and hazard contact resolve generically
type SnakeSystem struct {
	world      *engine.World
	cols, rows int
	interval   time.Duration
	// acc carries time not yet spent on a whole step
	acc time.Duration
	// onStep resolves contacts on each cell the head enters
	onStep func()

	statLength *atomic.Int64
}

func NewSnakeSystem(world *engine.World, cols, rows int, interval time.Duration) *SnakeSystem {
	s := &SnakeSystem{
		world:      world,
		cols:       cols,
		rows:       rows,
		interval:   interval,
		statLength: world.Status.Ints.Get("snake.length"),
	}
	s.syncPlayer()
	return s
}

// OnStep registers fn to run after every step, so cells crossed within one tick still resolve
func (s *SnakeSystem) OnStep(fn func()) {
	s.onStep = fn
}

func (s *SnakeSystem) Name() string  { return "snake" }
func (s *SnakeSystem) Priority() int { return parameter.PrioritySnake }

// queueInput turns the first acceptable held direction into the next heading
func (s *SnakeSystem) queueInput() {
	sn := s.world.Snake
	in := s.world.Input
	for _, kd := range [...]struct {
		key engine.Key
		dir component.Direction
	}{
		{engine.KeyUp, component.DirUp},
		{engine.KeyDown, component.DirDown},
		{engine.KeyLeft, component.DirLeft},
		{engine.KeyRight, component.DirRight},
	} {
		if in.Held(kd.key) && sn.Queue(kd.dir) {
			return
		}
	}
}

func (s *SnakeSystem) Update() {
	w := s.world
	sn := w.Snake
	if sn == nil || len(sn.Body) == 0 || sn.Collided || !w.Player.Alive() {
		return
	}
	s.queueInput()

	s.acc += w.Dt
	for s.acc >= s.interval && s.interval > 0 {
		s.acc -= s.interval
		if !s.advance() {
			break
		}
		if s.onStep != nil {
			s.onStep()
		}
		if !w.Player.Alive() {
			break
		}
	}
	s.statLength.Store(int64(len(sn.Body)))
}

// advance moves the head one wrapped cell; returns false on self-collision
func (s *SnakeSystem) advance() bool {
	w := s.world
	sn := w.Snake
	if sn.NextDir != component.DirNone {
		sn.Dir = sn.NextDir
	}
	if sn.Dir == component.DirNone {
		return true
	}

	dx, dy := sn.Dir.Delta()
	head := sn.Head()
	next := component.Cell{
		X: vmath.WrapInt(head.X+dx, s.cols),
		Y: vmath.WrapInt(head.Y+dy, s.rows),
	}

	// The tail vacates its cell this step unless growth is pending
	body := sn.Body
	if sn.Pending == 0 {
		body = body[:len(body)-1]
	}
	for _, c := range body {
		if c == next {
			sn.Collided = true
			w.KillPlayer("self")
			return false
		}
	}

	sn.Body = append(sn.Body, component.Cell{})
	copy(sn.Body[1:], sn.Body[:len(sn.Body)-1])
	sn.Body[0] = next
	if sn.Pending > 0 {
		sn.Pending--
	} else {
		sn.Body = sn.Body[:len(sn.Body)-1]
	}
	s.syncPlayer()
	return true
}

// syncPlayer centres the player on the head cell
func (s *SnakeSystem) syncPlayer() {
	w := s.world
	if w.Snake == nil || len(w.Snake.Body) == 0 {
		return
	}
	head := w.Snake.Head()
	size := parameter.CellSize
	if w.Grid != nil {
		size = w.Grid.CellSize
		w.Player.Pos = w.Grid.CellCenter(maze.Point{X: head.X, Y: head.Y})
	} else {
		w.Player.Pos = vmath.V((float64(head.X)+0.5)*size, (float64(head.Y)+0.5)*size)
	}
	w.Player.Width = size * 0.8
	w.Player.Height = size * 0.8
}
