package component

// Direction is a grid heading
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the cell offset of one step
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the 180° heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// Snake is a grid-locked body, head first
type Snake struct {
	Body    []Cell
	Dir     Direction
	NextDir Direction
	// Pending is the number of steps the tail stays put
	Pending int
	// Collided is set when the head enters its own body
	Collided bool
}

// Head returns the head cell
func (s *Snake) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// Occupies reports whether any body cell after the head is c
func (s *Snake) Occupies(c Cell) bool {
	if len(s.Body) < 2 {
		return false
	}
	for _, b := range s.Body[1:] {
		if b == c {
			return true
		}
	}
	return false
}

// Queue sets the heading applied at the next advance; reversals are ignored
func (s *Snake) Queue(d Direction) bool {
	if d == DirNone || d == s.Dir.Opposite() {
		return false
	}
	s.NextDir = d
	return true
}
