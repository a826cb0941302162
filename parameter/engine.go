package parameter

import "time"

// Host loop
const (
	// TickRate is the host frame rate driving Session.Update
	TickRate = 60
	// FrameInterval is the host ticker period
	FrameInterval = time.Second / TickRate
	// MaxFrameDelta caps the delta a host feeds after a stall (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond
)

// World
const (
	// WorldWidth and WorldHeight are the canvas extent in pixels
	WorldWidth  = 960.0
	WorldHeight = 640.0

	// CellSize is the grid pitch for maze and snake worlds
	CellSize = 40.0
)

// EventLogCap bounds per-tick events kept for the host
const EventLogCap = 256
