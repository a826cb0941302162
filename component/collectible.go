package component

import (
	"time"

	"github.com/lixenwraith/arcade/vmath"
)

// Collectible is a pickup; collected items stay in the list with Collected set
type Collectible struct {
	ID     string
	Kind   CollectibleKind
	Type   string // Resource type or power-up name
	Pos    vmath.Vec2
	Radius float64
	Weight int
	Points int

	Collected bool

	SpawnedAt time.Duration
	// Lifespan expires an uncollected item; zero keeps it indefinitely
	Lifespan time.Duration
	Expired  bool

	// Origin is where a dropped cargo item returns
	Origin vmath.Vec2
}

// Available reports whether the item can still be picked up
func (c *Collectible) Available() bool {
	return !c.Collected && !c.Expired
}

// DropZone exchanges carried cargo for score
type DropZone struct {
	ID        string
	Pos       vmath.Vec2
	Width     float64
	Height    float64
	Delivered []CargoItem
}

func (z *DropZone) Box() vmath.Box {
	return vmath.BoxAt(z.Pos, z.Width, z.Height)
}
