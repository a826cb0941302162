package component

import (
	"time"

	"github.com/lixenwraith/arcade/vmath"
)

// CargoItem is a delivered-or-carried unit of cargo
type CargoItem struct {
	ID     string
	Weight int
	Points int
	// PickedAt is game time of pickup, used by inventory lifespan
	PickedAt time.Duration
}

// Cargo is a weight-capacity-limited inventory
// Invariant: TotalWeight <= MaxCapacity
type Cargo struct {
	Items       []CargoItem
	TotalWeight int
	MaxCapacity int
}

// CanAccept reports whether an item of weight w fits without exceeding capacity
func (c *Cargo) CanAccept(w int) bool {
	return c.TotalWeight+w <= c.MaxCapacity
}

// Add stores the item if it fits; a rejected item leaves the inventory unchanged
func (c *Cargo) Add(item CargoItem) bool {
	if item.Weight < 0 || !c.CanAccept(item.Weight) {
		return false
	}
	c.Items = append(c.Items, item)
	c.TotalWeight += item.Weight
	return true
}

// Remove drops the item with the given ID, returning it
func (c *Cargo) Remove(id string) (CargoItem, bool) {
	for i, it := range c.Items {
		if it.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.TotalWeight -= it.Weight
			return it, true
		}
	}
	return CargoItem{}, false
}

// Unload returns every carried item and empties the inventory
func (c *Cargo) Unload() []CargoItem {
	items := c.Items
	c.Items = nil
	c.TotalWeight = 0
	return items
}

// Len returns carried item count
func (c *Cargo) Len() int { return len(c.Items) }

// Player is the single user-controlled entity of a session
type Player struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Width  float64
	Height float64
	// Radius is the collision circle used for wall tests in maze topology
	Radius float64
	// Facing is the last heading in radians, updated even when a move is blocked
	Facing float64

	Health    int
	MaxHealth int
	Lives     int

	Cargo Cargo

	// Growth counts completed resource waves
	Growth int
}

// Box returns the player's bounding box
func (p *Player) Box() vmath.Box {
	return vmath.BoxAt(p.Pos, p.Width, p.Height)
}

// Alive reports whether the player still has a life to play
func (p *Player) Alive() bool {
	return p.Lives > 0
}
