package component

import (
	"time"

	"github.com/lixenwraith/arcade/vmath"
)

// Behavior is per-hostile movement state for patrol/chase pathing
type Behavior struct {
	Route      []vmath.Vec2 // Patrol waypoints in world space
	RouteIndex int
	Chasing    bool
	// DetectionRadius switches the hostile to chase when the player is closer
	DetectionRadius float64
	Speed           float64
	// LastMove is game time of the last successful move
	LastMove time.Duration
	// Stuck counts consecutive blocked moves; reset on success
	Stuck int
}

// Hostile is an enemy unit; removed once Health <= 0
type Hostile struct {
	ID     string
	Kind   HostileKind
	Tier   Tier
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Width  float64
	Height float64

	Health        int
	MaxHealth     int
	Points        int
	ContactDamage int

	// Boss marks a unit tracked by the active boss encounter
	Boss bool

	FireInterval time.Duration // Zero means the hostile never fires
	LastFire     time.Duration

	Behavior Behavior
	Dead     bool
}

func (h *Hostile) Box() vmath.Box {
	return vmath.BoxAt(h.Pos, h.Width, h.Height)
}

// Obstacle is a destructible environmental body such as an asteroid
type Obstacle struct {
	ID            string
	Pos           vmath.Vec2
	Vel           vmath.Vec2
	Size          float64
	Tier          Tier
	Health        int
	Points        int
	ContactDamage int
	Spin          float64
	Dead          bool
}

func (o *Obstacle) Box() vmath.Box {
	return vmath.BoxAt(o.Pos, o.Size, o.Size)
}

// Decoration is a cosmetic background body that never collides
type Decoration struct {
	ID    string
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Size  float64
	Layer int
}
