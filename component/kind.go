// Package component holds the plain entity data the systems mutate
// Entities carry only the fields their kind needs; behaviour lives in system
package component

// Side tags projectile ownership
type Side uint8

const (
	SidePlayer Side = iota
	SideHostile
)

func (s Side) String() string {
	if s == SideHostile {
		return "hostile"
	}
	return "player"
}

// Tier scales hostile strength and particle bursts
type Tier uint8

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

func (t Tier) String() string {
	switch t {
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "small"
	}
}

// HostileKind selects size and behaviour of a hostile
type HostileKind uint8

const (
	HostileDrone   HostileKind = iota // Small shooter enemy, drifts down
	HostileGunship                    // Medium "boss-lite", fires aimed shots
	HostileBoss                       // Boss encounter unit
	HostileGuard                      // Maze patroller with chase
	HostileHazard                     // Static snake-field hazard
)

func (k HostileKind) String() string {
	switch k {
	case HostileGunship:
		return "gunship"
	case HostileBoss:
		return "boss"
	case HostileGuard:
		return "guard"
	case HostileHazard:
		return "hazard"
	default:
		return "drone"
	}
}

// CollectibleKind distinguishes pickup handling
type CollectibleKind uint8

const (
	CollectibleCargo    CollectibleKind = iota // Weighted item, delivered to a drop zone
	CollectibleResource                        // One of N typed items in a synchronized wave
	CollectiblePowerUp                         // Activates a timed weapon modifier
	CollectibleFood                            // Snake growth pellet
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleResource:
		return "resource"
	case CollectiblePowerUp:
		return "powerup"
	case CollectibleFood:
		return "food"
	default:
		return "cargo"
	}
}

// PowerUp names a timed player modifier
type PowerUp string

const (
	PowerUpDoubleShot PowerUp = "double_shot"
	PowerUpTripleShot PowerUp = "triple_shot"
)
