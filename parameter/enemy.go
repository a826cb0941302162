package parameter

import "time"

// Drone: small shooter hostile
const (
	DroneSize          = 36.0
	DroneHealth        = 10
	DronePoints        = 100
	DroneSpeed         = 90.0
	DroneContactDamage = 20
)

// Gunship: medium hostile that fires aimed shots
const (
	GunshipSize          = 56.0
	GunshipHealth        = 40
	GunshipPoints        = 300
	GunshipSpeed         = 60.0
	GunshipContactDamage = 35
	GunshipFireInterval  = 1800 * time.Millisecond
)

// Boss encounter unit
const (
	BossWidth         = 120.0
	BossHeight        = 80.0
	BossHealth        = 300
	BossPoints        = 2000
	BossSpeed         = 70.0
	BossContactDamage = 50
	BossFireInterval  = 900 * time.Millisecond
	// BossCruiseDepth is how far into the world bosses descend before strafing
	BossCruiseDepth = 120.0
)

// Asteroid obstacles
const (
	AsteroidMinSize       = 24.0
	AsteroidMaxSize       = 64.0
	AsteroidHealthPerPx   = 0.5 // Health = size * factor
	AsteroidPointsPerPx   = 2
	AsteroidMinSpeed      = 60.0
	AsteroidMaxSpeed      = 150.0
	AsteroidContactDamage = 25
)

// Maze guard
const (
	GuardSize            = 28.0
	GuardHealth          = 1
	GuardSpeed           = 110.0
	GuardChaseSpeed      = 140.0
	GuardDetectionRadius = 170.0
	GuardContactDamage   = 25
	// GuardStuckLimit is blocked moves before a guard re-routes
	GuardStuckLimit  = 12
	GuardRouteLength = 6
)

// Snake field hazard
const (
	HazardSize          = 32.0
	HazardHealth        = 1
	HazardContactDamage = 34
)
