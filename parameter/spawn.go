package parameter

import "time"

// Spawn categories (shooter)
const (
	AsteroidInterval    = 2200 * time.Millisecond
	AsteroidMinInterval = 700 * time.Millisecond
	// AsteroidScoreStep and AsteroidIntervalStep shorten the interval as score grows
	AsteroidScoreStep    = 500
	AsteroidIntervalStep = 120 * time.Millisecond

	DecorationInterval = 350 * time.Millisecond
	DecorationMaxCount = 60

	PowerUpInterval = 14 * time.Second
)

// Placement search
const (
	// SpawnAttempts bounds random placement tries before the fallback slot
	SpawnAttempts = 20
	// SpawnBuffer is the minimum clearance between a new spawn and existing bodies
	SpawnBuffer = 24.0
	// SpawnBand is the height above the world where shooter spawns enter
	SpawnBand = 120.0
	// SpawnRingRadius is the max ring (in cells) searched around a blocked grid pick
	SpawnRingRadius = 6
	// SpawnJitter is the last-resort centre placement spread in px
	SpawnJitter = 40.0
	// SpawnPlayerClearance keeps grid spawns away from the player
	SpawnPlayerClearance = 120.0
)
