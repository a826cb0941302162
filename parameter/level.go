package parameter

import "time"

// Cargo maze
const (
	MazeCols     = 24
	MazeRows     = 16
	MazeBraiding = 0.35

	CargoCount      = 8
	CargoMinWeight  = 1
	CargoMaxWeight  = 3
	CargoCapacity   = 5
	CargoRadius     = 10.0
	CargoPoints     = 150
	CargoPointsPerW = 50 // Added per weight unit

	// MazeCountdown is the delivery time limit
	MazeCountdown  = 300 * time.Second
	MazeGuardCount = 4

	DropZoneSize = 60.0
)

// Snake
const (
	SnakeCols         = 24
	SnakeRows         = 16
	SnakeStepInterval = 120 * time.Millisecond
	SnakeStartLength  = 4

	FoodPoints   = 10
	FoodInterval = 4 * time.Second
	FoodMax      = 3

	ResourcePoints   = 50
	ResourceLifespan = 12 * time.Second
	// ResourceRespawnDelay is the pause between a cleared wave and the next
	ResourceRespawnDelay = 1500 * time.Millisecond

	// HazardWaveBase and HazardWaveGrowth size the hazard wave: base + growth*player.Growth
	HazardWaveBase   = 2
	HazardWaveGrowth = 1
	HazardWaveMax    = 14

	// SnakeGrowPerWave is body growth when every resource type is collected
	SnakeGrowPerWave = 3
	GrowPoints       = 250
)
