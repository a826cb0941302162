package parameter

import "time"

// Player
const (
	PlayerMaxHealth = 100
	PlayerLives     = 3

	// ShooterPlayerSpeed is free-flight speed in px/sec
	ShooterPlayerSpeed = 320.0
	ShooterPlayerSize  = 40.0

	// MazePlayerSpeed is walking speed in px/sec
	MazePlayerSpeed = 170.0
	// MazePlayerRadius is the collision circle against wall cells
	MazePlayerRadius = 12.0
	// WallSafetyBuffer is added to entity radius for wall tests
	WallSafetyBuffer = 2.0

	// PickupRadius is the player-centre distance at which items are collected
	PickupRadius = 28.0
)

// Weapon
const (
	PlayerFireCooldown  = 180 * time.Millisecond
	PlayerBulletSpeed   = 640.0
	PlayerBulletDamage  = 10
	PlayerBulletWidth   = 4.0
	PlayerBulletHeight  = 12.0
	PlayerBulletSpacing = 12.0 // Horizontal offset between double-shot barrels

	// TripleShotSpread is the side-bullet horizontal velocity in px/sec
	TripleShotSpread = 140.0

	PowerUpDuration = 8 * time.Second
	PowerUpRadius   = 14.0
	PowerUpFallRate = 90.0

	HostileBulletSpeed  = 300.0
	HostileBulletDamage = 10
	HostileBulletSize   = 8.0
)
