package parameter

import "time"

// Particle burst tiers: count, speed px/sec, size px, lifespan
const (
	ParticleSmallCount    = 8
	ParticleSmallSpeedMin = 40.0
	ParticleSmallSpeedMax = 120.0
	ParticleSmallSizeMin  = 1.0
	ParticleSmallSizeMax  = 3.0
	ParticleSmallLifeMin  = 250 * time.Millisecond
	ParticleSmallLifeMax  = 500 * time.Millisecond

	ParticleMediumCount    = 16
	ParticleMediumSpeedMin = 60.0
	ParticleMediumSpeedMax = 200.0
	ParticleMediumSizeMin  = 2.0
	ParticleMediumSizeMax  = 4.0
	ParticleMediumLifeMin  = 400 * time.Millisecond
	ParticleMediumLifeMax  = 800 * time.Millisecond

	ParticleLargeCount    = 32
	ParticleLargeSpeedMin = 80.0
	ParticleLargeSpeedMax = 320.0
	ParticleLargeSizeMin  = 2.0
	ParticleLargeSizeMax  = 6.0
	ParticleLargeLifeMin  = 600 * time.Millisecond
	ParticleLargeLifeMax  = 1200 * time.Millisecond
)

// Particle integration
const (
	// ParticleFriction multiplies velocity once per tick
	ParticleFriction = 0.96
	// ParticleGravity is added to vertical velocity once per tick (px/sec)
	ParticleGravity = 4.0
	// MaxParticles caps live particles; oldest are dropped first
	MaxParticles = 800
)
