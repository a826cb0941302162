package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// burstProfile bounds the random properties of one tier's particles
type burstProfile struct {
	count              int
	speedMin, speedMax float64
	sizeMin, sizeMax   float64
	lifeMin, lifeMax   time.Duration
	color              string
}

var burstProfiles = [...]burstProfile{
	component.TierSmall: {
		parameter.ParticleSmallCount,
		parameter.ParticleSmallSpeedMin, parameter.ParticleSmallSpeedMax,
		parameter.ParticleSmallSizeMin, parameter.ParticleSmallSizeMax,
		parameter.ParticleSmallLifeMin, parameter.ParticleSmallLifeMax,
		"#ffd166",
	},
	component.TierMedium: {
		parameter.ParticleMediumCount,
		parameter.ParticleMediumSpeedMin, parameter.ParticleMediumSpeedMax,
		parameter.ParticleMediumSizeMin, parameter.ParticleMediumSizeMax,
		parameter.ParticleMediumLifeMin, parameter.ParticleMediumLifeMax,
		"#f78c6b",
	},
	component.TierLarge: {
		parameter.ParticleLargeCount,
		parameter.ParticleLargeSpeedMin, parameter.ParticleLargeSpeedMax,
		parameter.ParticleLargeSizeMin, parameter.ParticleLargeSizeMax,
		parameter.ParticleLargeLifeMin, parameter.ParticleLargeLifeMax,
		"#ef476f",
	},
}

// EffectsBus owns cosmetic particles: bursts on request, decay every tick
// Particles never affect gameplay; dead ones are removed by the world sweep
type EffectsBus struct {
	world *engine.World

	statBursts    *atomic.Int64
	statParticles *atomic.Int64
}

func NewEffectsBus(world *engine.World) *EffectsBus {
	return &EffectsBus{
		world:         world,
		statBursts:    world.Status.Ints.Get("effects.bursts"),
		statParticles: world.Status.Ints.Get("effects.particles"),
	}
}

func (s *EffectsBus) Name() string  { return "effects" }
func (s *EffectsBus) Priority() int { return parameter.PriorityEffects }

// Emit spawns one burst of the tier's particle count at pos
func (s *EffectsBus) Emit(pos vmath.Vec2, tier component.Tier) {
	if int(tier) >= len(burstProfiles) {
		tier = component.TierLarge
	}
	bp := burstProfiles[tier]
	w := s.world

	// Cap: drop the oldest to make room
	if over := len(w.Particles) + bp.count - parameter.MaxParticles; over > 0 {
		if over > len(w.Particles) {
			over = len(w.Particles)
		}
		w.Particles = append(w.Particles[:0], w.Particles[over:]...)
	}

	for i := 0; i < bp.count; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		speed := vmath.RandRange(w.Rng, bp.speedMin, bp.speedMax)
		life := bp.lifeMin + time.Duration(w.Rng.Int63n(int64(bp.lifeMax-bp.lifeMin)+1))
		w.Particles = append(w.Particles, component.Particle{
			Pos:     pos,
			Vel:     vmath.FromAngle(angle, speed),
			Life:    life,
			MaxLife: life,
			Size:    vmath.RandRange(w.Rng, bp.sizeMin, bp.sizeMax),
			Color:   bp.color,
		})
	}
	s.statBursts.Add(1)
}

func (s *EffectsBus) Update() {
	w := s.world
	dt := w.DtSeconds()
	for i := range w.Particles {
		p := &w.Particles[i]
		p.Pos = p.Pos.Integrate(p.Vel, dt)
		p.Vel = p.Vel.Scale(parameter.ParticleFriction)
		p.Vel.Y += parameter.ParticleGravity
		p.Life -= w.Dt
	}
	s.statParticles.Store(int64(len(w.Particles)))
}
