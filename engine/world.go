package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/status"
)

// Topology selects how the player meets the world edge
type Topology uint8

const (
	TopologyClamp Topology = iota // Stop at the edge, minus half-extent
	TopologyWrap                  // Teleport to the opposite edge
	TopologyMaze                  // Clamp plus wall cells
)

func (t Topology) String() string {
	switch t {
	case TopologyWrap:
		return "wrap"
	case TopologyMaze:
		return "maze"
	default:
		return "clamp"
	}
}

// BossState tracks the boss encounter ladder
type BossState struct {
	Active bool
	// Tier is the index of the active or next locked threshold
	Tier int
	// Remaining counts live boss units of the active encounter
	Remaining int
}

// ResourceState tracks the synchronized resource wave
type ResourceState struct {
	Wave int
	// Types is the full set required by the current wave
	Types []string
	// Held is the subset collected in the current wave
	Held map[string]bool
	// Grown is set once the current wave has fired its grow event
	Grown bool
	// Cleared is game time when the last wave item left play, -1 while items remain
	Cleared time.Duration
}

// Complete reports whether every type of the wave is held
func (r *ResourceState) Complete() bool {
	if len(r.Types) == 0 {
		return false
	}
	for _, t := range r.Types {
		if !r.Held[t] {
			return false
		}
	}
	return true
}

// WorldConfig describes the static shape of a session world
type WorldConfig struct {
	Game     string
	Width    float64
	Height   float64
	Topology Topology
	Grid     *maze.Grid
	// Countdown enables the timeUp condition; zero disables it
	Countdown time.Duration
	Seed      int64
	// InventoryLifespan expires carried cargo; zero keeps it until delivery
	InventoryLifespan time.Duration
	Logger            *zap.Logger
	Status            *status.Registry
}

// World is the explicit state of one session, owned by its Session
// Systems receive it by reference; only the update goroutine mutates it
type World struct {
	Game     string
	Width    float64
	Height   float64
	Topology Topology
	Grid     *maze.Grid

	Player component.Player
	Snake  *component.Snake

	Bullets      []component.Bullet
	Hostiles     []component.Hostile
	Obstacles    []component.Obstacle
	Decorations  []component.Decoration
	Collectibles []component.Collectible
	DropZones    []component.DropZone
	Particles    []component.Particle

	Score int
	Kills int

	// Wave is the active row of the kill-keyed wave table
	Wave            int
	MaxHostiles     int
	HostileInterval time.Duration

	Boss      BossState
	Resources ResourceState
	PowerUps  map[component.PowerUp]bool

	// TotalCollectibles is fixed at construction for delivery games
	// CollectedCount counts cargo currently picked up or delivered, never above the total
	TotalCollectibles int
	CollectedCount    int
	DeliveredCount    int

	InventoryLifespan time.Duration

	Now       time.Duration
	Dt        time.Duration
	Countdown time.Duration
	Remaining time.Duration
	Tick      uint64

	Timers *Timers
	Input  InputState
	Events *event.Log
	Rng    *rand.Rand
	Status *status.Registry
	Log    *zap.Logger

	nextID uint64
}

// NewWorld builds an empty world; game presets populate it
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		Game:              cfg.Game,
		Width:             cfg.Width,
		Height:            cfg.Height,
		Topology:          cfg.Topology,
		Grid:              cfg.Grid,
		Countdown:         cfg.Countdown,
		Remaining:         cfg.Countdown,
		InventoryLifespan: cfg.InventoryLifespan,
		PowerUps:          make(map[component.PowerUp]bool),
		Timers:            NewTimers(),
		Events:            event.NewLog(),
		Rng:               rand.New(rand.NewSource(cfg.Seed)),
		Status:            cfg.Status,
		Log:               cfg.Logger,
	}
	w.Resources.Held = make(map[string]bool)
	w.Resources.Cleared = -1
	if w.Width == 0 {
		w.Width = parameter.WorldWidth
	}
	if w.Height == 0 {
		w.Height = parameter.WorldHeight
	}
	if cfg.Grid != nil {
		w.Width = cfg.Grid.Width()
		w.Height = cfg.Grid.Height()
	}
	if w.Log == nil {
		w.Log = zap.NewNop()
	}
	if w.Status == nil {
		w.Status = status.NewRegistry()
	}
	w.Player.MaxHealth = parameter.PlayerMaxHealth
	w.Player.Health = parameter.PlayerMaxHealth
	w.Player.Lives = parameter.PlayerLives
	return w
}

// DtSeconds returns the tick delta in seconds for integration
func (w *World) DtSeconds() float64 {
	return w.Dt.Seconds()
}

// NextID returns a session-unique entity ID with a kind prefix
func (w *World) NextID(prefix string) string {
	w.nextID++
	return prefix + "-" + strconv.FormatUint(w.nextID, 10)
}

// Emit records an event stamped with the current tick
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Tick: w.Tick, At: w.Now, Payload: payload})
}

// reject logs and records an entity refused at spawn
func (w *World) reject(kind string, err error) error {
	w.Log.Warn("spawn rejected", zap.String("kind", kind), zap.Error(err))
	w.Emit(event.EventSpawnRejected, &event.SpawnRejectedPayload{Kind: kind, Reason: err.Error()})
	return err
}

// AddBullet validates and appends a projectile
func (w *World) AddBullet(b component.Bullet) error {
	if err := b.Validate(); err != nil {
		return w.reject("bullet", err)
	}
	w.Bullets = append(w.Bullets, b)
	return nil
}

// AddHostile validates and appends a hostile
func (w *World) AddHostile(h component.Hostile) error {
	if err := h.Validate(); err != nil {
		return w.reject(h.Kind.String(), err)
	}
	w.Hostiles = append(w.Hostiles, h)
	return nil
}

// AddObstacle validates and appends an obstacle
func (w *World) AddObstacle(o component.Obstacle) error {
	if err := o.Validate(); err != nil {
		return w.reject("obstacle", err)
	}
	w.Obstacles = append(w.Obstacles, o)
	return nil
}

// AddCollectible validates and appends a collectible
func (w *World) AddCollectible(c component.Collectible) error {
	if err := c.Validate(); err != nil {
		return w.reject(c.Kind.String(), err)
	}
	w.Collectibles = append(w.Collectibles, c)
	return nil
}

// AddDropZone appends a delivery zone
func (w *World) AddDropZone(z component.DropZone) error {
	if z.Width <= 0 || z.Height <= 0 {
		return w.reject("dropzone", fmt.Errorf("%w: drop zone %s has no extent", component.ErrInvalidEntity, z.ID))
	}
	w.DropZones = append(w.DropZones, z)
	return nil
}

// LiveHostiles counts hostiles not yet marked dead
func (w *World) LiveHostiles() int {
	n := 0
	for i := range w.Hostiles {
		if !w.Hostiles[i].Dead {
			n++
		}
	}
	return n
}

// DamagePlayer applies damage and consumes a life when health is depleted
// Returns true when a life was lost
func (w *World) DamagePlayer(amount int, source string) bool {
	if amount <= 0 || w.Player.Lives <= 0 {
		return false
	}
	p := &w.Player
	p.Health -= amount
	if p.Health > 0 {
		w.Emit(event.EventPlayerHit, &event.PlayerHitPayload{
			Damage: amount, Source: source, Health: p.Health, Lives: p.Lives,
		})
		return false
	}
	p.Lives--
	if p.Lives > 0 {
		p.Health = p.MaxHealth
	} else {
		p.Health = 0
	}
	w.Emit(event.EventLifeLost, &event.PlayerHitPayload{
		Damage: amount, Source: source, Health: p.Health, Lives: p.Lives,
	})
	return true
}

// KillPlayer ends every remaining life, used by fatal collisions
func (w *World) KillPlayer(source string) {
	lives := w.Player.Lives
	if lives <= 0 {
		return
	}
	w.Player.Lives = 0
	w.Player.Health = 0
	w.Emit(event.EventLifeLost, &event.PlayerHitPayload{Source: source, Lives: 0})
}

// PowerUpTimer is the named timer holding a power-up's expiry
func PowerUpTimer(p component.PowerUp) string {
	return "powerup." + string(p)
}

// ActivatePowerUp enables a modifier, restarting its expiry
func (w *World) ActivatePowerUp(p component.PowerUp, d time.Duration) {
	w.PowerUps[p] = true
	w.Timers.Start(PowerUpTimer(p), d)
	w.Emit(event.EventPowerUpStart, &event.PowerUpPayload{Kind: p})
}

// expirePowerUps clears modifiers whose timer is due
func (w *World) expirePowerUps() {
	for p, on := range w.PowerUps {
		if !on || !w.Timers.Due(PowerUpTimer(p)) {
			continue
		}
		delete(w.PowerUps, p)
		w.Timers.Clear(PowerUpTimer(p))
		w.Emit(event.EventPowerUpExpired, &event.PowerUpPayload{Kind: p})
	}
}

// Sweep compacts dead entities out of the live collections
// Cargo collectibles stay in place with Collected set; they are the delivery ledger
func (w *World) Sweep() {
	w.Bullets = compact(w.Bullets, func(b *component.Bullet) bool { return !b.Dead })
	w.Hostiles = compact(w.Hostiles, func(h *component.Hostile) bool { return !h.Dead })
	w.Obstacles = compact(w.Obstacles, func(o *component.Obstacle) bool { return !o.Dead })
	w.Particles = compact(w.Particles, func(p *component.Particle) bool { return p.Life > 0 })
	w.Collectibles = compact(w.Collectibles, func(c *component.Collectible) bool {
		return c.Kind == component.CollectibleCargo || c.Available()
	})
}

// compact filters s in place, preserving order
func compact[T any](s []T, keep func(*T) bool) []T {
	n := 0
	for i := range s {
		if keep(&s[i]) {
			if n != i {
				s[n] = s[i]
			}
			n++
		}
	}
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
	return s[:n]
}
