package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// CombatConfig tunes resolution per game
type CombatConfig struct {
	PickupRadius float64
	// RefreshOnDelivery respawns the hostile wave after each delivery
	RefreshOnDelivery bool
}

// CombatSystem resolves projectile hits, body contact, pickups and deliveries
type CombatSystem struct {
	world   *engine.World
	cfg     CombatConfig
	effects *EffectsBus
	spawner *SpawnSystem

	// rejected holds items refused for capacity until the player leaves their radius
	rejected map[string]bool

	statKills      *atomic.Int64
	statHits       *atomic.Int64
	statPickups    *atomic.Int64
	statDeliveries *atomic.Int64
}

// NewCombatSystem wires the resolver; spawner may be nil when no wave refresh is used
func NewCombatSystem(world *engine.World, cfg CombatConfig, effects *EffectsBus, spawner *SpawnSystem) *CombatSystem {
	if cfg.PickupRadius <= 0 {
		cfg.PickupRadius = parameter.PickupRadius
	}
	return &CombatSystem{
		world:          world,
		cfg:            cfg,
		effects:        effects,
		spawner:        spawner,
		rejected:       make(map[string]bool),
		statKills:      world.Status.Ints.Get("combat.kills"),
		statHits:       world.Status.Ints.Get("combat.player_hits"),
		statPickups:    world.Status.Ints.Get("combat.pickups"),
		statDeliveries: world.Status.Ints.Get("combat.deliveries"),
	}
}

func (s *CombatSystem) Name() string  { return "combat" }
func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) Update() {
	s.projectiles()
	if s.world.Player.Alive() {
		s.contacts()
		s.pickups()
		s.deliveries()
	}
	s.expireInventory()
	s.expireCollectibles()
}

// ResolveContacts runs body contact and pickups at the player's current position
// Movers that take several steps in one tick call it after each step
func (s *CombatSystem) ResolveContacts() {
	if s.world.Player.Alive() {
		s.contacts()
		s.pickups()
	}
}

func (s *CombatSystem) burst(pos vmath.Vec2, tier component.Tier) {
	if s.effects != nil {
		s.effects.Emit(pos, tier)
	}
}

// projectiles tests each live bullet once against the opposing side
// The first hit consumes the bullet
func (s *CombatSystem) projectiles() {
	w := s.world
	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Dead {
			continue
		}
		box := b.Box()

		if b.Owner == component.SideHostile {
			if w.Player.Alive() && vmath.AABBOverlap(box, w.Player.Box()) {
				b.Dead = true
				s.damagePlayer(b.Damage, "bullet")
			}
			continue
		}

		if s.hitHostile(b, box) {
			continue
		}
		s.hitObstacle(b, box)
	}
}

func (s *CombatSystem) hitHostile(b *component.Bullet, box vmath.Box) bool {
	w := s.world
	for j := range w.Hostiles {
		h := &w.Hostiles[j]
		if h.Dead || !vmath.AABBOverlap(box, h.Box()) {
			continue
		}
		b.Dead = true
		h.Health -= b.Damage
		if h.Health <= 0 {
			s.destroyHostile(h)
		}
		return true
	}
	return false
}

func (s *CombatSystem) hitObstacle(b *component.Bullet, box vmath.Box) bool {
	w := s.world
	for j := range w.Obstacles {
		o := &w.Obstacles[j]
		if o.Dead || !vmath.AABBOverlap(box, o.Box()) {
			continue
		}
		b.Dead = true
		o.Health -= b.Damage
		if o.Health <= 0 {
			o.Dead = true
			w.Score += o.Points
			s.burst(o.Pos, o.Tier)
			w.Emit(event.EventObstacleDestroyed, &event.DestroyedPayload{
				ID: o.ID, Kind: "obstacle", Tier: o.Tier, Points: o.Points, Pos: o.Pos,
			})
		}
		return true
	}
	return false
}

// destroyHostile scores a kill and settles boss tracking
func (s *CombatSystem) destroyHostile(h *component.Hostile) {
	w := s.world
	w.Score += h.Points
	w.Kills++
	s.statKills.Add(1)
	s.burst(h.Pos, h.Tier)
	w.Emit(event.EventHostileDestroyed, &event.DestroyedPayload{
		ID: h.ID, Kind: h.Kind.String(), Tier: h.Tier, Points: h.Points, Pos: h.Pos, Boss: h.Boss,
	})
	releaseHostile(w, h)
}

// contacts applies contact damage; the offending body is removed without score
func (s *CombatSystem) contacts() {
	w := s.world
	pbox := w.Player.Box()

	for i := range w.Hostiles {
		h := &w.Hostiles[i]
		if h.Dead || !vmath.AABBOverlap(pbox, h.Box()) {
			continue
		}
		s.burst(w.Player.Pos.Mid(h.Pos), component.TierLarge)
		releaseHostile(w, h)
		s.damagePlayer(h.ContactDamage, h.Kind.String())
		if !w.Player.Alive() {
			return
		}
	}

	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Dead || !vmath.AABBOverlap(pbox, o.Box()) {
			continue
		}
		s.burst(w.Player.Pos.Mid(o.Pos), component.TierLarge)
		o.Dead = true
		s.damagePlayer(o.ContactDamage, "obstacle")
		if !w.Player.Alive() {
			return
		}
	}
}

func (s *CombatSystem) damagePlayer(amount int, source string) {
	w := s.world
	s.statHits.Add(1)
	if w.DamagePlayer(amount, source) {
		s.burst(w.Player.Pos, component.TierLarge)
	}
}

// pickups collects every available item within the pickup radius
// A completed resource set fires a single grow event after all pickups of the tick
func (s *CombatSystem) pickups() {
	w := s.world
	p := &w.Player

	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if !c.Available() {
			continue
		}
		if vmath.PointDistance(p.Pos, c.Pos) > s.cfg.PickupRadius {
			delete(s.rejected, c.ID)
			continue
		}

		switch c.Kind {
		case component.CollectibleCargo:
			if !p.Cargo.Add(component.CargoItem{ID: c.ID, Weight: c.Weight, Points: c.Points, PickedAt: w.Now}) {
				if !s.rejected[c.ID] {
					s.rejected[c.ID] = true
					w.Emit(event.EventPickupRejected, pickupPayload(c))
				}
				continue
			}
			w.CollectedCount++
		case component.CollectibleResource:
			w.Resources.Held[c.Type] = true
			w.Score += c.Points
		case component.CollectiblePowerUp:
			w.ActivatePowerUp(component.PowerUp(c.Type), parameter.PowerUpDuration)
		case component.CollectibleFood:
			w.Score += c.Points
			if w.Snake != nil {
				w.Snake.Pending++
			}
		}

		c.Collected = true
		s.statPickups.Add(1)
		w.Emit(event.EventPickup, pickupPayload(c))
	}

	r := &w.Resources
	if !r.Grown && r.Complete() {
		r.Grown = true
		p.Growth++
		w.Score += parameter.GrowPoints
		if w.Snake != nil {
			w.Snake.Pending += parameter.SnakeGrowPerWave
		}
		s.burst(p.Pos, component.TierMedium)
		w.Emit(event.EventGrow, &event.GrowPayload{Growth: p.Growth})
	}
}

func pickupPayload(c *component.Collectible) *event.PickupPayload {
	return &event.PickupPayload{ID: c.ID, Kind: c.Kind, Type: c.Type, Weight: c.Weight}
}

// deliveries transfers the whole inventory into an overlapped drop zone
func (s *CombatSystem) deliveries() {
	w := s.world
	p := &w.Player
	if p.Cargo.Len() == 0 {
		return
	}
	pbox := p.Box()
	for i := range w.DropZones {
		z := &w.DropZones[i]
		if !vmath.AABBOverlap(pbox, z.Box()) {
			continue
		}

		items := p.Cargo.Unload()
		points := 0
		for _, it := range items {
			points += it.Points
		}
		z.Delivered = append(z.Delivered, items...)
		w.DeliveredCount += len(items)
		w.Score += points
		s.statDeliveries.Add(1)
		s.burst(z.Pos, component.TierMedium)
		w.Emit(event.EventDelivery, &event.DeliveryPayload{ZoneID: z.ID, Items: len(items), Points: points})

		if s.cfg.RefreshOnDelivery && s.spawner != nil && w.DeliveredCount < w.TotalCollectibles {
			s.spawner.RespawnWave()
		}
		return
	}
}

// expireInventory drops carried cargo older than the lifespan back to its origin
func (s *CombatSystem) expireInventory() {
	w := s.world
	if w.InventoryLifespan <= 0 || w.Player.Cargo.Len() == 0 {
		return
	}

	var expired []component.CargoItem
	for _, it := range w.Player.Cargo.Items {
		if w.Now-it.PickedAt > w.InventoryLifespan {
			expired = append(expired, it)
		}
	}
	for _, it := range expired {
		w.Player.Cargo.Remove(it.ID)
		for i := range w.Collectibles {
			c := &w.Collectibles[i]
			if c.ID != it.ID {
				continue
			}
			c.Collected = false
			c.Pos = c.Origin
			w.CollectedCount--
			w.Emit(event.EventCargoExpired, pickupPayload(c))
			break
		}
	}
}

// expireCollectibles retires uncollected items past their lifespan
func (s *CombatSystem) expireCollectibles() {
	w := s.world
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Available() && c.Lifespan > 0 && w.Now-c.SpawnedAt > c.Lifespan {
			c.Expired = true
		}
	}
}
