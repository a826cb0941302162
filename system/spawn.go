package system

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

// Spawn category timers
const (
	timerHostile    = "spawn.hostile"
	timerAsteroid   = "spawn.asteroid"
	timerDecoration = "spawn.decoration"
	timerPowerUp    = "spawn.powerup"
	timerFood       = "spawn.food"
)

// WaveRow is one row of the kill-keyed wave table
type WaveRow struct {
	Kills       int
	MaxHostiles int
	Interval    time.Duration
	// GunshipChance is the probability that a regular spawn is a gunship
	GunshipChance float64
}

// BossTier is a score-gated boss encounter
type BossTier struct {
	Score int
	Units int
}

// SpawnConfig selects the categories a game spawns
type SpawnConfig struct {
	// Waves must be sorted by Kills; the first row applies from the start
	Waves  []WaveRow
	Bosses []BossTier

	Asteroids   bool
	Decorations bool
	PowerUps    bool
	Food        bool

	// ResourceTypes enables synchronized resource waves over this set
	ResourceTypes []string

	// Guards and Cargo are placed by Populate; Guards also sizes RespawnWave
	Guards int
	Cargo  int

	Attempts  int
	SafeZones []maze.Point
}

// SpawnSystem places new entities per category on independent cooldowns
type SpawnSystem struct {
	world  *engine.World
	cfg    SpawnConfig
	placer *Placer

	statHostiles  *atomic.Int64
	statObstacles *atomic.Int64
	statWaves     *atomic.Int64
	statBosses    *atomic.Int64
}

func NewSpawnSystem(world *engine.World, cfg SpawnConfig) *SpawnSystem {
	s := &SpawnSystem{
		world:         world,
		cfg:           cfg,
		placer:        NewPlacer(world, cfg.Attempts, cfg.SafeZones),
		statHostiles:  world.Status.Ints.Get("spawn.hostiles"),
		statObstacles: world.Status.Ints.Get("spawn.obstacles"),
		statWaves:     world.Status.Ints.Get("spawn.waves"),
		statBosses:    world.Status.Ints.Get("spawn.bosses"),
	}
	s.Init()
	return s
}

// Init arms the category timers and applies the first wave row
func (s *SpawnSystem) Init() {
	w := s.world
	w.Wave = 1
	if len(s.cfg.Waves) > 0 {
		s.applyWave(1)
	}
	if s.cfg.Asteroids {
		w.Timers.Start(timerAsteroid, parameter.AsteroidInterval)
	}
	if s.cfg.Decorations {
		w.Timers.Prime(timerDecoration, parameter.DecorationInterval)
	}
	if s.cfg.PowerUps {
		w.Timers.Start(timerPowerUp, parameter.PowerUpInterval)
	}
	if s.cfg.Food {
		w.Timers.Prime(timerFood, parameter.FoodInterval)
	}
}

func (s *SpawnSystem) Name() string  { return "spawn" }
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

// Placer exposes the placement search to game presets
func (s *SpawnSystem) Placer() *Placer { return s.placer }

func (s *SpawnSystem) Update() {
	s.updateWave()
	s.updateBoss()
	s.spawnHostile()
	s.spawnAsteroid()
	s.spawnDecoration()
	s.spawnPowerUp()
	s.spawnFood()
	s.updateResources()
}

// Populate places the initial cargo set and guards
func (s *SpawnSystem) Populate() {
	w := s.world
	taken := s.occupiedCells()
	occupied := func(c maze.Point) bool { return taken[c] }

	for i := 0; i < s.cfg.Cargo; i++ {
		pos, _ := s.placer.Cell(occupied)
		weight := parameter.CargoMinWeight + w.Rng.Intn(parameter.CargoMaxWeight-parameter.CargoMinWeight+1)
		err := w.AddCollectible(component.Collectible{
			ID:     w.NextID("c"),
			Kind:   component.CollectibleCargo,
			Pos:    pos,
			Origin: pos,
			Radius: parameter.CargoRadius,
			Weight: weight,
			Points: parameter.CargoPoints + parameter.CargoPointsPerW*weight,
		})
		if err != nil {
			continue
		}
		w.TotalCollectibles++
		if w.Grid != nil {
			taken[w.Grid.CellAt(pos)] = true
		}
	}

	for i := 0; i < s.cfg.Guards; i++ {
		s.spawnGuard()
	}
}

// waveFor returns the 1-based row reached by kills
func (s *SpawnSystem) waveFor(kills int) int {
	wave := 1
	for i, row := range s.cfg.Waves {
		if kills >= row.Kills {
			wave = i + 1
		}
	}
	return wave
}

func (s *SpawnSystem) applyWave(wave int) {
	w := s.world
	row := s.cfg.Waves[wave-1]
	w.Wave = wave
	w.MaxHostiles = row.MaxHostiles
	w.HostileInterval = row.Interval
	w.Timers.SetInterval(timerHostile, row.Interval)
}

func (s *SpawnSystem) updateWave() {
	w := s.world
	if len(s.cfg.Waves) == 0 {
		return
	}
	wave := s.waveFor(w.Kills)
	if wave == w.Wave {
		return
	}
	s.applyWave(wave)
	s.statWaves.Store(int64(wave))
	w.Emit(event.EventWaveChanged, &event.WavePayload{
		Wave:          wave,
		MaxHostiles:   w.MaxHostiles,
		SpawnInterval: w.HostileInterval.Milliseconds(),
	})
}

// updateBoss starts the next locked encounter once its score threshold is reached
// Regular hostiles are cleared without score; spawning resumes when every boss unit is gone
func (s *SpawnSystem) updateBoss() {
	w := s.world
	b := &w.Boss
	if b.Active || b.Tier >= len(s.cfg.Bosses) || w.Score < s.cfg.Bosses[b.Tier].Score {
		return
	}

	for i := range w.Hostiles {
		if !w.Hostiles[i].Boss {
			w.Hostiles[i].Dead = true
		}
	}

	tier := s.cfg.Bosses[b.Tier]
	spawned := 0
	for i := 0; i < tier.Units; i++ {
		x := w.Width * float64(i+1) / float64(tier.Units+1)
		health := parameter.BossHealth * (b.Tier + 1)
		err := w.AddHostile(component.Hostile{
			ID:            w.NextID("h"),
			Kind:          component.HostileBoss,
			Tier:          component.TierLarge,
			Pos:           vmath.V(x, -parameter.BossHeight/2),
			Vel:           vmath.V(0, parameter.BossSpeed),
			Width:         parameter.BossWidth,
			Height:        parameter.BossHeight,
			Health:        health,
			MaxHealth:     health,
			Points:        parameter.BossPoints,
			ContactDamage: parameter.BossContactDamage,
			Boss:          true,
			FireInterval:  parameter.BossFireInterval,
			LastFire:      w.Now,
		})
		if err == nil {
			spawned++
		}
	}
	if spawned == 0 {
		b.Tier++
		return
	}

	b.Active = true
	b.Remaining = spawned
	s.statBosses.Add(int64(spawned))
	w.Emit(event.EventBossStarted, &event.BossPayload{Tier: b.Tier + 1, Units: spawned})
}

func (s *SpawnSystem) spawnHostile() {
	w := s.world
	if len(s.cfg.Waves) == 0 || w.Boss.Active || w.LiveHostiles() >= w.MaxHostiles {
		return
	}
	if !w.Timers.Fire(timerHostile) {
		return
	}

	row := s.cfg.Waves[w.Wave-1]
	h := component.Hostile{
		ID:            w.NextID("h"),
		Kind:          component.HostileDrone,
		Tier:          component.TierSmall,
		Width:         parameter.DroneSize,
		Height:        parameter.DroneSize,
		Health:        parameter.DroneHealth,
		MaxHealth:     parameter.DroneHealth,
		Points:        parameter.DronePoints,
		ContactDamage: parameter.DroneContactDamage,
		Vel: vmath.V(
			vmath.RandRange(w.Rng, -parameter.DroneSpeed/3, parameter.DroneSpeed/3),
			parameter.DroneSpeed,
		),
	}
	if w.Rng.Float64() < row.GunshipChance {
		h.Kind = component.HostileGunship
		h.Tier = component.TierMedium
		h.Width, h.Height = parameter.GunshipSize, parameter.GunshipSize
		h.Health, h.MaxHealth = parameter.GunshipHealth, parameter.GunshipHealth
		h.Points = parameter.GunshipPoints
		h.ContactDamage = parameter.GunshipContactDamage
		h.Vel = vmath.V(0, parameter.GunshipSpeed)
		h.FireInterval = parameter.GunshipFireInterval
		h.LastFire = w.Now
	}
	h.Pos, _ = s.placer.Entry(h.Width)

	if w.AddHostile(h) == nil {
		s.statHostiles.Add(1)
	}
}

// asteroidInterval shrinks with score down to the floor
func asteroidInterval(score int) time.Duration {
	iv := parameter.AsteroidInterval - time.Duration(score/parameter.AsteroidScoreStep)*parameter.AsteroidIntervalStep
	return max(iv, parameter.AsteroidMinInterval)
}

func (s *SpawnSystem) spawnAsteroid() {
	w := s.world
	if !s.cfg.Asteroids || w.Boss.Active {
		return
	}
	w.Timers.SetInterval(timerAsteroid, asteroidInterval(w.Score))
	if !w.Timers.Fire(timerAsteroid) {
		return
	}

	size := vmath.RandRange(w.Rng, parameter.AsteroidMinSize, parameter.AsteroidMaxSize)
	tier := component.TierSmall
	switch {
	case size >= 52:
		tier = component.TierLarge
	case size >= 38:
		tier = component.TierMedium
	}
	pos, _ := s.placer.Entry(size)
	err := w.AddObstacle(component.Obstacle{
		ID:   w.NextID("o"),
		Pos:  pos,
		Size: size,
		Tier: tier,
		Vel: vmath.V(
			vmath.RandRange(w.Rng, -40, 40),
			vmath.RandRange(w.Rng, parameter.AsteroidMinSpeed, parameter.AsteroidMaxSpeed),
		),
		Health:        max(1, int(size*parameter.AsteroidHealthPerPx)),
		Points:        int(size) * parameter.AsteroidPointsPerPx,
		ContactDamage: parameter.AsteroidContactDamage,
		Spin:          vmath.RandRange(w.Rng, -3, 3),
	})
	if err == nil {
		s.statObstacles.Add(1)
	}
}

func (s *SpawnSystem) spawnDecoration() {
	w := s.world
	if !s.cfg.Decorations || len(w.Decorations) >= parameter.DecorationMaxCount {
		return
	}
	if !w.Timers.Fire(timerDecoration) {
		return
	}
	layer := w.Rng.Intn(3)
	w.Decorations = append(w.Decorations, component.Decoration{
		ID:    w.NextID("d"),
		Pos:   vmath.V(w.Rng.Float64()*w.Width, w.Rng.Float64()*w.Height),
		Vel:   vmath.V(0, 20+30*float64(layer)),
		Size:  1 + float64(layer),
		Layer: layer,
	})
}

func (s *SpawnSystem) spawnPowerUp() {
	w := s.world
	if !s.cfg.PowerUps || !w.Timers.Fire(timerPowerUp) {
		return
	}
	kind := component.PowerUpDoubleShot
	if w.Rng.Intn(2) == 1 {
		kind = component.PowerUpTripleShot
	}
	pos, _ := s.placer.Entry(parameter.PowerUpRadius * 2)
	w.AddCollectible(component.Collectible{
		ID:        w.NextID("p"),
		Kind:      component.CollectiblePowerUp,
		Type:      string(kind),
		Pos:       pos,
		Radius:    parameter.PowerUpRadius,
		SpawnedAt: w.Now,
	})
}

func (s *SpawnSystem) spawnFood() {
	w := s.world
	if !s.cfg.Food || countAvailable(w, component.CollectibleFood) >= parameter.FoodMax {
		return
	}
	if !w.Timers.Fire(timerFood) {
		return
	}
	taken := s.occupiedCells()
	pos, _ := s.placer.Cell(func(c maze.Point) bool { return taken[c] })
	w.AddCollectible(component.Collectible{
		ID:        w.NextID("f"),
		Kind:      component.CollectibleFood,
		Pos:       pos,
		Radius:    parameter.CellSize / 4,
		Points:    parameter.FoodPoints,
		SpawnedAt: w.Now,
	})
}

// updateResources spawns the next resource set once the previous one is fully
// collected or expired, after the respawn delay
func (s *SpawnSystem) updateResources() {
	w := s.world
	if len(s.cfg.ResourceTypes) == 0 || countAvailable(w, component.CollectibleResource) > 0 {
		return
	}
	r := &w.Resources
	if r.Wave > 0 {
		if r.Cleared < 0 {
			r.Cleared = w.Now
		}
		if w.Now-r.Cleared < parameter.ResourceRespawnDelay {
			return
		}
	}
	s.spawnResourceWave()
}

func (s *SpawnSystem) spawnResourceWave() {
	w := s.world
	r := &w.Resources
	r.Wave++
	r.Types = slices.Clone(s.cfg.ResourceTypes)
	r.Held = make(map[string]bool, len(r.Types))
	r.Grown = false
	r.Cleared = -1

	// The new hazard wave replaces the previous one
	for i := range w.Hostiles {
		if w.Hostiles[i].Kind == component.HostileHazard {
			w.Hostiles[i].Dead = true
		}
	}

	taken := s.occupiedCells()
	occupied := func(c maze.Point) bool { return taken[c] }
	claim := func(pos vmath.Vec2) {
		if w.Grid != nil {
			taken[w.Grid.CellAt(pos)] = true
		}
	}

	for _, t := range r.Types {
		pos, _ := s.placer.Cell(occupied)
		if w.AddCollectible(component.Collectible{
			ID:        w.NextID("r"),
			Kind:      component.CollectibleResource,
			Type:      t,
			Pos:       pos,
			Radius:    parameter.CellSize / 4,
			Points:    parameter.ResourcePoints,
			SpawnedAt: w.Now,
			Lifespan:  parameter.ResourceLifespan,
		}) == nil {
			claim(pos)
		}
	}

	hazards := min(parameter.HazardWaveBase+parameter.HazardWaveGrowth*w.Player.Growth, parameter.HazardWaveMax)
	placed := 0
	for i := 0; i < hazards; i++ {
		pos, _ := s.placer.Cell(occupied)
		if w.AddHostile(component.Hostile{
			ID:            w.NextID("h"),
			Kind:          component.HostileHazard,
			Tier:          component.TierSmall,
			Pos:           pos,
			Width:         parameter.HazardSize,
			Height:        parameter.HazardSize,
			Health:        parameter.HazardHealth,
			MaxHealth:     parameter.HazardHealth,
			ContactDamage: parameter.HazardContactDamage,
		}) == nil {
			claim(pos)
			placed++
		}
	}

	s.statWaves.Store(int64(r.Wave))
	w.Emit(event.EventResourceWave, &event.ResourceWavePayload{
		Types:    slices.Clone(r.Types),
		Hazards:  placed,
		WaveSize: len(r.Types),
	})
}

// RespawnWave replaces every regular hostile with a fresh, larger wave
func (s *SpawnSystem) RespawnWave() {
	w := s.world
	for i := range w.Hostiles {
		if !w.Hostiles[i].Boss {
			w.Hostiles[i].Dead = true
		}
	}
	w.Wave++
	n := min(s.cfg.Guards+w.Wave-1, 2*s.cfg.Guards)
	for i := 0; i < n; i++ {
		s.spawnGuard()
	}
	w.Emit(event.EventWaveRefresh, &event.WavePayload{Wave: w.Wave, MaxHostiles: n})
}

func (s *SpawnSystem) spawnGuard() {
	w := s.world
	taken := make(map[maze.Point]bool)
	if w.Grid != nil {
		for i := range w.Hostiles {
			if !w.Hostiles[i].Dead {
				taken[w.Grid.CellAt(w.Hostiles[i].Pos)] = true
			}
		}
	}
	pos, _ := s.placer.Cell(func(c maze.Point) bool { return taken[c] })

	h := component.Hostile{
		ID:            w.NextID("h"),
		Kind:          component.HostileGuard,
		Tier:          component.TierSmall,
		Pos:           pos,
		Width:         parameter.GuardSize,
		Height:        parameter.GuardSize,
		Health:        parameter.GuardHealth,
		MaxHealth:     parameter.GuardHealth,
		ContactDamage: parameter.GuardContactDamage,
		Behavior: component.Behavior{
			DetectionRadius: parameter.GuardDetectionRadius,
			Speed:           parameter.GuardSpeed,
			LastMove:        w.Now,
		},
	}
	h.Behavior.Route = patrolRoute(w, pos)
	if w.AddHostile(h) == nil {
		s.statHostiles.Add(1)
	}
}

// occupiedCells marks grid cells holding the snake, live hostiles or available items
func (s *SpawnSystem) occupiedCells() map[maze.Point]bool {
	w := s.world
	taken := make(map[maze.Point]bool)
	if w.Grid == nil {
		return taken
	}
	if w.Snake != nil {
		for _, c := range w.Snake.Body {
			taken[maze.Point{X: c.X, Y: c.Y}] = true
		}
	}
	for i := range w.Hostiles {
		if !w.Hostiles[i].Dead {
			taken[w.Grid.CellAt(w.Hostiles[i].Pos)] = true
		}
	}
	for i := range w.Collectibles {
		if w.Collectibles[i].Available() {
			taken[w.Grid.CellAt(w.Collectibles[i].Pos)] = true
		}
	}
	for i := range w.DropZones {
		taken[w.Grid.CellAt(w.DropZones[i].Pos)] = true
	}
	return taken
}

func countAvailable(w *engine.World, kind component.CollectibleKind) int {
	n := 0
	for i := range w.Collectibles {
		if w.Collectibles[i].Kind == kind && w.Collectibles[i].Available() {
			n++
		}
	}
	return n
}

// releaseHostile marks h dead and settles the boss encounter it belonged to
func releaseHostile(w *engine.World, h *component.Hostile) {
	if h.Dead {
		return
	}
	h.Dead = true
	if !h.Boss || !w.Boss.Active {
		return
	}
	w.Boss.Remaining--
	if w.Boss.Remaining > 0 {
		return
	}
	w.Emit(event.EventBossDefeated, &event.BossPayload{Tier: w.Boss.Tier + 1})
	w.Boss.Active = false
	w.Boss.Tier++
}
