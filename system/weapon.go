package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/vmath"
)

const timerPlayerFire = "weapon.player"

// WeaponSystem fires player bullets on the held fire key and aimed hostile bullets
// on each hostile's own interval
type WeaponSystem struct {
	world *engine.World

	statPlayerShots  *atomic.Int64
	statHostileShots *atomic.Int64
}

func NewWeaponSystem(world *engine.World) engine.System {
	world.Timers.Prime(timerPlayerFire, parameter.PlayerFireCooldown)
	return &WeaponSystem{
		world:            world,
		statPlayerShots:  world.Status.Ints.Get("weapon.player_shots"),
		statHostileShots: world.Status.Ints.Get("weapon.hostile_shots"),
	}
}

func (s *WeaponSystem) Name() string  { return "weapon" }
func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update() {
	w := s.world
	if w.Player.Alive() && w.Input.Held(engine.KeyFire) && w.Timers.Fire(timerPlayerFire) {
		s.firePlayer()
	}

	for i := range w.Hostiles {
		h := &w.Hostiles[i]
		if h.Dead || h.FireInterval <= 0 || h.Pos.Y < 0 {
			continue
		}
		if w.Now-h.LastFire > h.FireInterval {
			h.LastFire = w.Now
			s.fireHostile(h)
		}
	}
}

// barrels returns the muzzle offsets and side velocities of the active pattern
func (s *WeaponSystem) barrels() (offsets []float64, spread []float64) {
	w := s.world
	switch {
	case w.PowerUps[component.PowerUpTripleShot]:
		return []float64{0, 0, 0}, []float64{-parameter.TripleShotSpread, 0, parameter.TripleShotSpread}
	case w.PowerUps[component.PowerUpDoubleShot]:
		sp := parameter.PlayerBulletSpacing / 2
		return []float64{-sp, sp}, []float64{0, 0}
	}
	return []float64{0}, []float64{0}
}

func (s *WeaponSystem) firePlayer() {
	w := s.world
	p := &w.Player
	muzzle := vmath.V(p.Pos.X, p.Pos.Y-p.Height/2)

	offsets, spread := s.barrels()
	fired := 0
	for i := range offsets {
		err := w.AddBullet(component.Bullet{
			ID:     w.NextID("b"),
			Pos:    vmath.V(muzzle.X+offsets[i], muzzle.Y),
			Vel:    vmath.V(spread[i], -parameter.PlayerBulletSpeed),
			Width:  parameter.PlayerBulletWidth,
			Height: parameter.PlayerBulletHeight,
			Damage: parameter.PlayerBulletDamage,
			Owner:  component.SidePlayer,
			Color:  "#8be9fd",
		})
		if err == nil {
			fired++
		}
	}
	s.statPlayerShots.Add(int64(fired))
	w.Emit(event.EventShot, &event.ShotPayload{Owner: component.SidePlayer, Bullets: fired})
}

// fireHostile launches one bullet aimed at the player's current position
func (s *WeaponSystem) fireHostile(h *component.Hostile) {
	w := s.world
	if !w.Player.Alive() {
		return
	}
	vel := vmath.Toward(h.Pos, w.Player.Pos, parameter.HostileBulletSpeed)
	if vel.IsZero() {
		vel = vmath.V(0, parameter.HostileBulletSpeed)
	}
	err := w.AddBullet(component.Bullet{
		ID:     w.NextID("b"),
		Pos:    h.Pos,
		Vel:    vel,
		Width:  parameter.HostileBulletSize,
		Height: parameter.HostileBulletSize,
		Damage: parameter.HostileBulletDamage,
		Owner:  component.SideHostile,
		Color:  "#ff5555",
	})
	if err != nil {
		return
	}
	s.statHostileShots.Add(1)
	w.Emit(event.EventShot, &event.ShotPayload{Owner: component.SideHostile, Bullets: 1})
}
