// Package asset maps entity keys to terminal sprites
// Unknown keys degrade to a flat fallback glyph and are reported once
package asset

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/component"
)

// Sprite is a single terminal cell image
type Sprite struct {
	Glyph rune
	Color tcell.Color
}

// Fallback is returned for every unknown key
var Fallback = Sprite{Glyph: '?', Color: tcell.NewRGBColor(255, 0, 255)}

// Sprite keys shared by renderers
const (
	KeyPlayer         = "player"
	KeyPlayerHurt     = "player.hurt"
	KeyBulletPlayer   = "bullet.player"
	KeyBulletHostile  = "bullet.hostile"
	KeyObstacle       = "obstacle"
	KeyDecoration     = "decoration"
	KeyDropZone       = "dropzone"
	KeyWall           = "wall"
	KeySnakeHead      = "snake.head"
	KeySnakeBody      = "snake.body"
	KeyParticle       = "particle"
	KeyCargoCarried   = "cargo.carried"
	keyHostilePrefix  = "hostile."
	keyPickupPrefix   = "collectible."
	keyResourcePrefix = "resource."
)

// HostileKey names the sprite of a hostile kind
func HostileKey(k component.HostileKind) string { return keyHostilePrefix + k.String() }

// CollectibleKey names the sprite of an item; resources are keyed by type
func CollectibleKey(c *component.Collectible) string {
	if c.Kind == component.CollectibleResource && c.Type != "" {
		return keyResourcePrefix + c.Type
	}
	return keyPickupPrefix + c.Kind.String()
}

var builtin = map[string]Sprite{
	KeyPlayer:        {'A', tcell.NewRGBColor(120, 220, 255)},
	KeyPlayerHurt:    {'A', tcell.NewRGBColor(255, 80, 80)},
	KeyBulletPlayer:  {'|', tcell.NewRGBColor(255, 255, 120)},
	KeyBulletHostile: {'*', tcell.NewRGBColor(255, 120, 60)},
	KeyObstacle:      {'O', tcell.NewRGBColor(150, 130, 110)},
	KeyDecoration:    {'.', tcell.NewRGBColor(90, 90, 120)},
	KeyDropZone:      {'#', tcell.NewRGBColor(80, 200, 120)},
	KeyWall:          {'█', tcell.NewRGBColor(60, 64, 90)},
	KeySnakeHead:     {'@', tcell.NewRGBColor(140, 255, 140)},
	KeySnakeBody:     {'o', tcell.NewRGBColor(60, 180, 60)},
	KeyParticle:      {'·', tcell.NewRGBColor(255, 209, 102)},
	KeyCargoCarried:  {'+', tcell.NewRGBColor(255, 200, 80)},

	HostileKey(component.HostileDrone):   {'v', tcell.NewRGBColor(255, 100, 100)},
	HostileKey(component.HostileGunship): {'W', tcell.NewRGBColor(255, 140, 60)},
	HostileKey(component.HostileBoss):    {'M', tcell.NewRGBColor(230, 60, 200)},
	HostileKey(component.HostileGuard):   {'G', tcell.NewRGBColor(255, 90, 90)},
	HostileKey(component.HostileHazard):  {'X', tcell.NewRGBColor(255, 50, 50)},

	keyPickupPrefix + component.CollectibleCargo.String():    {'$', tcell.NewRGBColor(255, 215, 0)},
	keyPickupPrefix + component.CollectibleResource.String(): {'%', tcell.NewRGBColor(200, 200, 200)},
	keyPickupPrefix + component.CollectiblePowerUp.String():  {'P', tcell.NewRGBColor(100, 180, 255)},
	keyPickupPrefix + component.CollectibleFood.String():     {'*', tcell.NewRGBColor(255, 160, 60)},

	keyResourcePrefix + "ore": {'%', tcell.NewRGBColor(190, 120, 80)},
	keyResourcePrefix + "gas": {'%', tcell.NewRGBColor(120, 220, 200)},
	keyResourcePrefix + "ice": {'%', tcell.NewRGBColor(180, 220, 255)},
	keyResourcePrefix + "bio": {'%', tcell.NewRGBColor(120, 230, 90)},
}

// Catalog is a thread-safe sprite table seeded with the built-in set
type Catalog struct {
	mu      sync.RWMutex
	sprites map[string]Sprite
	missed  map[string]bool
	log     *zap.Logger
}

func NewCatalog(log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Catalog{
		sprites: make(map[string]Sprite, len(builtin)),
		missed:  make(map[string]bool),
		log:     log.Named("asset"),
	}
	for k, s := range builtin {
		c.sprites[k] = s
	}
	return c
}

// Register adds or replaces a sprite
func (c *Catalog) Register(key string, s Sprite) {
	c.mu.Lock()
	c.sprites[key] = s
	delete(c.missed, key)
	c.mu.Unlock()
}

// Sprite resolves key, returning Fallback for unknown keys
func (c *Catalog) Sprite(key string) Sprite {
	c.mu.RLock()
	s, ok := c.sprites[key]
	c.mu.RUnlock()
	if ok {
		return s
	}

	c.mu.Lock()
	if !c.missed[key] {
		c.missed[key] = true
		c.log.Debug("sprite missing, using fallback", zap.String("key", key))
	}
	c.mu.Unlock()
	return Fallback
}
