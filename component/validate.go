package component

import (
	"errors"
	"fmt"
)

// ErrInvalidEntity rejects a spawn before it reaches a live collection
var ErrInvalidEntity = errors.New("invalid entity")

func (b *Bullet) Validate() error {
	switch {
	case b.ID == "":
		return fmt.Errorf("%w: bullet without id", ErrInvalidEntity)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: bullet %s has no extent", ErrInvalidEntity, b.ID)
	case b.Damage <= 0:
		return fmt.Errorf("%w: bullet %s has no damage", ErrInvalidEntity, b.ID)
	}
	return nil
}

func (h *Hostile) Validate() error {
	switch {
	case h.ID == "":
		return fmt.Errorf("%w: hostile without id", ErrInvalidEntity)
	case h.Width <= 0 || h.Height <= 0:
		return fmt.Errorf("%w: hostile %s has no extent", ErrInvalidEntity, h.ID)
	case h.Health <= 0:
		return fmt.Errorf("%w: hostile %s spawned without health", ErrInvalidEntity, h.ID)
	}
	return nil
}

func (o *Obstacle) Validate() error {
	switch {
	case o.ID == "":
		return fmt.Errorf("%w: obstacle without id", ErrInvalidEntity)
	case o.Size <= 0:
		return fmt.Errorf("%w: obstacle %s has no extent", ErrInvalidEntity, o.ID)
	case o.Health <= 0:
		return fmt.Errorf("%w: obstacle %s spawned without health", ErrInvalidEntity, o.ID)
	}
	return nil
}

func (c *Collectible) Validate() error {
	switch {
	case c.ID == "":
		return fmt.Errorf("%w: collectible without id", ErrInvalidEntity)
	case c.Radius <= 0:
		return fmt.Errorf("%w: collectible %s has no radius", ErrInvalidEntity, c.ID)
	case c.Weight < 0:
		return fmt.Errorf("%w: collectible %s has negative weight", ErrInvalidEntity, c.ID)
	case c.Kind == CollectibleResource && c.Type == "":
		return fmt.Errorf("%w: resource %s has no type", ErrInvalidEntity, c.ID)
	}
	return nil
}
