package event

import (
	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/vmath"
)

// ShotPayload describes a weapon discharge
type ShotPayload struct {
	Owner   component.Side `json:"owner"`
	Bullets int            `json:"bullets"`
}

// DestroyedPayload describes a destroyed hostile or obstacle
type DestroyedPayload struct {
	ID     string         `json:"id"`
	Kind   string         `json:"kind"`
	Tier   component.Tier `json:"tier"`
	Points int            `json:"points"`
	Pos    vmath.Vec2     `json:"pos"`
	Boss   bool           `json:"boss,omitempty"`
}

// PlayerHitPayload carries the player state after damage
type PlayerHitPayload struct {
	Damage int    `json:"damage"`
	Source string `json:"source"`
	Health int    `json:"health"`
	Lives  int    `json:"lives"`
}

// PickupPayload describes a collected, rejected or expired item
type PickupPayload struct {
	ID     string                    `json:"id"`
	Kind   component.CollectibleKind `json:"kind"`
	Type   string                    `json:"type,omitempty"`
	Weight int                       `json:"weight,omitempty"`
}

// DeliveryPayload describes one inventory transfer
type DeliveryPayload struct {
	ZoneID string `json:"zone"`
	Items  int    `json:"items"`
	Points int    `json:"points"`
}

// GrowPayload carries the player growth count after a completed resource set
type GrowPayload struct {
	Growth int `json:"growth"`
}

// PowerUpPayload names the modifier
type PowerUpPayload struct {
	Kind component.PowerUp `json:"kind"`
}

// WavePayload carries the limits of the active wave
type WavePayload struct {
	Wave          int   `json:"wave"`
	MaxHostiles   int   `json:"max_hostiles"`
	SpawnInterval int64 `json:"spawn_interval_ms"`
}

// BossPayload describes a boss encounter tier
type BossPayload struct {
	Tier  int `json:"tier"`
	Units int `json:"units"`
}

// ResourceWavePayload describes a synchronized resource spawn
type ResourceWavePayload struct {
	Types    []string `json:"types"`
	Hazards  int      `json:"hazards"`
	WaveSize int      `json:"wave_size"`
}

// SpawnRejectedPayload describes a spawn refused by validation
type SpawnRejectedPayload struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// StatusPayload describes a session transition
type StatusPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}
