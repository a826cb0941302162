// Package event carries the per-tick record of gameplay events
// Systems push during Update; hosts read them from the snapshot for sound and UI
package event

// EventType represents the type of game event
type EventType int

const (
	// === Combat ===

	// EventShot signals a player or hostile weapon discharge
	// Trigger: WeaponSystem | Payload: *ShotPayload
	EventShot EventType = iota + 1

	// EventHostileDestroyed signals a hostile reaching zero health
	// Trigger: CombatSystem | Payload: *DestroyedPayload
	EventHostileDestroyed

	// EventObstacleDestroyed signals an obstacle reaching zero health
	// Trigger: CombatSystem | Payload: *DestroyedPayload
	EventObstacleDestroyed

	// EventPlayerHit signals damage applied to the player
	// Trigger: CombatSystem | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventLifeLost signals player health depletion consuming a life
	// Trigger: CombatSystem | Payload: *PlayerHitPayload
	EventLifeLost

	// === Collection ===

	// EventPickup signals a collected item
	// Trigger: CombatSystem | Payload: *PickupPayload
	EventPickup

	// EventPickupRejected signals an item refused for lack of capacity
	// Trigger: CombatSystem | Payload: *PickupPayload
	EventPickupRejected

	// EventDelivery signals an inventory transfer into a drop zone
	// Trigger: CombatSystem | Payload: *DeliveryPayload
	EventDelivery

	// EventCargoExpired signals a carried item dropped back after its lifespan
	// Trigger: CombatSystem | Payload: *PickupPayload
	EventCargoExpired

	// EventGrow signals every resource type of the current wave collected
	// Trigger: CombatSystem | Payload: *GrowPayload
	EventGrow

	// EventPowerUpStart and EventPowerUpExpired bracket a timed modifier
	// Trigger: CombatSystem, Session | Payload: *PowerUpPayload
	EventPowerUpStart
	EventPowerUpExpired

	// === Spawning ===

	// EventWaveChanged signals a new row of the kill-keyed wave table
	// Trigger: SpawnSystem | Payload: *WavePayload
	EventWaveChanged

	// EventBossStarted and EventBossDefeated bracket a boss encounter
	// Trigger: SpawnSystem, CombatSystem | Payload: *BossPayload
	EventBossStarted
	EventBossDefeated

	// EventResourceWave signals a synchronized resource set and its hazard wave
	// Trigger: SpawnSystem | Payload: *ResourceWavePayload
	EventResourceWave

	// EventWaveRefresh signals a full hostile respawn
	// Trigger: SpawnSystem on delivery | Payload: *WavePayload
	EventWaveRefresh

	// EventSpawnRejected signals an entity that failed validation
	// Trigger: any spawner | Payload: *SpawnRejectedPayload
	EventSpawnRejected

	// === Session ===

	// EventStatusChanged signals a session state machine transition
	// Trigger: Session | Payload: *StatusPayload
	EventStatusChanged
)

var typeNames = map[EventType]string{
	EventShot:              "shot",
	EventHostileDestroyed:  "hostile_destroyed",
	EventObstacleDestroyed: "obstacle_destroyed",
	EventPlayerHit:         "player_hit",
	EventLifeLost:          "life_lost",
	EventPickup:            "pickup",
	EventPickupRejected:    "pickup_rejected",
	EventDelivery:          "delivery",
	EventCargoExpired:      "cargo_expired",
	EventGrow:              "grow",
	EventPowerUpStart:      "powerup_start",
	EventPowerUpExpired:    "powerup_expired",
	EventWaveChanged:       "wave_changed",
	EventBossStarted:       "boss_started",
	EventBossDefeated:      "boss_defeated",
	EventResourceWave:      "resource_wave",
	EventWaveRefresh:       "wave_refresh",
	EventSpawnRejected:     "spawn_rejected",
	EventStatusChanged:     "status_changed",
}

// String returns the registry name, used as the sound key and JSON tag
func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// MarshalText encodes the type by name for snapshot JSON
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
