package engine

import (
	"slices"
	"sort"
	"time"

	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/maze"
)

// ResourceView is the snapshot form of the resource wave
type ResourceView struct {
	Wave  int      `json:"wave"`
	Types []string `json:"types,omitempty"`
	Held  []string `json:"held,omitempty"`
}

// Snapshot is a read-only copy of session state for renderers
// Slices are owned by the snapshot; mutating them does not touch the session
type Snapshot struct {
	SessionID string        `json:"session_id"`
	Game      string        `json:"game"`
	Status    Status        `json:"status"`
	Tick      uint64        `json:"tick"`
	Elapsed   time.Duration `json:"elapsed"`
	Remaining time.Duration `json:"remaining,omitempty"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Topology  string        `json:"topology"`

	Score int `json:"score"`
	Kills int `json:"kills"`
	Wave  int `json:"wave"`

	Player       component.Player        `json:"player"`
	Snake        *component.Snake        `json:"snake,omitempty"`
	Bullets      []component.Bullet      `json:"bullets"`
	Hostiles     []component.Hostile     `json:"hostiles"`
	Obstacles    []component.Obstacle    `json:"obstacles"`
	Decorations  []component.Decoration  `json:"decorations"`
	Collectibles []component.Collectible `json:"collectibles"`
	DropZones    []component.DropZone    `json:"drop_zones"`
	Particles    []component.Particle    `json:"particles"`

	Boss      BossState           `json:"boss"`
	Resources ResourceView        `json:"resources"`
	PowerUps  []component.PowerUp `json:"power_ups,omitempty"`

	TotalCollectibles int `json:"total_collectibles"`
	CollectedCount    int `json:"collected"`
	DeliveredCount    int `json:"delivered"`

	// Events are the events of tick Tick; hosts compare Tick to avoid replaying them
	Events []event.GameEvent `json:"events,omitempty"`

	// Grid is shared, never mutated after construction
	Grid *maze.Grid `json:"-"`
}

func (w *World) snapshot(id string, st Status) Snapshot {
	s := Snapshot{
		SessionID: id,
		Game:      w.Game,
		Status:    st,
		Tick:      w.Tick,
		Elapsed:   w.Now,
		Remaining: w.Remaining,
		Width:     w.Width,
		Height:    w.Height,
		Topology:  w.Topology.String(),

		Score: w.Score,
		Kills: w.Kills,
		Wave:  w.Wave,

		Player:       w.Player,
		Bullets:      slices.Clone(w.Bullets),
		Hostiles:     slices.Clone(w.Hostiles),
		Obstacles:    slices.Clone(w.Obstacles),
		Decorations:  slices.Clone(w.Decorations),
		Collectibles: slices.Clone(w.Collectibles),
		DropZones:    make([]component.DropZone, len(w.DropZones)),
		Particles:    slices.Clone(w.Particles),

		Boss: w.Boss,
		Resources: ResourceView{
			Wave:  w.Resources.Wave,
			Types: slices.Clone(w.Resources.Types),
		},

		TotalCollectibles: w.TotalCollectibles,
		CollectedCount:    w.CollectedCount,
		DeliveredCount:    w.DeliveredCount,

		Events: slices.Clone(w.Events.Events()),
		Grid:   w.Grid,
	}
	s.Player.Cargo.Items = slices.Clone(w.Player.Cargo.Items)
	for i, z := range w.DropZones {
		z.Delivered = slices.Clone(z.Delivered)
		s.DropZones[i] = z
	}
	if w.Snake != nil {
		sn := *w.Snake
		sn.Body = slices.Clone(w.Snake.Body)
		s.Snake = &sn
	}
	for _, t := range w.Resources.Types {
		if w.Resources.Held[t] {
			s.Resources.Held = append(s.Resources.Held, t)
		}
	}
	for p, on := range w.PowerUps {
		if on {
			s.PowerUps = append(s.PowerUps, p)
		}
	}
	sort.Slice(s.PowerUps, func(i, j int) bool { return s.PowerUps[i] < s.PowerUps[j] })
	return s
}

// LiveHostiles counts snapshot hostiles not marked dead
func (s *Snapshot) LiveHostiles() int {
	n := 0
	for i := range s.Hostiles {
		if !s.Hostiles[i].Dead {
			n++
		}
	}
	return n
}

// EventCount returns how many events of type t the snapshot carries
func (s *Snapshot) EventCount(t event.EventType) int {
	n := 0
	for _, ev := range s.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
