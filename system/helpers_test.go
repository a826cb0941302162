package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/event"
)

func newTestWorld(t *testing.T, cfg engine.WorldConfig) *engine.World {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.Game == "" {
		cfg.Game = "test"
	}
	return engine.NewWorld(cfg)
}

// advance moves world time forward the way Session.Update does before systems run
func advance(w *engine.World, dt time.Duration) {
	w.Tick++
	w.Dt = dt
	w.Now += dt
	w.Timers.Advance(w.Now)
}

func countEvents(w *engine.World, t event.EventType) int {
	return w.Events.Count(t)
}
