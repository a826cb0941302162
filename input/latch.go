package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/arcade/engine"
)

// Default latch windows; terminals report presses, not releases, so a key
// counts as held until no repeat arrives within the window
const (
	DefaultInitialWindow = 550 * time.Millisecond // Covers the typical auto-repeat delay
	DefaultRepeatWindow  = 120 * time.Millisecond
)

type latchEntry struct {
	last      time.Time
	repeating bool
}

// Latch converts terminal key presses and auto-repeats into held keys
type Latch struct {
	mu      sync.Mutex
	clock   engine.TimeProvider
	initial time.Duration
	repeat  time.Duration
	keys    map[engine.Key]latchEntry
}

func NewLatch(clock engine.TimeProvider, initial, repeat time.Duration) *Latch {
	if initial <= 0 {
		initial = DefaultInitialWindow
	}
	if repeat <= 0 {
		repeat = DefaultRepeatWindow
	}
	return &Latch{
		clock:   clock,
		initial: initial,
		repeat:  repeat,
		keys:    make(map[engine.Key]latchEntry),
	}
}

// Press records a press; a press while still held is an auto-repeat
// and narrows the window
func (l *Latch) Press(k engine.Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock.Now()
	e, ok := l.keys[k]
	e.repeating = ok && l.heldAt(e, now)
	e.last = now
	l.keys[k] = e
}

// Release drops k immediately, for terminals that report releases
func (l *Latch) Release(k engine.Key) {
	l.mu.Lock()
	delete(l.keys, k)
	l.mu.Unlock()
}

func (l *Latch) Held(k engine.Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.keys[k]
	return ok && l.heldAt(e, l.clock.Now())
}

// Clear releases every key, used on pause and restart
func (l *Latch) Clear() {
	l.mu.Lock()
	clear(l.keys)
	l.mu.Unlock()
}

func (l *Latch) heldAt(e latchEntry, now time.Time) bool {
	window := l.initial
	if e.repeating {
		window = l.repeat
	}
	return now.Sub(e.last) < window
}
