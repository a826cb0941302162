package engine

import "time"

// Timers is the named cooldown and expiry table of a session
// All entries compare against the same game clock, advanced once per tick
type Timers struct {
	now      time.Duration
	last     map[string]time.Duration
	interval map[string]time.Duration
}

func NewTimers() *Timers {
	return &Timers{
		last:     make(map[string]time.Duration),
		interval: make(map[string]time.Duration),
	}
}

// Advance moves the timer clock to now
func (t *Timers) Advance(now time.Duration) { t.now = now }

// Now returns the timer clock
func (t *Timers) Now() time.Duration { return t.now }

// SetInterval sets the period of a named timer, registering it if needed
func (t *Timers) SetInterval(name string, d time.Duration) {
	t.interval[name] = d
	if _, ok := t.last[name]; !ok {
		t.last[name] = t.now
	}
}

func (t *Timers) Interval(name string) time.Duration { return t.interval[name] }

// Start registers name with interval d, marked at the current clock
func (t *Timers) Start(name string, d time.Duration) {
	t.interval[name] = d
	t.last[name] = t.now
}

// Mark records the current clock as the timer's last firing
func (t *Timers) Mark(name string) { t.last[name] = t.now }

// Elapsed is the time since the last Mark
func (t *Timers) Elapsed(name string) time.Duration { return t.now - t.last[name] }

// Due reports elapsed(name) > interval(name); unknown timers are never due
func (t *Timers) Due(name string) bool {
	iv, ok := t.interval[name]
	if !ok {
		return false
	}
	return t.Elapsed(name) > iv
}

// Fire marks the timer and returns true if it was due
func (t *Timers) Fire(name string) bool {
	if !t.Due(name) {
		return false
	}
	t.Mark(name)
	return true
}

func (t *Timers) Has(name string) bool {
	_, ok := t.interval[name]
	return ok
}

// Remaining returns time left until the timer is due, zero when due
func (t *Timers) Remaining(name string) time.Duration {
	r := t.interval[name] - t.Elapsed(name)
	if r < 0 {
		return 0
	}
	return r
}

// Clear removes a timer
func (t *Timers) Clear(name string) {
	delete(t.last, name)
	delete(t.interval, name)
}

// Prime registers name with interval d so that it is due immediately
func (t *Timers) Prime(name string, d time.Duration) {
	t.interval[name] = d
	t.last[name] = t.now - d - 1
}
