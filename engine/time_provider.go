package engine

import (
	"sync"
	"time"
)

// TimeProvider is the monotonic clock a host loop reads once per frame
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides real time with monotonic readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock converts successive clock readings into frame deltas
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts measuring from the provider's current time
// maxDelta caps a single delta; zero disables the cap
func NewFrameClock(p TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{provider: p, last: p.Now(), maxDelta: maxDelta}
}

// Tick returns time since the previous Tick
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}

// Reset discards time accumulated since the last Tick, used on resume
func (c *FrameClock) Reset() {
	c.last = c.provider.Now()
}
