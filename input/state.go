package input

import (
	"sync"

	"github.com/lixenwraith/arcade/engine"
)

// State is a thread-safe held-key set written by a reader goroutine
// and sampled by the session tick
type State struct {
	mu   sync.RWMutex
	held engine.InputState
}

func NewState() *State {
	return &State{}
}

func (s *State) Held(k engine.Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.held.Held(k)
}

// Set replaces the held set
func (s *State) Set(keys ...engine.Key) {
	s.mu.Lock()
	s.held = engine.InputState(0).With(keys...)
	s.mu.Unlock()
}

func (s *State) Press(k engine.Key) {
	s.mu.Lock()
	s.held = s.held.With(k)
	s.mu.Unlock()
}

func (s *State) Release(k engine.Key) {
	s.mu.Lock()
	s.held &^= engine.InputState(0).With(k)
	s.mu.Unlock()
}

// Clear releases every key
func (s *State) Clear() {
	s.mu.Lock()
	s.held = 0
	s.mu.Unlock()
}
