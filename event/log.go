package event

import (
	"time"

	"github.com/lixenwraith/arcade/parameter"
)

// GameEvent is a single event recorded during a tick
type GameEvent struct {
	Type    EventType     `json:"type"`
	Tick    uint64        `json:"tick"`
	At      time.Duration `json:"at"`
	Payload any           `json:"payload,omitempty"`
}

// Log collects the events of the current tick
// Single-threaded: written by systems inside Update, drained by the session
//
// Overflow: events past capacity are counted and dropped
type Log struct {
	events  []GameEvent
	dropped int
}

func NewLog() *Log {
	return &Log{events: make([]GameEvent, 0, 32)}
}

// Push appends an event unless the tick's capacity is exhausted
func (l *Log) Push(ev GameEvent) {
	if len(l.events) >= parameter.EventLogCap {
		l.dropped++
		return
	}
	l.events = append(l.events, ev)
}

// Events returns the pending events in push order
func (l *Log) Events() []GameEvent {
	return l.events
}

// Count returns how many events of type t are pending
func (l *Log) Count(t EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Drain returns a copy of the pending events and clears the log
func (l *Log) Drain() []GameEvent {
	if len(l.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(l.events))
	copy(out, l.events)
	l.events = l.events[:0]
	return out
}

// Dropped returns the number of events lost to overflow since creation
func (l *Log) Dropped() int {
	return l.dropped
}
