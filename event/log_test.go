package event

import (
	"testing"

	"github.com/lixenwraith/arcade/parameter"
)

func TestLogDrainClears(t *testing.T) {
	l := NewLog()
	l.Push(GameEvent{Type: EventShot})
	l.Push(GameEvent{Type: EventPickup})
	l.Push(GameEvent{Type: EventShot})

	if got := l.Count(EventShot); got != 2 {
		t.Errorf("Count(EventShot) = %d, want 2", got)
	}

	out := l.Drain()
	if len(out) != 3 {
		t.Fatalf("Drain returned %d events, want 3", len(out))
	}
	if out[1].Type != EventPickup {
		t.Errorf("events out of order: %v", out[1].Type)
	}
	if len(l.Events()) != 0 {
		t.Error("log not empty after Drain")
	}

	// Drained slice must not alias the reused backing array
	l.Push(GameEvent{Type: EventGrow})
	if out[0].Type != EventShot {
		t.Error("drained events were overwritten by later pushes")
	}
}

func TestLogOverflow(t *testing.T) {
	l := NewLog()
	for i := 0; i < parameter.EventLogCap+5; i++ {
		l.Push(GameEvent{Type: EventShot})
	}
	if len(l.Events()) != parameter.EventLogCap {
		t.Errorf("len = %d, want cap %d", len(l.Events()), parameter.EventLogCap)
	}
	if l.Dropped() != 5 {
		t.Errorf("Dropped = %d, want 5", l.Dropped())
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventGrow.String() != "grow" {
		t.Errorf("EventGrow.String() = %q", EventGrow.String())
	}
	if EventType(9999).String() != "unknown" {
		t.Error("unregistered type should be unknown")
	}
	b, err := EventDelivery.MarshalText()
	if err != nil || string(b) != "delivery" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
}
