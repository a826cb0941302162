package input

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/engine"
)

func TestBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name    string
		ev      *tcell.EventKey
		key     engine.Key
		isKey   bool
		command Command
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.KeyLeft, true, CommandNone},
		{"wasd", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), engine.KeyUp, true, CommandNone},
		{"wasd upper", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), engine.KeyRight, true, CommandNone},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.KeyFire, true, CommandNone},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), 0, false, CommandPause},
		{"quit", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false, CommandQuit},
		{"start", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false, CommandStart},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false, CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := b.Key(tt.ev)
			if ok != tt.isKey || (ok && k != tt.key) {
				t.Errorf("Key = %v, %v; want %v, %v", k, ok, tt.key, tt.isKey)
			}
			if c := b.Command(tt.ev); c != tt.command {
				t.Errorf("Command = %v, want %v", c, tt.command)
			}
		})
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"up", "fire"})
	if err != nil || len(keys) != 2 || keys[0] != engine.KeyUp || keys[1] != engine.KeyFire {
		t.Fatalf("ParseKeys = %v, %v", keys, err)
	}
	if _, err := ParseKeys([]string{"left", "jump"}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("err = %v, want ErrUnknownKey", err)
	}
}

func TestState(t *testing.T) {
	s := NewState()
	s.Press(engine.KeyUp)
	s.Press(engine.KeyFire)
	s.Release(engine.KeyUp)

	if s.Held(engine.KeyUp) || !s.Held(engine.KeyFire) {
		t.Error("press/release mismatch")
	}

	s.Set(engine.KeyLeft, engine.KeyDown)
	if got := engine.SampleInput(s); got != engine.InputState(0).With(engine.KeyLeft, engine.KeyDown) {
		t.Errorf("sample = %b", got)
	}

	s.Clear()
	if engine.SampleInput(s) != 0 {
		t.Error("Clear left keys held")
	}
}

func TestStateConcurrent(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Press(engine.KeyRight)
				s.Release(engine.KeyRight)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				engine.SampleInput(s)
			}
		}()
	}
	wg.Wait()
}

func TestLatch(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	l := NewLatch(clock, 500*time.Millisecond, 100*time.Millisecond)

	l.Press(engine.KeyRight)
	clock.Advance(400 * time.Millisecond)
	if !l.Held(engine.KeyRight) {
		t.Fatal("released inside the initial window")
	}

	// First auto-repeat narrows the window
	l.Press(engine.KeyRight)
	clock.Advance(90 * time.Millisecond)
	if !l.Held(engine.KeyRight) {
		t.Fatal("released inside the repeat window")
	}
	clock.Advance(20 * time.Millisecond)
	if l.Held(engine.KeyRight) {
		t.Fatal("still held after the repeat window")
	}

	// A later press starts a fresh initial window
	l.Press(engine.KeyRight)
	clock.Advance(300 * time.Millisecond)
	if !l.Held(engine.KeyRight) {
		t.Error("new press did not use the initial window")
	}

	l.Release(engine.KeyRight)
	if l.Held(engine.KeyRight) {
		t.Error("Release did not drop the key")
	}
	if l.Held(engine.KeyFire) {
		t.Error("never-pressed key is held")
	}
}
