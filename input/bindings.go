// Package input turns terminal and network key events into the held-key
// sets sessions sample once per tick
package input

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/engine"
)

// ErrUnknownKey rejects a key name with no logical key
var ErrUnknownKey = errors.New("unknown key")

// Command is a host-level action that never reaches the session input
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandStart
	CommandPause
	CommandRestart
	CommandMute
)

// Bindings maps terminal keys to logical keys and host commands
type Bindings struct {
	Keys         map[tcell.Key]engine.Key
	Runes        map[rune]engine.Key
	Commands     map[tcell.Key]Command
	CommandRunes map[rune]Command
}

// DefaultBindings binds arrows and WASD to movement and space to fire
func DefaultBindings() *Bindings {
	return &Bindings{
		Keys: map[tcell.Key]engine.Key{
			tcell.KeyUp:    engine.KeyUp,
			tcell.KeyDown:  engine.KeyDown,
			tcell.KeyLeft:  engine.KeyLeft,
			tcell.KeyRight: engine.KeyRight,
		},
		Runes: map[rune]engine.Key{
			'w': engine.KeyUp,
			's': engine.KeyDown,
			'a': engine.KeyLeft,
			'd': engine.KeyRight,
			' ': engine.KeyFire,
		},
		Commands: map[tcell.Key]Command{
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyEnter:  CommandStart,
		},
		CommandRunes: map[rune]Command{
			'q': CommandQuit,
			'p': CommandPause,
			'r': CommandRestart,
			'm': CommandMute,
		},
	}
}

// Key resolves a logical key; runes match case-insensitively
func (b *Bindings) Key(ev *tcell.EventKey) (engine.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := b.Runes[unicode.ToLower(ev.Rune())]
		return k, ok
	}
	k, ok := b.Keys[ev.Key()]
	return k, ok
}

// Command resolves a host command, CommandNone if unbound
func (b *Bindings) Command(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		return b.CommandRunes[unicode.ToLower(ev.Rune())]
	}
	return b.Commands[ev.Key()]
}

// ParseKeys maps logical key names as sent by web clients
func ParseKeys(names []string) ([]engine.Key, error) {
	keys := make([]engine.Key, 0, len(names))
	for _, n := range names {
		k, ok := engine.ParseKey(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, n)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
