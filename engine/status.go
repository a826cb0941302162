package engine

import "errors"

// Status is the session state machine position
type Status uint8

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
	StatusLevelComplete
	StatusTimeUp
)

// ErrInvalidTransition rejects a lifecycle call the state machine does not allow
var ErrInvalidTransition = errors.New("invalid status transition")

var statusNames = [...]string{
	StatusMenu:          "menu",
	StatusPlaying:       "playing",
	StatusPaused:        "paused",
	StatusGameOver:      "gameOver",
	StatusLevelComplete: "levelComplete",
	StatusTimeUp:        "timeUp",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no transition leads back to playing
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusLevelComplete || s == StatusTimeUp
}

// canTransition encodes menu → playing ⇄ paused → terminal
// Terminal states have no outgoing edge; restart builds a new session
func canTransition(from, to Status) bool {
	switch from {
	case StatusMenu:
		return to == StatusPlaying
	case StatusPlaying:
		return to == StatusPaused || to.Terminal()
	case StatusPaused:
		return to == StatusPlaying
	}
	return false
}
