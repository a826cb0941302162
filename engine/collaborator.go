package engine

import (
	"context"
	"time"
)

// CreditLedger is the credits balance consumed by the hosting page
type CreditLedger interface {
	CanAfford(cost int) bool
	Spend(cost int, reason string) bool
	Balance() int
}

// Result is the final record of a session
type Result struct {
	SessionID string         `json:"session_id"`
	GameID    string         `json:"game_id"`
	Status    Status         `json:"status"`
	Score     int            `json:"score"`
	Points    int            `json:"points"`
	Elapsed   time.Duration  `json:"elapsed"`
	Metrics   map[string]int `json:"metrics"`
}

// GameSessionReporter records final scores
type GameSessionReporter interface {
	ReportResult(ctx context.Context, r Result) error
}

// LeaderboardSink ranks submitted scores per game
type LeaderboardSink interface {
	Submit(ctx context.Context, gameID string, score, points int) error
}

// Key is a logical input
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	keyCount
)

var keyNames = [...]string{"up", "down", "left", "right", "fire", "pause"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a logical key name to its Key
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// InputSource is a queryable set of currently held keys
type InputSource interface {
	Held(k Key) bool
}

// InputState is the per-tick sample of an InputSource
type InputState uint16

// SampleInput reads every key from src once
func SampleInput(src InputSource) InputState {
	if src == nil {
		return 0
	}
	var s InputState
	for k := Key(0); k < keyCount; k++ {
		if src.Held(k) {
			s |= 1 << k
		}
	}
	return s
}

func (s InputState) Held(k Key) bool { return s&(1<<k) != 0 }

// With returns s with k held, used by tests and scripted input
func (s InputState) With(keys ...Key) InputState {
	for _, k := range keys {
		s |= 1 << k
	}
	return s
}
