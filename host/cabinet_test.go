package host

import (
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/game"
	"github.com/lixenwraith/arcade/ledger"
)

// failingLedger affords everything but refuses every spend
type failingLedger struct {
	mu    sync.Mutex
	tries int
}

func (f *failingLedger) CanAfford(int) bool { return true }
func (f *failingLedger) Balance() int       { return 0 }
func (f *failingLedger) Spend(int, string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tries++
	return false
}

func testGames() config.Games {
	g := config.Default().Games
	g.Shooter.Seed = 1
	g.Cargo.Seed = 1
	g.Snake.Seed = 1
	g.Cargo.Cost = 3
	return g
}

func syncDeps() game.Deps {
	return game.Deps{Dispatch: func(f func()) { f() }}
}

func TestPlayCharges(t *testing.T) {
	credits := ledger.NewCredits(5, nil)
	c := NewCabinet(credits, testGames(), syncDeps())

	s, err := c.Play(game.Shooter)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.Status() != engine.StatusPlaying {
		t.Errorf("Status = %v, want playing", s.Status())
	}
	if credits.Balance() != 4 {
		t.Errorf("Balance = %d, want 4", credits.Balance())
	}

	// Pause and resume must not charge again
	s.Pause()
	s.Resume()
	if credits.Balance() != 4 {
		t.Errorf("Balance after resume = %d, want 4", credits.Balance())
	}
}

func TestPlayInsufficient(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		kind    string
		wantErr error
	}{
		{"affordable", 3, game.Cargo, nil},
		{"short", 2, game.Cargo, ErrInsufficientCredits},
		{"empty", 0, game.Snake, ErrInsufficientCredits},
		{"unknown", 10, "pinball", game.ErrUnknownGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits := ledger.NewCredits(tt.balance, nil)
			c := NewCabinet(credits, testGames(), syncDeps())
			s, err := c.Play(tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if s != nil || c.Session() != nil {
					t.Error("session built despite error")
				}
				if credits.Balance() != tt.balance {
					t.Errorf("Balance = %d, want unchanged %d", credits.Balance(), tt.balance)
				}
			}
		})
	}
}

func TestRestart(t *testing.T) {
	credits := ledger.NewCredits(2, nil)
	c := NewCabinet(credits, testGames(), syncDeps())

	if _, err := c.Restart(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Restart before Play: %v", err)
	}

	first, _ := c.Play(game.Snake)
	second, err := c.Restart()
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if first == second || first.ID() == second.ID() {
		t.Error("Restart reused the session")
	}
	if c.Session() != second {
		t.Error("Session() does not return the restarted session")
	}
	if credits.Balance() != 0 {
		t.Errorf("Balance = %d, want 0", credits.Balance())
	}

	if _, err := c.Restart(); !errors.Is(err, ErrInsufficientCredits) {
		t.Errorf("Restart without credits: %v", err)
	}
	if c.Session() != second {
		t.Error("failed restart replaced the session")
	}
}

func TestSpendFailureLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	deps := syncDeps()
	deps.Logger = zap.New(core)

	f := &failingLedger{}
	c := NewCabinet(f, testGames(), deps)
	s, err := c.Play(game.Shooter)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.Status() != engine.StatusPlaying {
		t.Errorf("Status = %v, want playing despite failed spend", s.Status())
	}
	if f.tries != 1 {
		t.Errorf("spend tries = %d, want 1", f.tries)
	}
	if logs.FilterMessage("credit spend failed").Len() != 1 {
		t.Errorf("expected one spend failure log, got %v", logs.All())
	}
}

func TestStatusCallbackChained(t *testing.T) {
	var seen []engine.Status
	deps := syncDeps()
	deps.OnStatus = func(_, to engine.Status) { seen = append(seen, to) }

	c := NewCabinet(ledger.NewCredits(1, nil), testGames(), deps)
	s, _ := c.Play(game.Shooter)
	s.Pause()

	if len(seen) != 2 || seen[0] != engine.StatusPlaying || seen[1] != engine.StatusPaused {
		t.Errorf("callback saw %v", seen)
	}
}
