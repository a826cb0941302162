package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/engine"
)

// Entry is one ranked score
type Entry struct {
	GameID    string    `json:"game"`
	Score     int       `json:"score"`
	Points    int       `json:"points"`
	SessionID string    `json:"session_id,omitempty"`
	At        time.Time `json:"at"`
}

// Leaderboard keeps the top scores per game and the final results of sessions
// It serves as both LeaderboardSink and GameSessionReporter
type Leaderboard struct {
	mu      sync.RWMutex
	size    int
	boards  map[string][]Entry
	results []engine.Result
	now     func() time.Time
	log     *zap.Logger
}

func NewLeaderboard(size int, log *zap.Logger) *Leaderboard {
	if size < 1 {
		size = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Leaderboard{
		size:   size,
		boards: make(map[string][]Entry),
		now:    time.Now,
		log:    log.Named("leaderboard"),
	}
}

// Submit ranks a score; only the top entries per game are kept
func (l *Leaderboard) Submit(ctx context.Context, gameID string, score, points int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.insert(Entry{GameID: gameID, Score: score, Points: points, At: l.now()})
	return nil
}

// ReportResult records the final session result
func (l *Leaderboard) ReportResult(ctx context.Context, r engine.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, r)
	l.log.Info("session result",
		zap.String("session", r.SessionID),
		zap.String("game", r.GameID),
		zap.Stringer("status", r.Status),
		zap.Int("score", r.Score),
		zap.Duration("elapsed", r.Elapsed),
	)
	return nil
}

func (l *Leaderboard) insert(e Entry) {
	board := append(l.boards[e.GameID], e)
	// Stable keeps the earlier of equal scores ahead
	sort.SliceStable(board, func(i, j int) bool { return board[i].Score > board[j].Score })
	if len(board) > l.size {
		board = board[:l.size]
	}
	l.boards[e.GameID] = board
}

// Top returns a copy of the ranked entries for one game
func (l *Leaderboard) Top(gameID string) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry(nil), l.boards[gameID]...)
}

// Global returns the best entries across every game
func (l *Leaderboard) Global() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var all []Entry
	for _, b := range l.boards {
		all = append(all, b...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].At.Before(all[j].At)
	})
	if len(all) > l.size {
		all = all[:l.size]
	}
	return all
}

// Results returns a copy of every reported session result
func (l *Leaderboard) Results() []engine.Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]engine.Result(nil), l.results...)
}
