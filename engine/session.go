package engine

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/event"
	"github.com/lixenwraith/arcade/status"
)

const reportTimeout = 5 * time.Second

// Session drives one play-through: state machine, tick sequencing and the final report
// All methods must be called from a single goroutine, the host loop
type Session struct {
	id      string
	world   *World
	systems []System
	status  Status

	reporter GameSessionReporter
	board    LeaderboardSink
	input    InputSource
	onStatus func(from, to Status)
	dispatch func(func())
	log      *zap.Logger

	reported bool

	tickMetric    *atomic.Int64
	scoreMetric   *atomic.Int64
	frameMetric   *status.Gauge
	playingMetric *atomic.Bool
}

// Option configures a Session
type Option func(*Session)

// WithReporter sets the final score recorder
func WithReporter(r GameSessionReporter) Option {
	return func(s *Session) { s.reporter = r }
}

// WithLeaderboard sets the ranking sink
func WithLeaderboard(b LeaderboardSink) Option {
	return func(s *Session) { s.board = b }
}

// WithInput sets the held-key source sampled once per tick
func WithInput(in InputSource) Option {
	return func(s *Session) { s.input = in }
}

// WithStatusCallback notifies the host of every transition
func WithStatusCallback(fn func(from, to Status)) Option {
	return func(s *Session) { s.onStatus = fn }
}

// WithDispatcher replaces the goroutine launcher used for collaborator calls
func WithDispatcher(fn func(func())) Option {
	return func(s *Session) { s.dispatch = fn }
}

// WithID overrides the generated session ID
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession wraps a populated world and its systems in menu status
func NewSession(w *World, systems []System, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		world:    w,
		systems:  append([]System(nil), systems...),
		status:   StatusMenu,
		dispatch: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(s)
	}
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
	s.log = w.Log.Named("session").With(zap.String("session", s.id), zap.String("game", w.Game))
	s.tickMetric = w.Status.Ints.Get("session.tick")
	s.scoreMetric = w.Status.Ints.Get("session.score")
	s.frameMetric = w.Status.Floats.Get("session.frame_ms")
	s.playingMetric = w.Status.Bools.Get("session.playing")
	return s
}

func (s *Session) ID() string     { return s.id }
func (s *Session) Status() Status { return s.status }

// World exposes the live state for presets and tests; hosts use Snapshot
func (s *Session) World() *World { return s.world }

// Start enters playing from the menu
func (s *Session) Start() error {
	if s.status != StatusMenu {
		return fmt.Errorf("start from %s: %w", s.status, ErrInvalidTransition)
	}
	s.transition(StatusPlaying)
	return nil
}

// Pause freezes the simulation; Update no-ops until Resume
func (s *Session) Pause() error {
	if s.status != StatusPlaying {
		return fmt.Errorf("pause from %s: %w", s.status, ErrInvalidTransition)
	}
	s.transition(StatusPaused)
	return nil
}

// Resume returns a paused session to playing
func (s *Session) Resume() error {
	if s.status != StatusPaused {
		return fmt.Errorf("resume from %s: %w", s.status, ErrInvalidTransition)
	}
	s.transition(StatusPlaying)
	return nil
}

// TogglePause pauses a playing session or resumes a paused one
func (s *Session) TogglePause() error {
	if s.status == StatusPaused {
		return s.Resume()
	}
	return s.Pause()
}

// Update advances the simulation by dt; a no-op unless playing
// The delta is not capped here; hosts clamp stalls before calling
func (s *Session) Update(dt time.Duration) Snapshot {
	if s.status != StatusPlaying || dt < 0 {
		return s.Snapshot()
	}
	w := s.world

	w.Events.Drain()
	w.Tick++
	w.Dt = dt
	w.Now += dt
	w.Timers.Advance(w.Now)
	w.Input = SampleInput(s.input)
	s.tickMetric.Store(int64(w.Tick))
	s.frameMetric.Set(float64(dt) / float64(time.Millisecond))

	if w.Countdown > 0 {
		w.Remaining = w.Countdown - w.Now
		if w.Remaining <= 0 {
			w.Remaining = 0
			s.finish(StatusTimeUp)
			return s.Snapshot()
		}
	}

	w.expirePowerUps()

	for _, sys := range s.systems {
		sys.Update()
	}

	w.Sweep()
	s.scoreMetric.Store(int64(w.Score))

	switch {
	case w.Player.Lives <= 0:
		s.finish(StatusGameOver)
	case w.TotalCollectibles > 0 && w.DeliveredCount >= w.TotalCollectibles:
		s.finish(StatusLevelComplete)
	}
	return s.Snapshot()
}

// Snapshot returns a read-only copy of the current state
func (s *Session) Snapshot() Snapshot {
	return s.world.snapshot(s.id, s.status)
}

// Result builds the final record from current state
func (s *Session) Result() Result {
	w := s.world
	return Result{
		SessionID: s.id,
		GameID:    w.Game,
		Status:    s.status,
		Score:     w.Score,
		Points:    w.Score,
		Elapsed:   w.Now,
		Metrics: map[string]int{
			"kills":     w.Kills,
			"wave":      w.Wave,
			"collected": w.CollectedCount,
			"delivered": w.DeliveredCount,
			"growth":    w.Player.Growth,
		},
	}
}

func (s *Session) transition(to Status) {
	from := s.status
	if !canTransition(from, to) {
		s.log.Error("illegal transition", zap.Stringer("from", from), zap.Stringer("to", to))
		return
	}
	s.status = to
	s.playingMetric.Store(to == StatusPlaying)
	s.world.Emit(event.EventStatusChanged, &event.StatusPayload{From: from.String(), To: to.String()})
	s.log.Info("status changed", zap.Stringer("from", from), zap.Stringer("to", to))
	if s.onStatus != nil {
		s.onStatus(from, to)
	}
}

// finish enters a terminal status and reports the result once
func (s *Session) finish(to Status) {
	s.transition(to)
	if s.reported || !s.status.Terminal() {
		return
	}
	s.reported = true

	res := s.Result()
	reporter, board, log := s.reporter, s.board, s.log
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		if reporter != nil {
			if err := reporter.ReportResult(ctx, res); err != nil {
				log.Warn("report result failed", zap.Error(err))
			}
		}
		if board != nil {
			if err := board.Submit(ctx, res.GameID, res.Score, res.Points); err != nil {
				log.Warn("leaderboard submit failed", zap.Error(err))
			}
		}
	})
}
