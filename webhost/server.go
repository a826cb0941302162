// Package webhost serves sessions over websockets, one session per connection,
// plus health, metrics and leaderboard endpoints
package webhost

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/game"
	"github.com/lixenwraith/arcade/ledger"
	"github.com/lixenwraith/arcade/status"
)

const shutdownTimeout = 5 * time.Second

// Rankings is the read side of the leaderboard
type Rankings interface {
	Top(gameID string) []ledger.Entry
	Global() []ledger.Entry
}

// Config holds what the server needs beyond its collaborators
type Config struct {
	Games    config.Games
	TickRate int
	// Clock drives per-connection frame deltas; monotonic time when nil
	Clock engine.TimeProvider
}

// Server routes HTTP and websocket traffic
type Server struct {
	games    config.Games
	tickRate int
	clock    engine.TimeProvider

	credits engine.CreditLedger
	ranks   Rankings
	deps    game.Deps
	stats   *status.Registry
	log     *zap.Logger

	upgrader websocket.Upgrader
	started  time.Time
	active   atomic.Int64

	// connStats holds each open connection's own registry, keyed by connection ID
	mu        sync.Mutex
	connStats map[string]*status.Registry
}

func NewServer(cfg Config, credits engine.CreditLedger, ranks Rankings, deps game.Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	stats := deps.Status
	if stats == nil {
		stats = status.NewRegistry()
		deps.Status = stats
	}
	clock := cfg.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Server{
		games:    cfg.Games,
		tickRate: tickRate,
		clock:    clock,
		credits:  credits,
		ranks:    ranks,
		deps:     deps,
		stats:    stats,
		log:      log.Named("web"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		started:   time.Now(),
		connStats: make(map[string]*status.Registry),
	}
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Get("/leaderboard", s.handleGlobal)
	r.Get("/leaderboard/{game}", s.handleLeaderboard)
	r.Get("/ws", s.handleWS)
	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Active is the number of open websocket sessions
func (s *Server) Active() int64 { return s.active.Load() }

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

type healthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Sessions int64  `json:"sessions"`
	Credits  int    `json:"credits"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Uptime:   time.Since(s.started).Round(time.Second).String(),
		Sessions: s.active.Load(),
		Credits:  s.credits.Balance(),
	})
}

// track gives a connection its own registry so per-session gauges do not overwrite each other
func (s *Server) track(id string) *status.Registry {
	reg := status.NewRegistry()
	s.mu.Lock()
	s.connStats[id] = reg
	s.mu.Unlock()
	return reg
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	delete(s.connStats, id)
	s.mu.Unlock()
}

// handleMetrics serves server-wide metrics plus one entry per open connection under "sessions"
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.stats.Ints.Get("web.sessions").Store(s.active.Load())
	out := s.stats.Snapshot()

	s.mu.Lock()
	sessions := make(map[string]map[string]any, len(s.connStats))
	for id, reg := range s.connStats {
		sessions[id] = reg.Snapshot()
	}
	s.mu.Unlock()
	out["sessions"] = sessions

	writeJSON(w, http.StatusOK, out)
}

type leaderboardResponse struct {
	Game    string         `json:"game"`
	Entries []ledger.Entry `json:"entries"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "game")
	if _, ok := s.games.Get(kind); !ok {
		writeError(w, http.StatusNotFound, "unknown game "+kind)
		return
	}
	entries := s.ranks.Top(kind)
	if entries == nil {
		entries = []ledger.Entry{}
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Game: kind, Entries: entries})
}

func (s *Server) handleGlobal(w http.ResponseWriter, r *http.Request) {
	entries := s.ranks.Global()
	if entries == nil {
		entries = []ledger.Entry{}
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Game: "all", Entries: entries})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("game")
	if _, ok := s.games.Get(kind); !ok {
		writeError(w, http.StatusBadRequest, "unknown game "+kind)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	s.active.Add(1)
	defer s.active.Add(-1)

	newPlayerConn(s, ws, kind).run()
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode failed", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
