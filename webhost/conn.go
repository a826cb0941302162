package webhost

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/host"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/parameter"
)

const (
	writeWait   = 5 * time.Second
	readLimit   = 4096
	commandSlot = 8
)

// Client messages
const (
	msgKeys    = "keys"
	msgPause   = "pause"
	msgRestart = "restart"
)

type clientMessage struct {
	Type string   `json:"type"`
	Held []string `json:"held,omitempty"`
}

type snapshotMessage struct {
	Type     string           `json:"type"`
	Snapshot *engine.Snapshot `json:"snapshot"`
}

type gridMessage struct {
	Type     string   `json:"type"`
	Cols     int      `json:"cols"`
	Rows     int      `json:"rows"`
	CellSize float64  `json:"cell_size"`
	Walls    []string `json:"walls"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// playerConn is one websocket client playing one session at a time
// Only run writes to the socket; readPump only reads
type playerConn struct {
	id       string
	srv      *Server
	ws       *websocket.Conn
	kind     string
	input    *input.State
	commands chan string
	log      *zap.Logger
}

func newPlayerConn(srv *Server, ws *websocket.Conn, kind string) *playerConn {
	id := uuid.NewString()
	return &playerConn{
		id:       id,
		srv:      srv,
		ws:       ws,
		kind:     kind,
		input:    input.NewState(),
		commands: make(chan string, commandSlot),
		log:      srv.log.With(zap.String("game", kind), zap.String("remote", ws.RemoteAddr().String()), zap.String("conn", id)),
	}
}

func (c *playerConn) run() {
	defer c.ws.Close()

	deps := c.srv.deps
	deps.Input = c.input
	deps.Status = c.srv.track(c.id)
	defer c.srv.untrack(c.id)
	cabinet := host.NewCabinet(c.srv.credits, c.srv.games, deps)

	session, err := cabinet.Play(c.kind)
	if err != nil {
		c.log.Info("play refused", zap.Error(err))
		c.write(errorMessage{Type: "error", Error: err.Error()})
		c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "play refused"),
			time.Now().Add(writeWait))
		return
	}
	c.log.Info("connected", zap.String("session", session.ID()))

	done := make(chan struct{})
	go c.readPump(done)

	clock := engine.NewFrameClock(c.srv.clock, parameter.MaxFrameDelta)
	ticker := time.NewTicker(time.Second / time.Duration(c.srv.tickRate))
	defer ticker.Stop()

	if c.writeGrid(session) != nil {
		return
	}

	var (
		lastTick   uint64
		lastStatus engine.Status
		fresh      = true
	)
	for {
		select {
		case <-done:
			c.log.Info("disconnected", zap.String("session", session.ID()), zap.Stringer("status", session.Status()))
			return

		case cmd := <-c.commands:
			switch cmd {
			case msgPause:
				if err := session.TogglePause(); err != nil {
					c.log.Debug("pause ignored", zap.Error(err))
				}
				clock.Reset()
			case msgRestart:
				next, err := cabinet.Restart()
				if err != nil {
					if c.write(errorMessage{Type: "error", Error: err.Error()}) != nil {
						return
					}
					continue
				}
				session = next
				c.input.Clear()
				clock.Reset()
				fresh = true
				if c.writeGrid(session) != nil {
					return
				}
			}

		case <-ticker.C:
			snap := session.Update(clock.Tick())
			if !fresh && snap.Tick == lastTick && snap.Status == lastStatus {
				continue
			}
			lastTick, lastStatus, fresh = snap.Tick, snap.Status, false
			if err := c.write(snapshotMessage{Type: "snapshot", Snapshot: &snap}); err != nil {
				c.log.Debug("write failed", zap.Error(err))
				return
			}
		}
	}
}

// readPump applies held keys directly and forwards commands to run
func (c *playerConn) readPump(done chan<- struct{}) {
	defer close(done)
	c.ws.SetReadLimit(readLimit)

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			c.log.Debug("discarding malformed message", zap.Error(err))
			continue
		}

		switch strings.ToLower(msg.Type) {
		case msgKeys:
			keys, err := input.ParseKeys(msg.Held)
			if err != nil {
				c.log.Debug("discarding keys", zap.Error(err))
				continue
			}
			c.input.Set(keys...)
		case msgPause, msgRestart:
			select {
			case c.commands <- strings.ToLower(msg.Type):
			default:
			}
		}
	}
}

func (c *playerConn) write(v any) error {
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// writeGrid sends the static wall layout once per session; gridless games skip it
func (c *playerConn) writeGrid(s *engine.Session) error {
	g := s.World().Grid
	if g == nil || s.World().Topology != engine.TopologyMaze {
		return nil
	}
	return c.write(gridMessage{
		Type:     "grid",
		Cols:     g.Cols,
		Rows:     g.Rows,
		CellSize: g.CellSize,
		Walls:    wallRows(g),
	})
}

func wallRows(g *maze.Grid) []string {
	rows := make([]string, g.Rows)
	line := make([]byte, g.Cols)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			line[x] = '.'
			if g.IsWall(x, y) {
				line[x] = '#'
			}
		}
		rows[y] = string(line)
	}
	return rows
}
