package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/asset"
	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/status"
	"github.com/lixenwraith/arcade/vmath"
)

// newScreen returns an 80x22 simulation screen: a 20-row playfield between HUD and footer
func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 22)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

// baseSnapshot maps 10 world units to one screen cell on both axes
func baseSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Game:     "shooter",
		Status:   engine.StatusPlaying,
		Width:    800,
		Height:   200,
		Topology: engine.TopologyClamp.String(),
		Score:    1234,
		Player: component.Player{
			Pos: vmath.V(405, 105), Width: 40, Height: 40,
			Health: 100, MaxHealth: 100, Lives: 3,
		},
	}
}

func TestDrawEntities(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))

	snap := baseSnapshot()
	snap.Hostiles = []component.Hostile{{Kind: component.HostileBoss, Pos: vmath.V(100, 50), Width: 40, Height: 20}}
	snap.Bullets = []component.Bullet{{Pos: vmath.V(605, 25), Owner: component.SideHostile}}
	snap.Collectibles = []component.Collectible{
		{Kind: component.CollectiblePowerUp, Pos: vmath.V(705, 155)},
		{Kind: component.CollectiblePowerUp, Pos: vmath.V(715, 155), Collected: true},
	}
	r.Draw(&snap)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 40, 11, 'A'},
		{"boss top left", 8, 5, 'M'},
		{"boss bottom right", 11, 6, 'M'},
		{"outside boss", 12, 5, ' '},
		{"hostile bullet", 60, 3, '*'},
		{"powerup", 70, 16, 'P'},
		{"collected item hidden", 71, 16, ' '},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: cell (%d,%d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawHud(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))

	snap := baseSnapshot()
	snap.Game = "cargo"
	snap.TotalCollectibles = 8
	snap.DeliveredCount = 3
	snap.Remaining = 125 * time.Second
	snap.Player.Cargo = component.Cargo{TotalWeight: 2, MaxCapacity: 5}
	r.Draw(&snap)

	hud := row(screen, 0)
	for _, want := range []string{"cargo", "score 1234", "lives 3", "hp 100/100", "carrying 2/5", "delivered 3/8", "2:05"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if footer := row(screen, 21); !strings.Contains(footer, "p pause") {
		t.Errorf("footer = %q", footer)
	}
}

func TestDrawOverlay(t *testing.T) {
	tests := []struct {
		status engine.Status
		want   string
	}{
		{engine.StatusPaused, "PAUSED"},
		{engine.StatusGameOver, "GAME OVER"},
		{engine.StatusTimeUp, "TIME UP"},
		{engine.StatusLevelComplete, "LEVEL COMPLETE"},
		{engine.StatusMenu, "PRESS ENTER"},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			screen := newScreen(t)
			r := NewTerminal(screen, asset.NewCatalog(nil))
			snap := baseSnapshot()
			snap.Status = tt.status
			r.Draw(&snap)
			if mid := row(screen, 11); !strings.Contains(mid, tt.want) {
				t.Errorf("middle row = %q, want %q", mid, tt.want)
			}
		})
	}

	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))
	snap := baseSnapshot()
	r.Draw(&snap)
	if mid := row(screen, 11); strings.Contains(mid, "PAUSED") {
		t.Errorf("playing frame shows an overlay: %q", mid)
	}
}

func TestDrawMazeWalls(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))

	grid := maze.FromRows(100, "#.......", "........")
	snap := baseSnapshot()
	snap.Topology = engine.TopologyMaze.String()
	snap.Grid = grid
	snap.Player.Pos = vmath.V(750, 150)
	r.Draw(&snap)

	wall := asset.NewCatalog(nil).Sprite(asset.KeyWall).Glyph
	if got := runeAt(screen, 5, 5); got != wall {
		t.Errorf("wall cell = %q, want %q", got, wall)
	}
	if got := runeAt(screen, 15, 5); got != ' ' {
		t.Errorf("passage cell = %q, want blank", got)
	}
}

func TestDrawSnake(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))

	snap := baseSnapshot()
	snap.Game = "snake"
	snap.Topology = engine.TopologyWrap.String()
	snap.Grid = maze.NewGrid(8, 2, 100)
	snap.Snake = &component.Snake{Body: []component.Cell{{X: 3, Y: 1}, {X: 2, Y: 1}}}
	r.Draw(&snap)

	// Cell (3,1) centre is (350,150), screen (35,15+1)
	if got := runeAt(screen, 35, 16); got != '@' {
		t.Errorf("head = %q, want '@'", got)
	}
	if got := runeAt(screen, 25, 16); got != 'o' {
		t.Errorf("body = %q, want 'o'", got)
	}
	if got := runeAt(screen, 40, 11); got == 'A' {
		t.Error("snake game drew the free player glyph")
	}
	if hud := row(screen, 0); !strings.Contains(hud, "length 2") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestDebugFooter(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))
	reg := status.NewRegistry()
	reg.Ints.Get("spawn.fallback").Store(4)
	r.SetDebug(reg)

	snap := baseSnapshot()
	snap.Tick = 99
	r.Draw(&snap)
	if footer := row(screen, 21); !strings.Contains(footer, "tick 99") || !strings.Contains(footer, "fallback 4") {
		t.Errorf("footer = %q", footer)
	}
}

func TestBanner(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminal(screen, asset.NewCatalog(nil))
	snap := baseSnapshot()
	snap.Status = engine.StatusMenu

	r.SetBanner(" INSUFFICIENT CREDITS (0) ")
	r.Draw(&snap)
	if got := row(screen, 12); !strings.Contains(got, "INSUFFICIENT CREDITS") {
		t.Errorf("banner row = %q", got)
	}

	r.SetBanner("")
	r.Draw(&snap)
	if got := row(screen, 12); strings.Contains(got, "INSUFFICIENT") {
		t.Errorf("cleared banner still drawn: %q", got)
	}
}
