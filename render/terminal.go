// Package render draws session snapshots onto a tcell screen
// It reads only the snapshot, never the live world
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/asset"
	"github.com/lixenwraith/arcade/component"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/maze"
	"github.com/lixenwraith/arcade/status"
	"github.com/lixenwraith/arcade/vmath"
)

// AssetProvider resolves sprite keys; unknown keys must still return a sprite
type AssetProvider interface {
	Sprite(key string) asset.Sprite
}

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbHud        = tcell.NewRGBColor(255, 255, 255)
	RgbHudDim     = tcell.NewRGBColor(140, 140, 160)
	RgbHealthOK   = tcell.NewRGBColor(120, 220, 120)
	RgbHealthLow  = tcell.NewRGBColor(255, 80, 80)
	RgbOverlay    = tcell.NewRGBColor(255, 209, 102)
	RgbOverlayBg  = tcell.NewRGBColor(0, 0, 0)
)

// Rows reserved above and below the playfield
const (
	hudRows    = 1
	footerRows = 1
)

var overlays = map[engine.Status]string{
	engine.StatusMenu:          " PRESS ENTER TO START ",
	engine.StatusPaused:        " PAUSED ",
	engine.StatusGameOver:      " GAME OVER  r restart  q quit ",
	engine.StatusLevelComplete: " LEVEL COMPLETE  r restart  q quit ",
	engine.StatusTimeUp:        " TIME UP  r restart  q quit ",
}

// Terminal renders one snapshot per frame
type Terminal struct {
	screen tcell.Screen
	assets AssetProvider
	stats  *status.Registry
	bg     tcell.Style
	banner string

	// Per-frame viewport mapping
	top, cols, rows int
	sx, sy          float64
}

func NewTerminal(screen tcell.Screen, assets AssetProvider) *Terminal {
	return &Terminal{
		screen: screen,
		assets: assets,
		bg:     tcell.StyleDefault.Background(RgbBackground),
	}
}

// SetDebug shows registry counters on the footer; nil hides them
func (r *Terminal) SetDebug(stats *status.Registry) {
	r.stats = stats
}

// SetBanner shows a host message under the overlay row until cleared with ""
func (r *Terminal) SetBanner(text string) {
	r.banner = text
}

// Draw renders snap and shows the frame
func (r *Terminal) Draw(snap *engine.Snapshot) {
	w, h := r.screen.Size()
	r.screen.Fill(' ', r.bg)

	r.top = hudRows
	r.cols = w
	r.rows = h - hudRows - footerRows
	if r.rows > 0 && snap.Width > 0 && snap.Height > 0 {
		r.sx = float64(r.cols) / snap.Width
		r.sy = float64(r.rows) / snap.Height
		r.drawField(snap)
	}

	r.drawHud(snap, w)
	if h > 1 {
		r.drawFooter(snap, h-1)
	}
	if text, ok := overlays[snap.Status]; ok {
		r.drawCentered(h/2, text, tcell.StyleDefault.Foreground(RgbOverlay).Background(RgbOverlayBg).Bold(true))
	}
	if r.banner != "" {
		r.drawCentered(h/2+1, r.banner, tcell.StyleDefault.Foreground(RgbOverlayBg).Background(RgbOverlay))
	}
	r.screen.Show()
}

func (r *Terminal) drawField(snap *engine.Snapshot) {
	if snap.Grid != nil && snap.Topology == engine.TopologyMaze.String() {
		r.drawWalls(snap.Grid)
	}
	for i := range snap.DropZones {
		r.fillBox(snap.DropZones[i].Box(), r.assets.Sprite(asset.KeyDropZone))
	}
	for i := range snap.Decorations {
		r.point(snap.Decorations[i].Pos, r.assets.Sprite(asset.KeyDecoration))
	}
	for i := range snap.Collectibles {
		c := &snap.Collectibles[i]
		if c.Available() {
			r.point(c.Pos, r.assets.Sprite(asset.CollectibleKey(c)))
		}
	}
	for i := range snap.Obstacles {
		if o := &snap.Obstacles[i]; !o.Dead {
			r.fillBox(o.Box(), r.assets.Sprite(asset.KeyObstacle))
		}
	}
	for i := range snap.Hostiles {
		if h := &snap.Hostiles[i]; !h.Dead {
			r.fillBox(h.Box(), r.assets.Sprite(asset.HostileKey(h.Kind)))
		}
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		key := asset.KeyBulletPlayer
		if b.Owner == component.SideHostile {
			key = asset.KeyBulletHostile
		}
		r.point(b.Pos, r.assets.Sprite(key))
	}
	for i := range snap.Particles {
		p := &snap.Particles[i]
		r.point(p.Pos, tinted(r.assets.Sprite(asset.KeyParticle), p.Color))
	}

	if snap.Snake != nil && snap.Grid != nil {
		for i, c := range snap.Snake.Body {
			key := asset.KeySnakeBody
			if i == 0 {
				key = asset.KeySnakeHead
			}
			r.point(snap.Grid.CellCenter(maze.Point{X: c.X, Y: c.Y}), r.assets.Sprite(key))
		}
		return
	}

	key := asset.KeyPlayer
	if p := snap.Player; p.MaxHealth > 0 && p.Health*3 < p.MaxHealth {
		key = asset.KeyPlayerHurt
	}
	if snap.Player.Alive() {
		r.point(snap.Player.Pos, r.assets.Sprite(key))
	}
}

// drawWalls samples the grid at every screen cell centre
func (r *Terminal) drawWalls(g *maze.Grid) {
	style := r.style(r.assets.Sprite(asset.KeyWall))
	glyph := r.assets.Sprite(asset.KeyWall).Glyph
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			p := g.CellAt(vmath.V((float64(x)+0.5)/r.sx, (float64(y)+0.5)/r.sy))
			if g.IsWall(p.X, p.Y) {
				r.screen.SetContent(x, y+r.top, glyph, nil, style)
			}
		}
	}
}

func (r *Terminal) style(s asset.Sprite) tcell.Style {
	return r.bg.Foreground(s.Color)
}

// point draws s at the screen cell containing world position p
func (r *Terminal) point(p vmath.Vec2, s asset.Sprite) {
	x, y := int(math.Floor(p.X*r.sx)), int(math.Floor(p.Y*r.sy))
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return
	}
	r.screen.SetContent(x, y+r.top, s.Glyph, nil, r.style(s))
}

// fillBox draws s over every screen cell the box covers, at least one
func (r *Terminal) fillBox(b vmath.Box, s asset.Sprite) {
	x0 := int(math.Floor(b.X * r.sx))
	y0 := int(math.Floor(b.Y * r.sy))
	x1 := max(x0, int(math.Ceil((b.X+b.W)*r.sx))-1)
	y1 := max(y0, int(math.Ceil((b.Y+b.H)*r.sy))-1)
	style := r.style(s)
	for y := max(y0, 0); y <= min(y1, r.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.cols-1); x++ {
			r.screen.SetContent(x, y+r.top, s.Glyph, nil, style)
		}
	}
}

func (r *Terminal) drawHud(snap *engine.Snapshot, width int) {
	style := r.bg.Foreground(RgbHud).Bold(true)
	x := r.drawText(0, 0, fmt.Sprintf(" %s  score %d  lives %d ", snap.Game, snap.Score, snap.Player.Lives), style)

	hp := r.bg.Foreground(RgbHealthOK)
	if snap.Player.Health*3 < snap.Player.MaxHealth {
		hp = r.bg.Foreground(RgbHealthLow)
	}
	x = r.drawText(x, 0, fmt.Sprintf(" hp %d/%d ", snap.Player.Health, snap.Player.MaxHealth), hp)

	dim := r.bg.Foreground(RgbHudDim)
	x = r.drawText(x, 0, hudDetail(snap), dim)
	if snap.Remaining > 0 {
		left := snap.Remaining.Round(time.Second)
		text := fmt.Sprintf(" %d:%02d ", int(left.Minutes()), int(left.Seconds())%60)
		r.drawText(max(x, width-len(text)), 0, text, style)
	}
}

// hudDetail is the game-specific part of the status line
func hudDetail(snap *engine.Snapshot) string {
	switch {
	case snap.Snake != nil:
		return fmt.Sprintf(" length %d  wave %d  held %d/%d ",
			len(snap.Snake.Body), snap.Resources.Wave, len(snap.Resources.Held), len(snap.Resources.Types))
	case snap.TotalCollectibles > 0:
		return fmt.Sprintf(" carrying %d/%d  delivered %d/%d ",
			snap.Player.Cargo.TotalWeight, snap.Player.Cargo.MaxCapacity, snap.DeliveredCount, snap.TotalCollectibles)
	default:
		s := fmt.Sprintf(" wave %d  kills %d ", snap.Wave, snap.Kills)
		if snap.Boss.Active {
			s += fmt.Sprintf(" BOSS %d ", snap.Boss.Remaining)
		}
		for _, p := range snap.PowerUps {
			s += " " + string(p) + " "
		}
		return s
	}
}

func (r *Terminal) drawFooter(snap *engine.Snapshot, y int) {
	style := r.bg.Foreground(RgbHudDim)
	text := " arrows move  space fire  p pause  r restart  q quit "
	if r.stats != nil {
		text = fmt.Sprintf(" tick %d  hostiles %d  particles %d  fallback %d ",
			snap.Tick, snap.LiveHostiles(), len(snap.Particles), r.stats.Ints.Get("spawn.fallback").Load())
	}
	r.drawText(0, y, text, style)
}

func (r *Terminal) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max(0, (w-len([]rune(text)))/2), y, text, style)
}

// drawText writes single-width runes and returns the column after the text
func (r *Terminal) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func tinted(s asset.Sprite, hex string) asset.Sprite {
	if hex == "" {
		return s
	}
	if c := tcell.GetColor(hex); c != tcell.ColorDefault {
		s.Color = c
	}
	return s
}
