package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual elements
const (
	GroundChar    = '▀'
	PipeChar      = '█'
	PipeCapChar   = '▓'
	BirdChar      = '●'
	BeakChar      = '▶'
	ExplosionChar = '✸'
)

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot paints a snapshot into dst. The play area is scaled to
// fill the screen except for the bottom row, which holds the ground.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 1 || h < 2 || s.Area.Empty() {
		return
	}
	vp := viewport{
		sx:   float64(w) / s.Area.W,
		sy:   float64(h-1) / s.Area.H,
		rows: h - 1,
	}
	running := s.Phase == core.PhaseRunning

	for _, o := range s.Obstacles {
		drawObstacle(dst, vp, o, s.Area.H, running)
	}

	// Ground turns red once the bird is dead
	if running {
		dst.SetPen(core.ColorYellow)
	} else {
		dst.SetPen(core.ColorRed)
	}
	dst.DrawHLine(0, h-1, w, GroundChar)

	switch s.Phase {
	case core.PhaseRunning:
		drawBird(dst, vp.cells(s.Bird.Bounds))
	case core.PhaseDying:
		drawExplosion(dst, vp.cells(s.Bird.Bounds))
	}

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score))

	if s.Phase == core.PhaseWaitingRestart {
		dst.SetPen(core.ColorDefault)
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press Space to restart", s.Score))
	}
}

// viewport maps play-area units to screen cells.
type viewport struct {
	sx, sy float64
	rows   int // Rows available to the play area
}

// cells returns the smallest cell rectangle covering r, cut to the play rows.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := core.Clamp(int(math.Floor(r.Y*v.sy)), 0, v.rows)
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*v.sy)), 0, v.rows)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawObstacle renders one obstacle with a cap on the edge facing the gap.
func drawObstacle(dst *core.Screen, vp viewport, o Obstacle, areaH float64, running bool) {
	r := o.Rect(areaH)
	if r.Empty() {
		return
	}
	c := vp.cells(r)
	if c.W <= 0 || c.H <= 0 {
		return
	}

	body, capColor := core.ColorGreen, core.ColorBrightGreen
	if !running {
		body, capColor = core.ColorGray, core.ColorGray
	}
	dst.SetPen(body)
	dst.DrawRect(c, PipeChar)

	dst.SetPen(capColor)
	capY := c.Bottom() - 1
	if o.Anchor == AnchorBottom {
		capY = c.Y
	}
	dst.DrawHLine(c.X, capY, c.W, PipeCapChar)
}

// drawBird renders the bird body with a beak in its top-right cell.
func drawBird(dst *core.Screen, c core.Rect) {
	dst.SetPen(core.ColorBrightYellow)
	dst.DrawRect(c, BirdChar)
	dst.SetPen(core.ColorOrange)
	dst.Set(c.Right()-1, c.Y, BeakChar)
}

// drawExplosion renders the collision marker in place of the bird.
func drawExplosion(dst *core.Screen, c core.Rect) {
	dst.SetPen(core.ColorBrightRed)
	dst.Set(c.X+c.W/2, c.Y+c.H/2, ExplosionChar)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
