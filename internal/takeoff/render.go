package takeoff

import (
	"fmt"

	"github.com/vovakirdan/takeoff-arcade/internal/core"
)

// Visual characters for the cell renderer
const (
	RunwayChar    = '░'
	AltitudeChar  = '┄'
	HazardChar    = '●'
	AircraftChar  = '█'
	FuselageChar  = '▒'
	SelectedMark  = '>'
	HazardSpriteL = '['
	HazardSpriteR = ']'
)

// Screen texts
const (
	MenuTitle     = "Select Your Aircraft"
	MenuHint      = "Use UP/DOWN and ENTER to select"
	PlayHint      = "Arrow keys: Move | SPACE: Takeoff"
	SuccessTitle  = "Takeoff Success!"
	GameOverTitle = "Game Over!"
	RestartHint   = "Press ENTER to restart"
	TakeoffBanner = "TAKEOFF!"
)

// Render draws the current mode onto dst, projecting the world onto the
// screen's cell grid. Takeoff renders like Playing.
func (g *Game) Render(dst *core.Screen) {
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())
	dst.Clear()

	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst, vp)
	case ModePlaying, ModeTakeoff:
		g.renderPlaying(dst, vp)
	case ModeGameOver, ModeSuccess:
		g.renderEnd(dst, vp)
	}
}

// row projects a world y coordinate to a screen row.
func row(vp core.Viewport, y float64) int {
	_, r := vp.ToCell(core.Point{Y: y})
	return r
}

func (g *Game) renderMenu(dst *core.Screen, vp core.Viewport) {
	dst.DrawTextCentered(row(vp, 120), MenuTitle, core.ColorWhite)

	// One line per aircraft, spaced 60 world units apart. On small grids
	// the projected rows collapse, so keep at least one row between items.
	y := row(vp, 200)
	step := core.Max(row(vp, 260)-y, 1)
	for i, a := range g.cfg.Aircraft {
		line := "  " + a.Name
		color := core.ColorGray
		if i == g.selected {
			line = string(SelectedMark) + " " + a.Name
			color = core.ColorBrightBlue
		}
		dst.DrawTextCentered(y+i*step, line, color)
	}

	hintY := core.Max(row(vp, 400), y+len(g.cfg.Aircraft)*step+1)
	dst.DrawTextCentered(hintY, MenuHint, core.ColorDarkGray)
}

func (g *Game) renderPlaying(dst *core.Screen, vp core.Viewport) {
	rw := g.cfg.Runway
	runway := vp.ToCellRect(core.NewRect(rw.X, rw.Y, rw.Width, rw.Height))
	dst.DrawRect(runway, RunwayChar, core.ColorGray)
	labelY := runway.Bottom() - 1
	labelX := runway.X + (runway.W-len([]rune(rw.Label)))/2
	dst.DrawTextColored(labelX, labelY, rw.Label, core.ColorWhite)

	altY := row(vp, g.cfg.Takeoff.Altitude)
	dst.DrawHLine(0, altY, dst.Width(), AltitudeChar, core.ColorDarkGray)

	half := g.cfg.Hazards.HalfBox
	for _, h := range g.hazards {
		box := vp.ToCellRect(h.HitBox(half))
		if h.Loaded {
			drawHazardSprite(dst, box, h)
		} else {
			dst.FillEllipse(box, HazardChar, core.ColorRed)
			cx := box.X + box.W/2
			cy := box.Y + box.H/2
			dst.SetColored(cx, cy, h.Initial(), core.ColorWhite)
		}
	}

	plane := vp.ToCellRect(g.player.Rect())
	if g.player.Loaded {
		dst.DrawRect(plane, AircraftChar, core.ColorCyan)
	} else {
		dst.DrawRect(plane, FuselageChar, core.ColorBlue)
	}

	dst.DrawTextColored(0, 0, PlayHint, core.ColorWhite)
	timeText := fmt.Sprintf("Time: %ds", g.elapsed)
	dst.DrawTextColored(dst.Width()-len(timeText), 0, timeText, core.ColorWhite)
	if g.mode == ModeTakeoff {
		dst.DrawTextCentered(1, TakeoffBanner, core.ColorYellow)
	}
}

// drawHazardSprite draws a boxed label for hazards whose image is available.
func drawHazardSprite(dst *core.Screen, box core.CellRect, h Hazard) {
	label := []rune(h.Name)
	width := core.Min(len(label), core.Max(box.W-2, 1))
	cy := box.Y + box.H/2
	x := box.X + (box.W-width-2)/2
	dst.SetColored(x, cy, HazardSpriteL, core.ColorOrange)
	dst.DrawTextColored(x+1, cy, string(label[:width]), core.ColorOrange)
	dst.SetColored(x+1+width, cy, HazardSpriteR, core.ColorOrange)
}

// textLine is one centered line of an end screen.
type textLine struct {
	text  string
	color core.Color
}

func (g *Game) renderEnd(dst *core.Screen, vp core.Viewport) {
	title, color := GameOverTitle, core.ColorRed
	if g.mode == ModeSuccess {
		title, color = SuccessTitle, core.ColorGreen
	}

	lines := []textLine{{title, color}}
	if g.hit != "" {
		lines = append(lines, textLine{"Hit: " + g.hit, core.ColorOrange})
	}
	lines = append(lines,
		textLine{fmt.Sprintf("Time: %ds", g.elapsed), core.ColorWhite},
		textLine{fmt.Sprintf("Score: %d", g.score), core.ColorWhite},
		textLine{RestartHint, core.ColorDarkGray},
	)

	y := row(vp, 200)
	step := core.Max(row(vp, 260)-y, 1)

	widest := 0
	for _, l := range lines {
		widest = core.Max(widest, len([]rune(l.text)))
	}
	boxW := core.Clamp(widest+4, 1, dst.Width())
	boxH := (len(lines)-1)*step + 3
	dst.DrawBox(core.NewCellRect((dst.Width()-boxW)/2, y-1, boxW, boxH), color)

	for i, l := range lines {
		dst.DrawTextCentered(y+i*step, l.text, l.color)
	}
}
