package pixel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/takeoff-arcade/internal/core"
	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

var (
	colorSky      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText     = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorSelected = color.RGBA{0x00, 0x77, 0xff, 0xff}
	colorHint     = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colorRunway   = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	colorLabel    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorHazard   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorInitial  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorFuselage = color.RGBA{0x44, 0x66, 0x99, 0xff}
	colorAltitude = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	colorSuccess  = color.RGBA{0x00, 0xaa, 0x00, 0xff}
	colorFailure  = color.RGBA{0xcc, 0x00, 0x00, 0xff}
)

// drawText draws str with its baseline at y, like a canvas fillText.
func (h *Host) drawText(dst *ebiten.Image, str string, size, x, y float64, clr color.Color) {
	face := h.fonts.Face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// drawTextCentered draws str centered on x with its baseline at y.
func (h *Host) drawTextCentered(dst *ebiten.Image, str string, size, x, y float64, clr color.Color) {
	face := h.fonts.Face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, str, face, op)
}

// drawSprite draws img stretched over r.
func drawSprite(dst, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (h *Host) drawMenu(dst *ebiten.Image) {
	h.drawText(dst, takeoff.MenuTitle, sizeTitle, 240, 120, colorText)
	for i, a := range h.cfg.Aircraft {
		clr := colorText
		if i == h.game.Selected() {
			clr = colorSelected
		}
		h.drawText(dst, a.Name, sizeTitle, 320, 200+float64(i)*60, clr)
	}
	h.drawText(dst, takeoff.MenuHint, sizeSmall, 250, 400, colorHint)
}

func (h *Host) drawPlaying(dst *ebiten.Image) {
	rw := h.cfg.Runway
	vector.DrawFilledRect(dst, float32(rw.X), float32(rw.Y), float32(rw.Width), float32(rw.Height), colorRunway, false)
	h.drawTextCentered(dst, rw.Label, sizeLabel, rw.X+rw.Width/2, rw.Y+rw.Height+20, colorLabel)

	alt := float32(h.cfg.Takeoff.Altitude)
	vector.StrokeLine(dst, 0, alt, float32(h.cfg.World.Width), alt, 1, colorAltitude, false)

	half := h.cfg.Hazards.HalfBox
	for _, hz := range h.game.Hazards() {
		if img := h.sprites.Image(hz.Image); img != nil {
			drawSprite(dst, img, hz.HitBox(half))
			continue
		}
		vector.DrawFilledCircle(dst, float32(hz.Pos.X), float32(hz.Pos.Y), float32(half), colorHazard, true)
		h.drawTextCentered(dst, string(hz.Initial()), sizeLabel, hz.Pos.X, hz.Pos.Y+8, colorInitial)
	}

	p := h.game.Player()
	if img := h.sprites.Image(p.Aircraft.Image); img != nil {
		drawSprite(dst, img, p.Rect())
	} else {
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), colorFuselage, false)
	}

	h.drawText(dst, takeoff.PlayHint, sizeSmall, 10, 30, colorHint)
	h.drawText(dst, fmt.Sprintf("Time: %ds", h.game.Elapsed()), sizeSmall, 680, 40, colorSelected)
	if h.game.Mode() == takeoff.ModeTakeoff {
		h.drawTextCentered(dst, takeoff.TakeoffBanner, sizeLabel, h.cfg.World.Width/2, 80, colorSelected)
	}
}

func (h *Host) drawEnd(dst *ebiten.Image) {
	title, clr := takeoff.GameOverTitle, colorFailure
	if h.game.Mode() == takeoff.ModeSuccess {
		title, clr = takeoff.SuccessTitle, colorSuccess
	}
	h.drawText(dst, title, sizeEndTitle, 220, 250, clr)
	if hit := h.game.HitHazard(); hit != "" {
		h.drawText(dst, "Hit: "+hit, sizeSmall, 320, 285, colorFailure)
	}
	h.drawText(dst, fmt.Sprintf("Time: %ds", h.game.Elapsed()), sizeEndBody, 320, 320, colorText)
	h.drawText(dst, fmt.Sprintf("Score: %d", h.game.Score()), sizeEndBody, 320, 370, colorText)
	h.drawText(dst, takeoff.RestartHint, sizeSmall, 300, 450, colorText)
}
