package ghelper

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderRoundedRect draws an anti-aliased rounded rectangle with gg and
// uploads it once; callers keep the result across frames.
func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	if strokeW > 0 {
		dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
		dc.SetLineWidth(strokeW)
		dc.Stroke()
	}
	return ebiten.NewImageFromImage(dc.Image())
}

var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// FillRect fills a rectangle; c is straight (non-premultiplied) alpha.
func FillRect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	if screen == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.NRGBA(c))
	screen.DrawImage(pixel(), op)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.RGBA) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}

	maxTh := math.Min(w, h) / 2.0
	if thickness > maxTh {
		thickness = maxTh
	}

	FillRect(screen, x, y, w, thickness, col)                                   // up
	FillRect(screen, x, y+h-thickness, w, thickness, col)                       // down
	FillRect(screen, x, y+thickness, thickness, h-thickness*2, col)             // left
	FillRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col) // right
}
