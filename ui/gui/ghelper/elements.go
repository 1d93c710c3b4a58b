package ghelper

import (
	"math"
	"schack/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	Hover   bool // mouse over
	Pressed bool // press started inside and not released yet

	Scale       float64 // current scale (1.0 default)
	TargetScale float64
	AnimSpeed   float64 // approach rate per second
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image:       RenderRoundedRect(w, h, gbase.TextBoxRadius, theme.ButtonFill, theme.ButtonStroke, 2),
		Scale:       1.0,
		TargetScale: 1.0,
		AnimSpeed:   10.0,
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is called every Update; it returns true when a click that
// started on the button is released on it.
func (b *Button) HandleInput(px, py int, justPressed, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justPressed && inside {
		b.Pressed = true
		b.TargetScale = 0.96
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetScale = 1.0
		if clicked {
			b.TargetScale = 1.03
		}
		return clicked
	}
	if !b.Pressed {
		b.TargetScale = 1.0
		if inside {
			b.TargetScale = 1.02
		}
	}
	return false
}

// UpdateAnim moves Scale toward TargetScale; dt in seconds.
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t

	// click bounce settles back
	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y + b.H/2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, theme.ButtonText)
}
