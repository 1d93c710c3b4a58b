package gdraw

import (
	"fmt"
	"schack/src/base"
	"schack/ui/gui/gbase"
	"schack/ui/gui/ghelper"
	"schack/ui/gui/ghelper/gclipboard"
	"schack/ui/gui/ghelper/gdialog"
	"schack/ui/gui/glayout"
	"schack/ui/gui/gselect"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPlayDrawer handles input and draws the board every frame.
type GUIPlayDrawer struct {
	selector *gselect.Selector

	// nil in the compact variant, there is no margin to put it in
	newGame *ghelper.Button

	// status box is re-rendered only when the line changes
	statusLine string
	statusImg  *ebiten.Image

	lastTick time.Time

	// file dialog runs off the game loop
	opener *gdialog.Opener
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		selector: gselect.NewSelector(ctx.Builder, ctx.Config.Mode(), ctx.Logx),
		lastTick: time.Now(),
		opener:   gdialog.NewOpener(),
	}
	if ctx.Layout.Margin > 0 {
		tile := ctx.Layout.Tile
		w, h := tile*5/2, tile*3/5
		x := (ctx.Layout.Size() - w) / 2
		y := ctx.Layout.Size() - tile + (tile-h)/2
		pd.newGame = ghelper.NewButton(ctx.AssetsWorker.Lang().T("button.newgame"), x, y, w, h, ctx.Theme)
	}
	return pd
}

func (pd *GUIPlayDrawer) startNewGame(ctx *ghelper.GUIGameContext) {
	ctx.Logx.Info("new game")
	ctx.Builder.CreateClassic()
	pd.selector.Reset()
}

func (pd *GUIPlayDrawer) loadFEN(ctx *ghelper.GUIGameContext, fen string) {
	if _, err := ctx.Builder.CreateFromFEN(fen); err != nil {
		ctx.Logx.Warnf("position not loaded: %v", err)
		return
	}
	ctx.Logx.Infof("position loaded: %s", fen)
	pd.selector.Reset()
}

func (pd *GUIPlayDrawer) openFile(ctx *ghelper.GUIGameContext) {
	if !pd.opener.Start(ctx.AssetsWorker.Lang().T("dialog.open")) {
		ctx.Logx.Debug("file dialog already open")
	}
}

// handleKeys covers the keyboard shortcuts besides Esc.
func (pd *GUIPlayDrawer) handleKeys(ctx *ghelper.GUIGameContext) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		pd.startNewGame(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ctx.Layout.Flipped = !ctx.Layout.Flipped
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := gclipboard.CopyFEN(ctx.Builder.FEN()); err != nil {
			ctx.Logx.Warnf("copy FEN: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		fen, err := gclipboard.PasteFEN()
		if err != nil {
			ctx.Logx.Warnf("paste FEN: %v", err)
			return
		}
		pd.loadFEN(ctx, fen)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		pd.openFile(ctx)
	}
}

// Update runs once per tick. A returned error ends the ebiten loop.
func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) error {
	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	if err := ctx.Builder.CurrentBoard().Validate(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return gbase.ErrExit
	}
	if r, ok := pd.opener.Poll(); ok {
		if r.Err != nil {
			ctx.Logx.Warnf("open position: %v", r.Err)
		} else {
			pd.loadFEN(ctx, r.FEN)
		}
	}
	pd.handleKeys(ctx)

	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	p := gselect.Pointer{X: mx, Y: my, Released: justReleased}
	if pd.newGame != nil {
		p.Taken = pd.newGame.HandleInput(mx, my, justPressed, justReleased)
		pd.newGame.UpdateAnim(dt)
		if p.Taken {
			pd.startNewGame(ctx)
		}
	}
	return pd.selector.HandlePointer(ctx.Layout, p)
}

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	l := ctx.Layout
	tile := float64(l.Tile)

	// tiles
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := base.Square{File: file, Rank: rank}
			x, y := l.SquareOrigin(sq)
			ghelper.FillRect(screen, float64(x), float64(y), tile, tile, ctx.Theme.TileColor(glayout.TileIsDark(sq)))
		}
	}

	// candidate moves
	for _, sq := range pd.selector.Candidates() {
		x, y := l.SquareOrigin(sq)
		ghelper.FillRect(screen, float64(x), float64(y), tile, tile, ctx.Theme.Highlight)
	}
	if sq, ok := pd.selector.Selected(); ok {
		x, y := l.SquareOrigin(sq)
		ghelper.DrawRectStroke(screen, float64(x)+2, float64(y)+2, tile-4, tile-4, 3, ctx.Theme.Select)
	}

	// pieces
	filter := ebiten.FilterLinear
	if ctx.Config.PixelArt {
		filter = ebiten.FilterNearest
	}
	shadow, hasShadow := ctx.AssetsWorker.Piece(base.ShadowPiece)
	ctx.Builder.CurrentBoard().Each(func(sq base.Square, p base.Piece) {
		if p == base.EmptyPiece {
			return
		}
		img, ok := ctx.AssetsWorker.Piece(p)
		if !ok {
			return
		}
		x, y := l.SquareOrigin(sq)
		if ctx.Config.Shadow && hasShadow {
			drawSprite(screen, shadow, x, y, l.Tile, filter)
		}
		drawSprite(screen, img, x, y, l.Tile, filter)
	})

	pd.drawStatus(ctx, screen)

	if pd.newGame != nil {
		pd.newGame.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Button, ctx.Theme)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// drawSprite scales img to the tile width and stands it on the tile's
// bottom edge, so sprites taller than wide overlap the tile above.
func drawSprite(screen, img *ebiten.Image, x, y, tile int, filter ebiten.Filter) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 {
		return
	}
	scale := float64(tile) / float64(iw)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y+tile)-float64(ih)*scale)
	op.Filter = filter
	screen.DrawImage(img, op)
}

func (pd *GUIPlayDrawer) drawStatus(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	face := ctx.AssetsWorker.Fonts().Status
	line := ctx.AssetsWorker.Lang().StatusLine(ctx.Builder.Status(), ctx.Builder.IsWhiteToMove())
	bounds := text.BoundString(face, line)
	boxW := bounds.Dx() + 2*gbase.TextBoxPadX
	boxH := bounds.Dy() + 2*gbase.TextBoxPadX

	if line != pd.statusLine || pd.statusImg == nil {
		pd.statusLine = line
		pd.statusImg = ghelper.RenderRoundedRect(boxW, boxH, gbase.TextBoxRadius, ctx.Theme.TextBox, ctx.Theme.ButtonStroke, 1)
	}

	l := ctx.Layout
	boxX := (l.Size() - boxW) / 2
	boxY := 4
	if l.Margin > 0 {
		boxY = (l.Tile - boxH) / 2
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(boxX), float64(boxY))
	screen.DrawImage(pd.statusImg, op)

	// BoundString is relative to the dot, so shift by its min corner
	tx := boxX + gbase.TextBoxPadX - bounds.Min.X
	ty := boxY + gbase.TextBoxPadX - bounds.Min.Y
	text.Draw(screen, line, face, tx, ty, ctx.Theme.Text)
}
