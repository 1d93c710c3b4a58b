package gui

import (
	"path/filepath"
	"schack/src"
	"schack/src/logx"
	"schack/ui/gui/gbase/gconf"
	"schack/ui/gui/gdraw"
	"schack/ui/gui/ghelper"
	"schack/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUIProcessing is the ebiten.Game of the application.
type GUIProcessing struct {
	play *gdraw.GUIPlayDrawer
	ctx  *ghelper.GUIGameContext
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(b, assets, cfg, logx)
	return &GUIProcessing{
		play: gdraw.NewGUIPlayDrawer(ctx),
		ctx:  ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	icon, err := gimages.LoadIcon(filepath.Join(gp.ctx.Config.AssetsDir, gp.ctx.Config.Icon))
	if err != nil {
		return err
	}
	size := gp.ctx.Layout.Size()
	ebiten.SetWindowIcon(icon)
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(gp.ctx.Config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	gp.ctx.Logx.Infof("window %dx%d, click mode %v", size, size, gp.ctx.Config.Mode())
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.play.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.play.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	size := gp.ctx.Layout.Size()
	return size, size
}
