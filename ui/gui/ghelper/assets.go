package ghelper

import (
	"fmt"
	"schack/src/base"
	"schack/ui/gui/gbase/gconf"
	"schack/ui/gui/ghelper/gfont"
	"schack/ui/gui/ghelper/gimages"
	"schack/ui/gui/tools/lang"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	sprites gimages.Sprites
	fonts   *gfont.Fonts
	lang    *lang.GUILangWorker
}

// NewGUIAssetsWorker loads everything the renderer needs; any failure is
// fatal for the GUI.
func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	sprites, err := gimages.LoadImageAssets(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts(cfg.TileSize)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	l, err := lang.NewGUILangWorker(lang.LangFromString(cfg.Lang))
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{sprites: sprites, fonts: fonts, lang: l}, nil
}

func (aw *GUIAssetsWorker) Piece(p base.Piece) (*ebiten.Image, bool) {
	img, ok := aw.sprites[p]
	return img, ok
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *lang.GUILangWorker {
	return aw.lang
}
