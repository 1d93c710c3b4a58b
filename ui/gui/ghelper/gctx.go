package ghelper

import (
	"schack/src"
	"schack/src/logx"
	"schack/ui/gui/gbase"
	"schack/ui/gui/gbase/gconf"
	"schack/ui/gui/glayout"
)

// ---- GUI Context ----

// GUIGameContext is the state shared by the window and its drawer. It is
// owned by GUIProcessing and passed down explicitly.
type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Layout       glayout.Layout
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Layout: glayout.Layout{
			Tile:    c.TileSize,
			Margin:  c.MarginTiles(),
			Flipped: c.Flipped,
		},
		Theme: gbase.PaletteFromString(c.Theme),
		Logx:  l,
	}
}
