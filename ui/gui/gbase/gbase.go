package gbase

import (
	"errors"
	"image/color"
	"schack/src/base"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	DefaultTileSize int = 80
	MinTileSize     int = 32
	MaxTileSize     int = 160
	TextBoxPadX     int = 8
	TextBoxRadius   int = 10
)

// ---- Sprites ----

// SpriteFiles is the fixed piece-character -> file table of the resource dir.
var SpriteFiles = map[base.Piece]string{
	base.BKing:       "black_king.png",
	base.BQueen:      "black_queen.png",
	base.BRook:       "black_rook.png",
	base.BPawn:       "black_pawn.png",
	base.BBishop:     "black_bishop.png",
	base.BKnight:     "black_knight.png",
	base.WKing:       "white_king.png",
	base.WQueen:      "white_queen.png",
	base.WRook:       "white_rook.png",
	base.WPawn:       "white_pawn.png",
	base.WBishop:     "white_bishop.png",
	base.WKnight:     "white_knight.png",
	base.ShadowPiece: "shadow.png",
}

const IconFile = "icon.png"

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	Light        color.RGBA
	Dark         color.RGBA
	Highlight    color.RGBA
	Select       color.RGBA
	Text         color.RGBA
	TextBox      color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
}

func (p Palette) String() string {
	switch p {
	case ClassicPalette:
		return "classic"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "classic":
		return ClassicPalette
	case "dark":
		return DarkPalette
	default:
	}
	return ClassicPalette
}

// TileColor picks the fill for a tile; dark is true for a1 and its diagonals.
func (p Palette) TileColor(dark bool) color.RGBA {
	if dark {
		return p.Dark
	}
	return p.Light
}

var ClassicPalette = Palette{
	Bg:           color.RGBA{69, 51, 61, 0xff},
	Light:        color.RGBA{228, 196, 108, 0xff},
	Dark:         color.RGBA{188, 140, 76, 0xff},
	Highlight:    color.RGBA{230, 200, 50, 0x80},
	Select:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Text:         color.RGBA{0x44, 0x33, 0x3d, 0xff},
	TextBox:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xf2, 0xd9, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	Light:        color.RGBA{0x8a, 0x8f, 0x98, 0xff},
	Dark:         color.RGBA{0x4a, 0x50, 0x5a, 0xff},
	Highlight:    color.RGBA{0x2a, 0xa1, 0xd1, 0x80},
	Select:       color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Text:         color.RGBA{0xee, 0xee, 0xee, 0xff},
	TextBox:      color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
}
