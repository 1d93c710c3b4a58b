// Package glayout maps window pixels to board squares and back.
package glayout

import "schack/src/base"

type Layout struct {
	Tile    int  // pixel size per square
	Margin  int  // border width in tiles
	Flipped bool // rank 1 on the top row
}

// Size is the side of the square window in pixels.
func (l Layout) Size() int {
	return (8 + 2*l.Margin) * l.Tile
}

// BoardOrigin is the top-left pixel of the first tile.
func (l Layout) BoardOrigin() (int, int) {
	return l.Margin * l.Tile, l.Margin * l.Tile
}

// PixelToSquare returns false for clicks outside the 8x8 playing area,
// margin included.
func (l Layout) PixelToSquare(px, py int) (base.Square, bool) {
	if l.Tile <= 0 || px < 0 || py < 0 {
		return base.Square{}, false
	}
	col := px/l.Tile - l.Margin
	row := py/l.Tile - l.Margin
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return base.Square{}, false
	}

	var sq base.Square
	if !l.Flipped {
		// row 0 = top of the screen = rank 8
		sq = base.Square{File: col, Rank: 7 - row}
	} else {
		sq = base.Square{File: 7 - col, Rank: row}
	}
	return sq, true
}

// SquareOrigin is the top-left pixel of sq's tile.
func (l Layout) SquareOrigin(sq base.Square) (int, int) {
	col, row := sq.File, 7-sq.Rank
	if l.Flipped {
		col, row = 7-sq.File, sq.Rank
	}
	bx, by := l.BoardOrigin()
	return bx + col*l.Tile, by + row*l.Tile
}

// TileIsDark anchors a1 to the dark color; parity alternates from there.
func TileIsDark(sq base.Square) bool {
	return (sq.File+sq.Rank)%2 == 0
}
