package cli

import (
	"fmt"
	"io"
	"schack/src/base"
	"schack/ui/gui/glayout"
	"strings"
)

// ANSI-code
const (
	reset    = "\033[0m"
	lightBg  = "\033[47m"
	darkBg   = "\033[100m"
	markBg   = "\033[43m"
	selectBg = "\033[46m"
	whiteF   = "\033[97m"
	blackF   = "\033[30m"
)

// Piece -> unicode glyph
func pieceGlyph(p base.Piece) string {
	switch p {
	case base.WKing:
		return "♔"
	case base.WQueen:
		return "♕"
	case base.WRook:
		return "♖"
	case base.WBishop:
		return "♗"
	case base.WKnight:
		return "♘"
	case base.WPawn:
		return "♙"
	case base.BKing:
		return "♚"
	case base.BQueen:
		return "♛"
	case base.BRook:
		return "♜"
	case base.BBishop:
		return "♝"
	case base.BKnight:
		return "♞"
	case base.BPawn:
		return "♟"
	default:
		return " "
	}
}

// BoardView is what one board print needs besides the snapshot.
type BoardView struct {
	Selected   *base.Square
	Candidates []base.Square
	Color      bool
}

func (v BoardView) isCandidate(sq base.Square) bool {
	for _, c := range v.Candidates {
		if c == sq {
			return true
		}
	}
	return false
}

// PrintBoard writes the board rank 8 first. Without color, candidates are
// marked with '+' and the selected square with brackets.
func PrintBoard(w io.Writer, board base.Snapshot, v BoardView) {
	var b strings.Builder
	b.WriteString("\n   a  b  c  d  e  f  g  h\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := base.Square{File: file, Rank: rank}
			p := board.PieceAt(sq)
			selected := v.Selected != nil && *v.Selected == sq
			if v.Color {
				writeColorCell(&b, sq, p, selected, v.isCandidate(sq))
			} else {
				writePlainCell(&b, p, selected, v.isCandidate(sq))
			}
		}
		fmt.Fprintf(&b, " %d\n", rank+1)
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	fmt.Fprint(w, b.String())
}

func writeColorCell(b *strings.Builder, sq base.Square, p base.Piece, selected, candidate bool) {
	bg := lightBg
	if glayout.TileIsDark(sq) {
		bg = darkBg
	}
	switch {
	case selected:
		bg = selectBg
	case candidate:
		bg = markBg
	}
	fg := blackF
	if base.PieceIsWhite(p) {
		fg = whiteF
	}
	fmt.Fprintf(b, "%s%s %s %s", bg, fg, pieceGlyph(p), reset)
}

func writePlainCell(b *strings.Builder, p base.Piece, selected, candidate bool) {
	cell := "."
	if p != base.EmptyPiece {
		cell = string(rune(p))
	} else if candidate {
		cell = "+"
	}
	switch {
	case selected:
		fmt.Fprintf(b, "[%s]", cell)
	case candidate && p != base.EmptyPiece:
		fmt.Fprintf(b, "+%s ", cell)
	default:
		fmt.Fprintf(b, " %s ", cell)
	}
}
