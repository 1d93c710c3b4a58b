package base

import (
	"errors"
	"fmt"
	"strings"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Piece is the character the rules engine uses for a board cell.
type Piece byte

const (
	WKing      Piece = 'K'
	WQueen     Piece = 'Q'
	WRook      Piece = 'R'
	WBishop    Piece = 'B'
	WKnight    Piece = 'N'
	WPawn      Piece = 'P'
	BKing      Piece = 'k'
	BQueen     Piece = 'q'
	BRook      Piece = 'r'
	BBishop    Piece = 'b'
	BKnight    Piece = 'n'
	BPawn      Piece = 'p'
	EmptyPiece Piece = '*'
	// sprite drawn under every piece, never present on a board
	ShadowPiece Piece = 's'
)

// AllPieces lists every character a board snapshot may contain besides EmptyPiece.
var AllPieces = []Piece{
	WKing, WQueen, WRook, WBishop, WKnight, WPawn,
	BKing, BQueen, BRook, BBishop, BKnight, BPawn,
}

func PieceIsWhite(p Piece) bool {
	return p >= 'A' && p <= 'Z'
}

func PieceIsBlack(p Piece) bool {
	return p >= 'a' && p <= 'z' && p != ShadowPiece
}

func IsKnownPiece(p Piece) bool {
	for _, k := range AllPieces {
		if k == p {
			return true
		}
	}
	return false
}

type GameStatus uint8

const (
	Ongoing     GameStatus = 0
	Check       GameStatus = 10
	Checkmate   GameStatus = 11
	Stalemate   GameStatus = 12
	Draw        GameStatus = 13
	InvalidGame GameStatus = 88
)

func (gs GameStatus) String() string {
	switch gs {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "invalid"
	}
}

// Finished reports whether no more moves can be played.
func (gs GameStatus) Finished() bool {
	return gs == Checkmate || gs == Stalemate || gs == Draw
}

// ---- Squares ----

var ErrBadSquare = errors.New("bad algebraic square")

// Square is a zero-based (file, rank) pair; a1 is {0, 0}.
type Square struct {
	File int
	Rank int
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

// Algebraic returns the engine notation of s, e.g. "E4".
func (s Square) Algebraic() string {
	if !s.Valid() {
		return ""
	}
	return string([]byte{byte('A' + s.File), byte('1' + s.Rank)})
}

func (s Square) String() string {
	return s.Algebraic()
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'A' ~ 'H' (or 'a' ~ 'h') to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, pos)
	}
	f := pos[0]
	if f >= 'a' && f <= 'h' {
		f -= 'a' - 'A'
	}
	if f < 'A' || f > 'H' || pos[1] < '1' || pos[1] > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, pos)
	}
	return Square{File: int(f - 'A'), Rank: int(pos[1] - '1')}, nil
}

// MustSquareFromAlgebraic panics on malformed input. Only for strings the caller owns.
func MustSquareFromAlgebraic(pos string) Square {
	sq, err := SquareFromAlgebraic(pos)
	if err != nil {
		panic(err)
	}
	return sq
}

// ---- Board snapshot ----

// Snapshot is the engine board: 8 rows of 8 cells, rank 8 first, rows
// separated by '\n'.
type Snapshot string

func (s Snapshot) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return EmptyPiece
	}
	idx := (7-sq.Rank)*9 + sq.File
	if idx >= len(s) {
		return EmptyPiece
	}
	return Piece(s[idx])
}

// Each calls fn for every cell, a8 first.
func (s Snapshot) Each(fn func(sq Square, p Piece)) {
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := Square{File: file, Rank: rank}
			fn(sq, s.PieceAt(sq))
		}
	}
}

// Validate reports the first cell holding a character outside AllPieces.
func (s Snapshot) Validate() error {
	var bad error
	s.Each(func(sq Square, p Piece) {
		if bad == nil && p != EmptyPiece && !IsKnownPiece(p) {
			bad = fmt.Errorf("unknown piece %q on %s", p, sq)
		}
	})
	return bad
}

// BuildSnapshot turns a piece lookup into a Snapshot.
func BuildSnapshot(at func(sq Square) Piece) Snapshot {
	var b strings.Builder
	b.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			b.WriteByte(byte(at(Square{File: file, Rank: rank})))
		}
		if rank > 0 {
			b.WriteByte('\n')
		}
	}
	return Snapshot(b.String())
}
