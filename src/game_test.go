package src

import (
	"errors"
	"reflect"
	"schack/src/base"
	"schack/src/logx"
	"sort"
	"testing"
)

func newClassic(t *testing.T) *GameBuilder {
	t.Helper()
	gb := NewBuilderBoard(logx.NewNopLogx())
	gb.CreateClassic()
	return gb
}

func TestCurrentBoardStartPosition(t *testing.T) {
	gb := newClassic(t)
	want := base.Snapshot("rnbqkbnr\npppppppp\n********\n********\n********\n********\nPPPPPPPP\nRNBQKBNR")
	if got := gb.CurrentBoard(); got != want {
		t.Fatalf("start board:\n%s", got)
	}
	if !gb.IsWhiteToMove() {
		t.Fatal("white moves first")
	}
	if gb.Status() != base.Ongoing {
		t.Fatalf("status %v", gb.Status())
	}
	if gb.FEN() != base.FEN_START_GAME {
		t.Fatalf("start FEN %q", gb.FEN())
	}
}

func TestPossibleMoves(t *testing.T) {
	gb := newClassic(t)

	got, ok := gb.PossibleMoves("E2")
	sort.Strings(got)
	if !ok || !reflect.DeepEqual(got, []string{"E3", "E4"}) {
		t.Fatalf("E2: %v %v", got, ok)
	}
	got, ok = gb.PossibleMoves("g1")
	sort.Strings(got)
	if !ok || !reflect.DeepEqual(got, []string{"F3", "H3"}) {
		t.Fatalf("G1: %v %v", got, ok)
	}
	for _, sq := range []string{"E4", "A1", "E7", "Z9"} {
		if got, ok := gb.PossibleMoves(sq); ok || got != nil {
			t.Errorf("%s: expected no moves, got %v", sq, got)
		}
	}
}

func TestMoveUpdatesBoardAndTurn(t *testing.T) {
	gb := newClassic(t)
	status, err := gb.Move("E2", "E4")
	if err != nil || status != base.Ongoing {
		t.Fatalf("move: %v %v", status, err)
	}
	board := gb.CurrentBoard()
	if board.PieceAt(base.MustSquareFromAlgebraic("E4")) != base.WPawn {
		t.Fatalf("pawn not on E4:\n%s", board)
	}
	if board.PieceAt(base.MustSquareFromAlgebraic("E2")) != base.EmptyPiece {
		t.Fatalf("E2 not empty:\n%s", board)
	}
	if gb.IsWhiteToMove() {
		t.Fatal("black to move after E2E4")
	}
	if gb.CountHalfMoves() != 1 {
		t.Fatalf("half moves %d", gb.CountHalfMoves())
	}
}

func TestIllegalMove(t *testing.T) {
	gb := newClassic(t)
	status, err := gb.Move("E2", "E5")
	if !errors.Is(err, ErrIllegalMove) || status != base.InvalidGame {
		t.Fatalf("got %v %v", status, err)
	}
	if _, err := gb.Move("E9", "E4"); !errors.Is(err, base.ErrBadSquare) {
		t.Fatalf("bad square: %v", err)
	}
	if !gb.IsWhiteToMove() || gb.CountHalfMoves() != 0 {
		t.Fatal("rejected move changed the game")
	}
}

func TestCheckAndCheckmate(t *testing.T) {
	gb := newClassic(t)
	// fool's mate
	plays := [][2]string{{"F2", "F3"}, {"E7", "E5"}, {"G2", "G4"}, {"D8", "H4"}}
	var status base.GameStatus
	for _, p := range plays {
		var err error
		if status, err = gb.Move(p[0], p[1]); err != nil {
			t.Fatalf("%v: %v", p, err)
		}
	}
	if status != base.Checkmate || gb.Status() != base.Checkmate {
		t.Fatalf("status %v", status)
	}
	if _, ok := gb.PossibleMoves("A2"); ok {
		t.Fatal("no moves after checkmate")
	}
}

func TestCheck(t *testing.T) {
	gb := newClassic(t)
	plays := [][2]string{{"E2", "E4"}, {"F7", "F6"}, {"D1", "H5"}}
	var status base.GameStatus
	for _, p := range plays {
		var err error
		if status, err = gb.Move(p[0], p[1]); err != nil {
			t.Fatalf("%v: %v", p, err)
		}
	}
	if status != base.Check {
		t.Fatalf("status %v", status)
	}
}

func TestFinishedStatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		fen      string
		from, to string
		want     base.GameStatus
	}{
		{"stalemate", "7k/8/5Q1K/8/8/8/8/8 w - - 0 1", "F6", "F7", base.Stalemate},
		{"insufficient material", "k7/8/8/8/8/8/1q6/K7 w - - 0 1", "A1", "B2", base.Draw},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gb := NewBuilderBoard(logx.NewNopLogx())
			if _, err := gb.CreateFromFEN(c.fen); err != nil {
				t.Fatal(err)
			}
			status, err := gb.Move(c.from, c.to)
			if err != nil {
				t.Fatal(err)
			}
			if status != c.want || gb.Status() != c.want {
				t.Fatalf("got %v want %v", status, c.want)
			}
			if !gb.Status().Finished() {
				t.Fatal("game should be finished")
			}
		})
	}
}

func TestPromotionAutoQueen(t *testing.T) {
	gb := NewBuilderBoard(logx.NewNopLogx())
	if _, err := gb.CreateFromFEN("7k/P7/8/8/8/8/8/K7 w - - 0 1"); err != nil {
		t.Fatal(err)
	}
	got, ok := gb.PossibleMoves("A7")
	if !ok || !reflect.DeepEqual(got, []string{"A8"}) {
		t.Fatalf("promotion destinations folded: %v", got)
	}
	if _, err := gb.Move("A7", "A8"); err != nil {
		t.Fatal(err)
	}
	if p := gb.CurrentBoard().PieceAt(base.MustSquareFromAlgebraic("A8")); p != base.WQueen {
		t.Fatalf("promoted to %q", p)
	}
}

func TestCreateFromFEN(t *testing.T) {
	gb := NewBuilderBoard(logx.NewNopLogx())
	if _, err := gb.CreateFromFEN("not a fen"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := gb.CreateFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"); err != nil {
		t.Fatal(err)
	}
	if gb.IsWhiteToMove() {
		t.Fatal("black to move")
	}
}

func TestNoGame(t *testing.T) {
	gb := NewBuilderBoard(logx.NewNopLogx())
	if _, ok := gb.PossibleMoves("E2"); ok {
		t.Fatal("no game, no moves")
	}
	if _, err := gb.Move("E2", "E4"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("got %v", err)
	}
	if gb.CurrentBoard().PieceAt(base.Square{}) != base.EmptyPiece {
		t.Fatal("empty board expected")
	}
}
