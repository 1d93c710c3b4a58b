package src

import (
	"errors"
	"fmt"
	"schack/src/base"
	"schack/src/logx"
	"strings"

	"github.com/corentings/chess/v2"
)

var ErrIllegalMove = errors.New("illegal move")

// GameBuilder owns the single rules-engine game of the process.
// At first use Create* methods.
type GameBuilder struct {
	game   *chess.Game
	status base.GameStatus
	logger logx.Logger
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	return &GameBuilder{game: nil, status: base.InvalidGame, logger: logger}
}

func (gb *GameBuilder) CreateFromFEN(fen string) (base.GameStatus, error) {
	gb.logger.Debugf("create game by FEN: %v", fen)
	opt, err := chess.FEN(fen)
	if err != nil {
		return base.InvalidGame, fmt.Errorf("error parse FEN: %w", err)
	}
	gb.game = chess.NewGame(opt)
	gb.status = gb.statusOf()
	return gb.status, nil
}

func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debug("create classic game")
	if _, err := gb.CreateFromFEN(base.FEN_START_GAME); err != nil {
		gb.logger.Errorf("start position: %v", err)
		gb.game = chess.NewGame()
		gb.status = base.Ongoing
	}
}

func (gb *GameBuilder) Status() base.GameStatus {
	return gb.status
}

func (gb *GameBuilder) IsWhiteToMove() bool {
	if gb.game == nil {
		return true
	}
	return gb.game.Position().Turn() == chess.White
}

func (gb *GameBuilder) CurrentBoard() base.Snapshot {
	if gb.game == nil {
		return base.BuildSnapshot(func(base.Square) base.Piece { return base.EmptyPiece })
	}
	board := gb.game.Position().Board()
	return base.BuildSnapshot(func(sq base.Square) base.Piece {
		return pieceOf(board.Piece(toEngineSquare(sq)))
	})
}

// PossibleMoves returns the legal destinations of the piece on sq in engine
// order. Promotion choices to the same square are reported once.
func (gb *GameBuilder) PossibleMoves(sq string) ([]string, bool) {
	if gb.game == nil || gb.status.Finished() {
		return nil, false
	}
	from, err := base.SquareFromAlgebraic(sq)
	if err != nil {
		gb.logger.Warnf("possible moves for bad square %q", sq)
		return nil, false
	}
	s1 := toEngineSquare(from)
	var dests []string
	seen := make(map[chess.Square]bool)
	for _, mv := range gb.game.ValidMoves() {
		if mv.S1() != s1 || seen[mv.S2()] {
			continue
		}
		seen[mv.S2()] = true
		dests = append(dests, fromEngineSquare(mv.S2()).Algebraic())
	}
	if len(dests) == 0 {
		return nil, false
	}
	return dests, true
}

// Move plays from -> to, promoting to a queen when a pawn reaches the last rank.
func (gb *GameBuilder) Move(from, to string) (base.GameStatus, error) {
	gb.logger.Infof("move from %s to %s", from, to)
	if gb.game == nil {
		return base.InvalidGame, fmt.Errorf("%w: no game", ErrIllegalMove)
	}
	f, err := base.SquareFromAlgebraic(from)
	if err != nil {
		return base.InvalidGame, err
	}
	t, err := base.SquareFromAlgebraic(to)
	if err != nil {
		return base.InvalidGame, err
	}
	s1, s2 := toEngineSquare(f), toEngineSquare(t)
	for _, mv := range gb.game.ValidMoves() {
		if mv.S1() != s1 || mv.S2() != s2 {
			continue
		}
		if p := mv.Promo(); p != chess.NoPieceType && p != chess.Queen {
			continue
		}
		m := mv
		if err := gb.game.Move(&m, nil); err != nil {
			return base.InvalidGame, fmt.Errorf("%w: %v", ErrIllegalMove, err)
		}
		gb.status = gb.statusOf()
		if gb.status != base.Ongoing {
			gb.logger.Infof("game status: %v", gb.status)
		}
		return gb.status, nil
	}
	return base.InvalidGame, fmt.Errorf("%w: %s%s", ErrIllegalMove, strings.ToLower(from), strings.ToLower(to))
}

// return FEN of this game
func (gb *GameBuilder) FEN() string {
	if gb.game == nil {
		return ""
	}
	return gb.game.FEN()
}

// return PGN of this game
func (gb *GameBuilder) PGN() string {
	if gb.game == nil {
		return ""
	}
	return gb.game.String()
}

func (gb *GameBuilder) CountHalfMoves() int {
	if gb.game == nil {
		return 0
	}
	return len(gb.game.Moves())
}

func (gb *GameBuilder) statusOf() base.GameStatus {
	if gb.game.Outcome() == chess.NoOutcome {
		moves := gb.game.Moves()
		if len(moves) > 0 && moves[len(moves)-1].HasTag(chess.Check) {
			return base.Check
		}
		return base.Ongoing
	}
	switch gb.game.Method() {
	case chess.Checkmate:
		return base.Checkmate
	case chess.Stalemate:
		return base.Stalemate
	default:
		return base.Draw
	}
}

func toEngineSquare(sq base.Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File), chess.Rank(sq.Rank))
}

func fromEngineSquare(sq chess.Square) base.Square {
	return base.Square{File: int(sq.File()), Rank: int(sq.Rank())}
}

func pieceOf(p chess.Piece) base.Piece {
	var c base.Piece
	switch p.Type() {
	case chess.King:
		c = base.WKing
	case chess.Queen:
		c = base.WQueen
	case chess.Rook:
		c = base.WRook
	case chess.Bishop:
		c = base.WBishop
	case chess.Knight:
		c = base.WKnight
	case chess.Pawn:
		c = base.WPawn
	default:
		return base.EmptyPiece
	}
	if p.Color() == chess.Black {
		c += 'a' - 'A'
	}
	return c
}
