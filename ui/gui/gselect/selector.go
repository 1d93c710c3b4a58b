// Package gselect tracks the selected square and its candidate moves and
// turns clicks into move requests.
package gselect

import (
	"fmt"
	"schack/src/base"
	"schack/src/logx"
)

// Rules is the part of the rules engine the selector talks to.
type Rules interface {
	CurrentBoard() base.Snapshot
	IsWhiteToMove() bool
	PossibleMoves(sq string) ([]string, bool)
	Move(from, to string) (base.GameStatus, error)
}

// Mode decides what a click on a non-candidate square does while a piece
// is selected.
type Mode int

const (
	// ModeCancel only clears the selection.
	ModeCancel Mode = iota
	// ModeReselect clears the selection and treats the click as a new
	// selection attempt.
	ModeReselect
)

func (m Mode) String() string {
	switch m {
	case ModeCancel:
		return "cancel"
	case ModeReselect:
		return "reselect"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "cancel", "":
		return ModeCancel, nil
	case "reselect":
		return ModeReselect, nil
	default:
		return ModeCancel, fmt.Errorf("unknown click mode %q", s)
	}
}

type Selector struct {
	rules  Rules
	mode   Mode
	logger logx.Logger

	selected   base.Square
	active     bool
	candidates []base.Square
}

func NewSelector(rules Rules, mode Mode, logger logx.Logger) *Selector {
	return &Selector{rules: rules, mode: mode, logger: logger}
}

func (s *Selector) Mode() Mode {
	return s.mode
}

func (s *Selector) Selected() (base.Square, bool) {
	return s.selected, s.active
}

func (s *Selector) Candidates() []base.Square {
	return append([]base.Square(nil), s.candidates...)
}

func (s *Selector) IsCandidate(sq base.Square) bool {
	for _, c := range s.candidates {
		if c == sq {
			return true
		}
	}
	return false
}

// Reset drops the selection, e.g. after a new game.
func (s *Selector) Reset() {
	s.active = false
	s.selected = base.Square{}
	s.candidates = nil
}

// Click applies one primary-button click on sq. The only error is a
// malformed square coming back from the rules engine.
func (s *Selector) Click(sq base.Square) error {
	if !sq.Valid() {
		return nil
	}
	if !s.active {
		return s.trySelect(sq)
	}

	from := s.selected
	switch {
	case sq == from:
		s.logger.Debugf("deselect %s", sq)
		s.Reset()
		return nil
	case s.IsCandidate(sq):
		s.Reset()
		if _, err := s.rules.Move(from.Algebraic(), sq.Algebraic()); err != nil {
			s.logger.Warnf("move %s-%s rejected: %v", from, sq, err)
		}
		return nil
	}

	s.Reset()
	if s.mode == ModeReselect {
		return s.trySelect(sq)
	}
	return nil
}

func (s *Selector) trySelect(sq base.Square) error {
	piece := s.rules.CurrentBoard().PieceAt(sq)
	if piece == base.EmptyPiece {
		return nil
	}
	if base.PieceIsWhite(piece) != s.rules.IsWhiteToMove() {
		return nil
	}

	var candidates []base.Square
	dests, _ := s.rules.PossibleMoves(sq.Algebraic())
	for _, d := range dests {
		c, err := base.SquareFromAlgebraic(d)
		if err != nil {
			return fmt.Errorf("rules engine destination from %s: %w", sq, err)
		}
		candidates = append(candidates, c)
	}

	s.selected = sq
	s.active = true
	s.candidates = candidates
	s.logger.Debugf("select %s (%c), %d candidates", sq, piece, len(candidates))
	return nil
}
